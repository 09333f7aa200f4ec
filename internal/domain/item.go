// Package domain contains core business entities and interfaces.
package domain

// Epic is a top-level work item owning an ordered list of story ids.
type Epic struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	Stories     []int  `json:"stories" yaml:"stories"`
}

// NewEpic creates an open epic with no stories.
func NewEpic(name, description string) Epic {
	return Epic{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
		Stories:     []int{},
	}
}

// OwnsStory returns true if the epic's story list contains id.
func (e Epic) OwnsStory(id int) bool {
	for _, s := range e.Stories {
		if s == id {
			return true
		}
	}
	return false
}

// Story is a leaf work item owned by exactly one epic.
type Story struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
}

// NewStory creates an open story.
func NewStory(name, description string) Story {
	return Story{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
	}
}
