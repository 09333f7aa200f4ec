package tui

import "github.com/princemuel/jiraffe/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStateLoaded is sent when a fresh state snapshot has been read.
type MsgStateLoaded struct {
	State *domain.State
}

func (MsgStateLoaded) sealed() {}

// MsgMutated is sent after a successful create, update or delete.
type MsgMutated struct{}

func (MsgMutated) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
