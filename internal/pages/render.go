package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Table headers and separators shared by the page variants.
const (
	epicTableHeader   = "----------------------------- EPICS ------------------------------"
	storyTableHeader  = "---------------------------- STORIES -----------------------------"
	epicDetailHeader  = "------------------------------ EPIC ------------------------------"
	storyDetailHeader = "------------------------------ STORY -----------------------------"

	listColumnHeader   = "     id     |               name               |      status      "
	detailColumnHeader = "  id  |     name     |         description         |    status    "
)

// columnString pads text to width, truncating with an ellipsis when it
// does not fit. Widths of three or fewer render as bare dots.
func columnString(text string, width int) string {
	if len(text) <= width {
		return text + strings.Repeat(" ", width-len(text))
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return text[:width-3] + "..."
}

// listRow formats one id/name/status row of a list table.
func listRow(id int, name, status string) string {
	return fmt.Sprintf("%s | %s | %s",
		columnString(strconv.Itoa(id), 11),
		columnString(name, 32),
		columnString(status, 17),
	)
}

// detailRow formats the id/name/description/status row of a detail table.
func detailRow(id int, name, description, status string) string {
	return fmt.Sprintf("%s | %s | %s | %s",
		columnString(strconv.Itoa(id), 5),
		columnString(name, 12),
		columnString(description, 27),
		columnString(status, 13),
	)
}
