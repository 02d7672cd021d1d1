// Package style maps cache states and log levels to the icons and colours
// warm draws them with.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/warm/internal/core/domain"
)

// Palette.
var (
	Muted  = lipgloss.Color("#667085")
	Good   = lipgloss.Color("#22A06B")
	Bad    = lipgloss.Color("#D93025")
	Notice = lipgloss.Color("#F59E0B")
)

// Mark is an icon drawn in a colour.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Level marks.
var (
	Warn  = Mark{Icon: "!", Color: Notice}
	Error = Mark{Icon: "✗", Color: Bad}
)

var stateMarks = map[domain.EntryState]Mark{
	domain.EntryFresh:  {Icon: "✓", Color: Good},
	domain.EntryStale:  {Icon: "~", Color: Notice},
	domain.EntryAbsent: {Icon: "✗", Color: Bad},
	domain.EntryOrphan: {Icon: "○", Color: Muted},
}

// ForState returns the mark for state. Unknown states are drawn like orphans.
func ForState(state domain.EntryState) Mark {
	if m, ok := stateMarks[state]; ok {
		return m
	}
	return stateMarks[domain.EntryOrphan]
}
