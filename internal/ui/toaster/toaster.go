// Package toaster shows a transient one-line notification in the footer.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/berth/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleInfo Style = iota
	StyleWarn
	StyleError
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns a command that hides it after d.
// A newer toast is never dismissed by an older toast's timer.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{seq: seq} })
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current message.
func (m Model) Message() string {
	return m.message
}

// View renders the toast truncated to width.
func (m Model) View(width int) string {
	if !m.visible {
		return ""
	}

	var style lipgloss.Style
	prefix := "i "
	switch m.style {
	case StyleError:
		style, prefix = styles.ErrorStyle, "✗ "
	case StyleWarn:
		style, prefix = styles.WarningStyle, "! "
	default:
		style = styles.MutedStyle
	}
	return style.Render(ansi.Truncate(prefix+m.message, max(width, 1), "…"))
}

// DismissMsg hides the toast that scheduled it.
type DismissMsg struct {
	seq int
}
