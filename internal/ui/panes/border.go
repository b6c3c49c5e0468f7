// Package panes renders rounded bordered panels with titles in the border.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/berth/internal/ui/styles"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures a bordered panel.
type BorderConfig struct {
	Content string
	Width   int // Total width including borders
	Height  int // Total height including borders

	Title  string // Embedded in the top border, left-aligned
	Footer string // Embedded in the bottom border, right-aligned

	Focused bool
}

// BorderedPane renders cfg.Content inside a rounded border. Content wider or
// taller than the pane is clipped.
func BorderedPane(cfg BorderConfig) string {
	borderColor := lipgloss.TerminalColor(styles.BorderDefaultColor)
	if cfg.Focused {
		borderColor = styles.BorderFocusedColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(borderColor).Bold(cfg.Focused)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	lines := strings.Split(cfg.Content, "\n")
	body := make([]string, contentHeight)
	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerWidth, "")
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		body[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var b strings.Builder
	b.WriteString(edge(borderTopLeft, borderTopRight, cfg.Title, false, innerWidth, borderStyle, titleStyle))
	b.WriteString("\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n")
	b.WriteString(edge(borderBottomLeft, borderBottomRight, cfg.Footer, true, innerWidth, borderStyle, titleStyle))
	return b.String()
}

// edge builds a horizontal border line with an optional title.
// Format: ╭─ Title ─────╮ or ╰───── Footer ─╯
func edge(left, right, title string, alignRight bool, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if title == "" || innerWidth < 5 {
		return borderStyle.Render(left + strings.Repeat(borderHorizontal, innerWidth) + right)
	}

	title = ansi.Truncate(title, innerWidth-4, "…")
	dashes := max(innerWidth-lipgloss.Width(title)-3, 0)

	if alignRight {
		return borderStyle.Render(left+strings.Repeat(borderHorizontal, dashes)+" ") +
			titleStyle.Render(title) +
			borderStyle.Render(" "+borderHorizontal+right)
	}
	return borderStyle.Render(left+borderHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, dashes)+right)
}
