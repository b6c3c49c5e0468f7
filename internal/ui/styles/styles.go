// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"}
	BorderFocusedColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	// Status
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}

	// Sidebar selection
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#FFFFFF"}
	SelectionBgColor        = lipgloss.AdaptiveColor{Light: "#DDF4FF", Dark: "#2D3436"}

	// Glossary
	TermColor  = lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#CBA6F7"}
	MatchColor = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#F9E2AF"}
)

var (
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	SelectedItemStyle       = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor).Background(SelectionBgColor)
	ItemStyle               = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	PlaceholderItemStyle    = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)

	TermStyle       = lipgloss.NewStyle().Bold(true).Foreground(TermColor)
	DefinitionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	MatchStyle      = lipgloss.NewStyle().Foreground(MatchColor).Underline(true)

	MutedStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(StatusErrorColor)
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
)
