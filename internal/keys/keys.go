// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// GlobalKeyMap holds bindings active in every mode.
type GlobalKeyMap struct {
	SwitchMode key.Binding
	Quit       key.Binding
}

// ModulesKeyMap holds bindings for the module browser.
type ModulesKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
	SwitchMode key.Binding
}

// GlossaryKeyMap holds bindings for the glossary. Printable keys go to the
// query input, so only control keys are bound here.
type GlossaryKeyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Clear      key.Binding
	SwitchMode key.Binding
	Quit       key.Binding
}

var switchMode = key.NewBinding(
	key.WithKeys("tab", "ctrl+g"),
	key.WithHelp("tab", "switch mode"),
)

// Global is the keymap shared by every mode.
var Global = GlobalKeyMap{
	SwitchMode: switchMode,
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Modules is the module browser keymap.
var Modules = ModulesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous module"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next module"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first module"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last module"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "scroll down"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r", "ctrl+r"),
		key.WithHelp("r", "reload module"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	SwitchMode: switchMode,
}

// Glossary is the glossary keymap.
var Glossary = GlossaryKeyMap{
	ScrollUp: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "scroll down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear query"),
	),
	SwitchMode: switchMode,
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k ModulesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchMode, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k ModulesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.ScrollUp, k.ScrollDown, k.Reload},
		{k.SwitchMode, k.Help, k.Quit},
	}
}

// ShortHelp returns keybindings for the short help view.
func (k GlossaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.Clear, k.SwitchMode, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k GlossaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
