package catalog

// Key identifies one navigable module. Keys are unique within a registry.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// RenderOutput is what a provider produces for the shell to display.
// The registry and navigation layers never inspect it.
type RenderOutput struct {
	Title    string
	Markdown string
}

// Provider produces the content of a module.
type Provider interface {
	Render() (RenderOutput, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func() (RenderOutput, error)

// Render calls f().
func (f ProviderFunc) Render() (RenderOutput, error) {
	return f()
}

// Static returns a provider that always renders the given output.
func Static(out RenderOutput) Provider {
	return ProviderFunc(func() (RenderOutput, error) {
		return out, nil
	})
}

// Entry is a single registered module.
type Entry struct {
	Key         Key
	Label       string
	Provider    Provider
	Placeholder bool // true when the module has no real implementation yet
}
