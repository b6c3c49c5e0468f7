package catalog

import "fmt"

const placeholderBody = "# %[1]s\n\n**%[1]s** is not yet available.\n\nThis module is part of the catalog but its content has not been written yet. Check back in a later release.\n"

// Placeholder returns the provider used for modules registered without an
// implementation. Its output depends only on label.
func Placeholder(label string) Provider {
	out := RenderOutput{
		Title:    label,
		Markdown: fmt.Sprintf(placeholderBody, label),
	}
	return Static(out)
}
