package catalog

import (
	"fmt"
	"io/fs"
)

// MarkdownProvider renders a module from a Markdown file inside an fs.FS.
// The file is read on every Render so a missing or unreadable file surfaces
// as a render error rather than a placeholder.
type MarkdownProvider struct {
	fsys  fs.FS
	path  string
	title string
}

// NewMarkdownProvider creates a provider for path within fsys.
func NewMarkdownProvider(fsys fs.FS, path, title string) *MarkdownProvider {
	return &MarkdownProvider{fsys: fsys, path: path, title: title}
}

// Path returns the file path the provider reads.
func (p *MarkdownProvider) Path() string {
	return p.path
}

// Render reads the Markdown file.
func (p *MarkdownProvider) Render() (RenderOutput, error) {
	data, err := fs.ReadFile(p.fsys, p.path)
	if err != nil {
		return RenderOutput{}, fmt.Errorf("read module %s: %w", p.path, err)
	}
	return RenderOutput{Title: p.title, Markdown: string(data)}, nil
}
