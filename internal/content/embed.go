// Package content embeds the built-in module catalog and glossary.
//
// The layout is:
//   - catalog.yaml (ordered module list)
//   - glossary.yaml (term -> definition)
//   - modules/*.md (module bodies)
//
// A user content directory with the same layout can replace it at runtime.
package content

import (
	"embed"
	"io/fs"
	"os"
)

const (
	// CatalogPath is the catalog file within a content filesystem.
	CatalogPath = "catalog.yaml"
	// GlossaryPath is the glossary file within a content filesystem.
	GlossaryPath = "glossary.yaml"
)

//go:embed catalog.yaml glossary.yaml modules
var builtin embed.FS

// FS returns the embedded content filesystem.
func FS() fs.FS {
	return builtin
}

// Open returns the content filesystem rooted at dir, or the embedded one when
// dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return builtin
	}
	return os.DirFS(dir)
}
