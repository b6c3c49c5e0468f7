package catalog

import (
	"fmt"
	"io/fs"
	stdpath "path"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/berth/internal/log"
)

// File is the root structure of catalog.yaml.
type File struct {
	Modules []Definition `yaml:"modules"`
}

// Definition describes one module in catalog.yaml.
type Definition struct {
	Key   string `yaml:"key"`   // e.g. "berth-planning"
	Label string `yaml:"label"` // optional, derived from key when empty
	File  string `yaml:"file"`  // Markdown path relative to the catalog file; empty = placeholder
}

// LoadDefinitions parses the catalog file at path inside fsys. Module file
// paths are resolved relative to the catalog file's directory.
func LoadDefinitions(fsys fs.FS, path string) ([]Definition, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Use path.Dir (not filepath.Dir) since fs.FS always uses forward slashes
	dir := stdpath.Dir(path)
	defs := make([]Definition, 0, len(file.Modules))
	for _, def := range file.Modules {
		if def.File != "" {
			def.File = stdpath.Join(dir, def.File)
		}
		defs = append(defs, def)
	}

	log.Debug(log.CatCatalog, "Loaded catalog definitions", "path", path, "count", len(defs))
	return defs, nil
}

// FromDefinitions builds a registry from definitions in order. Definitions
// with a file get a MarkdownProvider backed by fsys; the rest are registered
// as placeholders.
func FromDefinitions(fsys fs.FS, defs []Definition) (*Registry, error) {
	entries := make([]Entry, 0, len(defs))
	for _, def := range defs {
		entry := Entry{Key: Key(def.Key), Label: def.Label}
		if entry.Label == "" {
			entry.Label = Label(entry.Key)
		}
		if def.File != "" {
			if _, err := fs.Stat(fsys, def.File); err != nil {
				// Still registered: a broken file is a render error, not a placeholder.
				log.Warn(log.CatCatalog, "Module file not found", "key", entry.Key, "file", def.File)
			}
			entry.Provider = NewMarkdownProvider(fsys, def.File, entry.Label)
		}
		entries = append(entries, entry)
	}
	return New(entries...)
}

// Load reads path from fsys and builds the registry.
func Load(fsys fs.FS, path string) (*Registry, error) {
	defs, err := LoadDefinitions(fsys, path)
	if err != nil {
		return nil, err
	}
	return FromDefinitions(fsys, defs)
}
