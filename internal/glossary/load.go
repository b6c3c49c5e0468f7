package glossary

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/berth/internal/log"
)

// ErrEmptyTerm is returned when a glossary file defines a blank term.
var ErrEmptyTerm = errors.New("glossary term cannot be empty")

// File is the root structure of glossary.yaml.
type File struct {
	Terms map[string]string `yaml:"terms"`
}

// Parse decodes glossary YAML.
func Parse(data []byte) (map[string]string, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	terms := make(map[string]string, len(file.Terms))
	for term, def := range file.Terms {
		if term == "" {
			return nil, ErrEmptyTerm
		}
		terms[term] = def
	}
	return terms, nil
}

// Load reads and parses the glossary at path inside fsys.
func Load(fsys fs.FS, path string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	terms, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug(log.CatGlossary, "Loaded glossary", "path", path, "terms", len(terms))
	return terms, nil
}

// LoadFile reads a glossary from the local filesystem.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-configured glossary path
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	terms, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug(log.CatGlossary, "Loaded user glossary", "path", path, "terms", len(terms))
	return terms, nil
}

// Merge returns base overlaid with override. Neither input is modified.
func Merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}
