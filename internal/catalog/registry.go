package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zjrosen/berth/internal/log"
)

// Registry errors
var (
	ErrDuplicateKey = errors.New("duplicate module key")
	ErrUnknownKey   = errors.New("unknown module key")
	ErrEmptyKey     = errors.New("module key cannot be empty")
	ErrEmptyCatalog = errors.New("catalog has no modules")
	ErrSealed       = errors.New("catalog is already built")
)

// Builder collects module registrations before a Registry is sealed.
type Builder struct {
	entries []Entry
	index   map[Key]int
	sealed  bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: make([]Entry, 0),
		index:   make(map[Key]int),
	}
}

// Register appends a module. A nil provider registers the module as a
// placeholder; an empty label is derived from the key.
func (b *Builder) Register(key Key, label string, provider Provider) error {
	if b.sealed {
		return ErrSealed
	}
	if key == "" {
		return ErrEmptyKey
	}
	if _, exists := b.index[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	if label == "" {
		label = Label(key)
	}

	entry := Entry{Key: key, Label: label, Provider: provider}
	if provider == nil {
		entry.Provider = Placeholder(label)
		entry.Placeholder = true
	}

	b.index[key] = len(b.entries)
	b.entries = append(b.entries, entry)
	return nil
}

// New registers entries in order and builds the registry. Entry.Placeholder
// is ignored; it is derived from a nil Provider as in Register.
func New(entries ...Entry) (*Registry, error) {
	b := NewBuilder()
	for i, e := range entries {
		if err := b.Register(e.Key, e.Label, e.Provider); err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}
	return b.Build()
}

// Build seals the builder and returns the immutable registry.
func (b *Builder) Build() (*Registry, error) {
	if b.sealed {
		return nil, ErrSealed
	}
	if len(b.entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	b.sealed = true

	reg := &Registry{
		entries: slices.Clone(b.entries),
		index:   make(map[Key]int, len(b.index)),
	}
	for k, i := range b.index {
		reg.index[k] = i
	}

	log.Debug(log.CatCatalog, "Catalog built", "modules", len(reg.entries), "placeholders", reg.placeholderCount())
	return reg, nil
}

// Registry is an immutable, ordered set of modules.
type Registry struct {
	entries []Entry
	index   map[Key]int
}

// Resolve returns the provider registered for key. Keys registered without
// an implementation resolve to their placeholder provider.
func (r *Registry) Resolve(key Key) (Provider, error) {
	i, ok := r.index[key]
	if !ok {
		log.Error(log.CatCatalog, "Resolve of unregistered key", "key", key)
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return r.entries[i].Provider, nil
}

// Keys returns all keys in registration order. The slice is a copy.
func (r *Registry) Keys() []Key {
	keys := make([]Key, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns all entries in registration order. The slice is a copy.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Entry returns the entry for key.
func (r *Registry) Entry(key Key) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Label returns the display label for key, or the derived label when the key
// is not registered.
func (r *Registry) Label(key Key) string {
	if e, ok := r.Entry(key); ok {
		return e.Label
	}
	return Label(key)
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.index[key]
	return ok
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) placeholderCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Placeholder {
			n++
		}
	}
	return n
}
