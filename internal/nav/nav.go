// Package nav implements the navigation controller: the single active module
// selection and the bridge between the shell's selection control and the
// module registry.
package nav

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/log"
)

// Navigation errors
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptyCatalog     = errors.New("navigation requires at least one module")
)

// Resolver is the read-only registry surface the controller depends on.
type Resolver interface {
	Keys() []catalog.Key
	Resolve(key catalog.Key) (catalog.Provider, error)
	Label(key catalog.Key) string
}

// Compile-time check that catalog.Registry satisfies Resolver.
var _ Resolver = (*catalog.Registry)(nil)

// Controller holds the active selection. Exactly one key is active at any
// time; the initial selection is the first registered key.
//
// Controller is owned by a single update loop and is not safe for concurrent
// mutation.
type Controller struct {
	registry Resolver
	keys     []catalog.Key
	active   int
}

// New creates a controller over reg with the first key active.
func New(reg Resolver) (*Controller, error) {
	keys := reg.Keys()
	if len(keys) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Controller{
		registry: reg,
		keys:     slices.Clone(keys),
		active:   0,
	}, nil
}

// Keys returns the selectable keys in display order.
func (c *Controller) Keys() []catalog.Key {
	return slices.Clone(c.keys)
}

// Active returns the active key.
func (c *Controller) Active() catalog.Key {
	return c.keys[c.active]
}

// ActiveLabel returns the display label of the active key.
func (c *Controller) ActiveLabel() string {
	return c.registry.Label(c.Active())
}

// Label returns the display label for key.
func (c *Controller) Label(key catalog.Key) string {
	return c.registry.Label(key)
}

// Index returns the position of the active key in Keys().
func (c *Controller) Index() int {
	return c.active
}

// Len returns the number of selectable keys.
func (c *Controller) Len() int {
	return len(c.keys)
}

// Select makes key active. Keys outside Keys() fail with ErrInvalidSelection
// and leave the active selection unchanged.
func (c *Controller) Select(key catalog.Key) error {
	i := slices.Index(c.keys, key)
	if i < 0 {
		log.Warn(log.CatNav, "Rejected selection", "key", key, "active", c.Active())
		return fmt.Errorf("%w: %q", ErrInvalidSelection, key)
	}
	if i != c.active {
		log.Debug(log.CatNav, "Selected module", "from", c.Active(), "to", key)
	}
	c.active = i
	return nil
}

// SelectIndex selects the key at position i in Keys().
func (c *Controller) SelectIndex(i int) error {
	if i < 0 || i >= len(c.keys) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, i, len(c.keys))
	}
	return c.Select(c.keys[i])
}

// Step moves the selection by delta positions, wrapping at both ends.
func (c *Controller) Step(delta int) {
	n := len(c.keys)
	next := ((c.active+delta)%n + n) % n
	_ = c.Select(c.keys[next])
}

// Render resolves the active key and invokes its provider. Provider errors
// are returned to the caller, never replaced.
func (c *Controller) Render() (catalog.RenderOutput, error) {
	key := c.Active()
	provider, err := c.registry.Resolve(key)
	if err != nil {
		return catalog.RenderOutput{}, err
	}

	out, err := provider.Render()
	if err != nil {
		log.ErrorErr(log.CatNav, "Module render failed", err, "key", key)
		return catalog.RenderOutput{}, fmt.Errorf("render %s: %w", key, err)
	}
	return out, nil
}
