// Package flags provides feature flags read from the flags section of the
// config. Flags are read-only after initialization.
package flags

import (
	"maps"

	"github.com/zjrosen/berth/internal/log"
)

const (
	// FlagGlossaryLiveReload reloads the user glossary when its file changes.
	FlagGlossaryLiveReload = "glossary-live-reload"

	// FlagSidebarMouse enables mouse selection in the module sidebar.
	FlagSidebarMouse = "sidebar-mouse"
)

// defaults apply to known flags absent from the config.
var defaults = map[string]bool{
	FlagGlossaryLiveReload: true,
	FlagSidebarMouse:       true,
}

// Registry holds feature flag state.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from the config map layered over the defaults.
func New(flags map[string]bool) *Registry {
	merged := maps.Clone(defaults)
	maps.Copy(merged, flags)
	r := &Registry{flags: merged}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(merged))
	return r
}

// Enabled reports whether the named flag is on. Unknown flags and a nil
// registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name)
		return false
	}
	return value
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return map[string]bool{}
	}
	return maps.Clone(r.flags)
}
