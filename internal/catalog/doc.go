// Package catalog implements the module registry for berth.
//
// A catalog is an ordered, immutable collection of learning modules. Each
// module is addressed by a Key and backed by a Provider that produces a
// RenderOutput when the module is shown.
//
// # Construction
//
// Registries are assembled with a Builder and sealed with Build:
//
//	b := catalog.NewBuilder()
//	_ = b.Register("home", "Home", homeProvider)
//	_ = b.Register("kpis", "", nil) // placeholder until the module is written
//	reg, err := b.Build()
//
// Registration order is display order. Keys() always returns keys in the
// order they were registered and is never sorted.
//
// # Placeholders
//
// Registering a key with a nil provider installs a placeholder provider at
// registration time. The placeholder announces that the topic is not yet
// available, parameterised only by the module label. Placeholders are never
// used to mask errors from a real provider.
//
// # Errors
//
// ErrDuplicateKey, ErrUnknownKey and ErrEmptyCatalog indicate a malformed
// catalog and are reported at construction or first resolution. They are
// wrapped with the offending key; use errors.Is to test for them.
//
// # Loading
//
// LoadDefinitions and FromDefinitions build a registry from a catalog.yaml
// file inside an fs.FS, wiring MarkdownProvider for entries with a file and
// placeholders for the rest.
package catalog
