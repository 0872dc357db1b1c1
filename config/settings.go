// Package config holds the small set of process-wide knobs that shape how
// the rest of this module behaves: the property-map key names that carry an
// entity's identity, a recorded query-builder cache size, and how to reach the
// backing Postgres+AGE instance.
package config

import "github.com/veloper/agraph"

// Settings configures the identity-key names a Graph uses and carries a
// query-cache size that Apply does not install. The zero value is not ready to use; call
// DefaultSettings and override fields as needed.
type Settings struct {
	// IdentKey, StartIdentKey, and EndIdentKey override the default
	// property-map keys ("ident", "start_ident", "end_ident") used to store
	// an entity's caller-assigned identity.
	IdentKey      string
	StartIdentKey string
	EndIdentKey   string

	// QueryCacheSize records a query-cache size. Apply does not install it:
	// NewGraph always uses agraph.DefaultQueryCacheSize, and a different
	// size is chosen per graph through agraph.NewGraphWithCacheSize.
	QueryCacheSize int
}

// DefaultSettings returns the Settings this module uses unless overridden:
// the conventional key names and a 100-entry query cache.
func DefaultSettings() Settings {
	return Settings{
		IdentKey:       "ident",
		StartIdentKey:  "start_ident",
		EndIdentKey:    "end_ident",
		QueryCacheSize: agraph.DefaultQueryCacheSize,
	}
}

// Apply installs s as the process-wide key names used by every Graph
// constructed afterward. Call it once during process startup, before
// constructing any Graph; it is not safe to call concurrently with graph
// construction or property access.
func (s Settings) Apply() {
	if s.IdentKey != "" {
		agraph.IdentKey = s.IdentKey
	}
	if s.StartIdentKey != "" {
		agraph.StartIdentKey = s.StartIdentKey
	}
	if s.EndIdentKey != "" {
		agraph.EndIdentKey = s.EndIdentKey
	}
}
