// SPDX-License-Identifier: MIT
// Package collect: Catalog, the wildcard-keyed registry.
package collect

// Wildcard keys a Catalog resolves specially on lookup and deletion.
const (
	// WildcardAll selects every stored value.
	WildcardAll = "all"

	// WildcardDefault selects the configured default keys (all values
	// when no defaults are configured).
	WildcardDefault = "default"

	// WildcardNone selects nothing.
	WildcardNone = "none"
)

// Catalog is a string-keyed, insertion-ordered registry whose lookups
// understand the wildcard keys "all", "default", and "none". Wildcard
// resolution returns value slices, since a wildcard may name several
// entries.
type Catalog[V any] struct {
	entries  *Dictionary[string, V]
	defaults []string
}

// NewCatalog returns an empty Catalog.
func NewCatalog[V any]() *Catalog[V] {
	return &Catalog[V]{entries: NewDictionary[string, V]()}
}

// Len returns the entry count.
func (c *Catalog[V]) Len() int { return c.entries.Len() }

// Set stores value under key. Wildcard names are ordinary keys on
// write; only reads and deletes resolve them specially.
func (c *Catalog[V]) Set(key string, value V) { c.entries.Set(key, value) }

// SetDefaults configures which keys WildcardDefault resolves to.
func (c *Catalog[V]) SetDefaults(keys ...string) { c.defaults = keys }

// Get resolves key to the matching values:
//
//	"all"      → every value, in insertion order.
//	"default"  → values under the configured default keys, or every
//	             value when no defaults are configured.
//	"none"     → nothing.
//	otherwise  → the single stored value, or nothing if absent.
func (c *Catalog[V]) Get(key string) []V {
	switch key {
	case WildcardAll:
		return c.entries.Values()
	case WildcardDefault:
		if len(c.defaults) == 0 {
			return c.entries.Values()
		}
		return c.Select(c.defaults...)
	case WildcardNone:
		return nil
	}
	if v, ok := c.entries.Lookup(key); ok {
		return []V{v}
	}

	return nil
}

// Select resolves several keys at once, concatenating each key's Get
// in argument order.
func (c *Catalog[V]) Select(keys ...string) []V {
	var out []V
	for _, k := range keys {
		out = append(out, c.Get(k)...)
	}

	return out
}

// Lookup returns the value stored directly under key, bypassing
// wildcard resolution.
func (c *Catalog[V]) Lookup(key string) (V, bool) { return c.entries.Lookup(key) }

// Delete removes entries by key: "all" clears the Catalog, "default"
// removes the configured default keys, "none" removes nothing, and any
// other key removes that entry.
func (c *Catalog[V]) Delete(key string) {
	switch key {
	case WildcardAll:
		c.entries.Clear()
	case WildcardDefault:
		for _, k := range c.defaults {
			c.entries.Delete(k)
		}
	case WildcardNone:
	default:
		c.entries.Delete(key)
	}
}

// Keys returns the stored keys in insertion order.
func (c *Catalog[V]) Keys() []string { return c.entries.Keys() }

// Contains reports whether key is stored directly (wildcards are not
// resolved).
func (c *Catalog[V]) Contains(key string) bool { return c.entries.Contains(key) }
