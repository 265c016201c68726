// Package collect: Dictionary, the insertion-ordered map.
package collect

// Dictionary is a map that remembers insertion order and supports a
// soft Get with a configurable fallback. Re-setting an existing key
// overwrites the value but keeps the key's original position.
type Dictionary[K comparable, V any] struct {
	order    *Listing[K]
	values   map[K]V
	fallback V
}

// NewDictionary returns an empty Dictionary.
func NewDictionary[K comparable, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{
		order:  NewListing[K](),
		values: make(map[K]V),
	}
}

// FromKeys returns a Dictionary mapping every key to value, in key
// order.
func FromKeys[K comparable, V any](keys []K, value V) *Dictionary[K, V] {
	d := NewDictionary[K, V]()
	for _, k := range keys {
		d.Set(k, value)
	}

	return d
}

// Len returns the entry count.
func (d *Dictionary[K, V]) Len() int { return d.order.Len() }

// Set stores value under key.
func (d *Dictionary[K, V]) Set(key K, value V) {
	if _, ok := d.values[key]; !ok {
		d.order.Add(key)
	}
	d.values[key] = value
}

// Default configures the fallback Get returns for missing keys.
func (d *Dictionary[K, V]) Default(value V) {
	d.fallback = value
}

// Get returns the value under key; missing keys yield the configured
// fallback, or the zero value if none was configured.
func (d *Dictionary[K, V]) Get(key K) V {
	if v, ok := d.values[key]; ok {
		return v
	}

	return d.fallback
}

// Lookup returns the value under key and whether it was present.
func (d *Dictionary[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (d *Dictionary[K, V]) Delete(key K) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	d.order.Remove(key)

	return true
}

// Merge copies every entry of other into d, in other's order.
func (d *Dictionary[K, V]) Merge(other *Dictionary[K, V]) {
	for _, k := range other.Keys() {
		d.Set(k, other.values[k])
	}
}

// Subset returns a new Dictionary holding the include keys that are
// present, in include order.
func (d *Dictionary[K, V]) Subset(include ...K) *Dictionary[K, V] {
	out := NewDictionary[K, V]()
	for _, k := range include {
		if v, ok := d.values[k]; ok {
			out.Set(k, v)
		}
	}

	return out
}

// Keys returns the keys in insertion order.
func (d *Dictionary[K, V]) Keys() []K { return d.order.Items() }

// Values returns the values in insertion order.
func (d *Dictionary[K, V]) Values() []V {
	out := make([]V, 0, d.order.Len())
	for _, k := range d.order.Items() {
		out = append(out, d.values[k])
	}

	return out
}

// Contains reports whether key is present.
func (d *Dictionary[K, V]) Contains(key K) bool {
	_, ok := d.values[key]
	return ok
}

// Clear empties the Dictionary; the fallback survives.
func (d *Dictionary[K, V]) Clear() {
	d.order.Clear()
	d.values = make(map[K]V)
}
