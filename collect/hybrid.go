// Package collect: Hybrid, the node sequence indexed by name.
package collect

import (
	"slices"

	"github.com/halcyard/plexus/node"
)

// Hybrid is an ordered node sequence that also answers name lookups:
// list semantics for iteration and position, map semantics for
// identity. Duplicate names may occur; name lookups resolve to the
// first occurrence and Positions reports every occurrence.
type Hybrid struct {
	items []node.Node
}

// NewHybrid adapts each value via node.Of and returns the sequence.
func NewHybrid(vs ...any) *Hybrid {
	h := &Hybrid{items: make([]node.Node, 0, len(vs))}
	for _, v := range vs {
		h.items = append(h.items, node.Of(v))
	}

	return h
}

// Len returns the element count.
func (h *Hybrid) Len() int { return len(h.items) }

// At indexes like a slice; out-of-range indexes panic.
func (h *Hybrid) At(i int) node.Node { return h.items[i] }

// Add appends v, adapted via node.Of.
func (h *Hybrid) Add(v any) { h.items = append(h.items, node.Of(v)) }

// Insert places v at position i; i clamps to the valid range.
func (h *Hybrid) Insert(i int, v any) {
	if i < 0 {
		i = 0
	}
	if i > len(h.items) {
		i = len(h.items)
	}
	h.items = slices.Insert(h.items, i, node.Of(v))
}

// Get returns the first item carrying name and whether one exists.
func (h *Hybrid) Get(name string) (node.Node, bool) {
	for _, item := range h.items {
		if item.Name() == name {
			return item, true
		}
	}

	return nil, false
}

// Positions returns every index at which name occurs, in order.
func (h *Hybrid) Positions(name string) []int {
	var out []int
	for i, item := range h.items {
		if item.Name() == name {
			out = append(out, i)
		}
	}

	return out
}

// Contains reports whether any item carries name.
func (h *Hybrid) Contains(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Remove deletes the first item carrying name and reports whether one
// was present.
func (h *Hybrid) Remove(name string) bool {
	for i, item := range h.items {
		if item.Name() == name {
			h.items = slices.Delete(h.items, i, i+1)
			return true
		}
	}

	return false
}

// Subset returns a new Hybrid keeping, in the receiver's order, the
// items whose names occur in include (nil include keeps everything)
// and not in exclude.
func (h *Hybrid) Subset(include []string, exclude ...string) *Hybrid {
	out := &Hybrid{}
	for _, item := range h.items {
		name := item.Name()
		if include != nil && !slices.Contains(include, name) {
			continue
		}
		if slices.Contains(exclude, name) {
			continue
		}
		out.items = append(out.items, item)
	}

	return out
}

// Names returns each item's name in sequence order, duplicates
// included.
func (h *Hybrid) Names() []string {
	out := make([]string, len(h.items))
	for i, item := range h.items {
		out[i] = item.Name()
	}

	return out
}

// Items returns a copy of the sequence.
func (h *Hybrid) Items() []node.Node { return slices.Clone(h.items) }

// Clear empties the sequence.
func (h *Hybrid) Clear() { h.items = nil }

// Clone returns an independent copy (items are shared, the sequence is
// not).
func (h *Hybrid) Clone() *Hybrid {
	return &Hybrid{items: slices.Clone(h.items)}
}
