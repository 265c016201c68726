// Package arbor: branch enumeration.
package arbor

import (
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// Walk enumerates branches between the option bounds, keyed by
// structure.WalkKey. WithStart begins at the first pre-order position
// carrying the name (an absent name yields no walks); WithStop
// truncates a branch the moment the name is reached, descendants
// unvisited.
//
// Complexity: O(positions) plus the emitted walk lengths.
func (h *Hierarchy) Walk(opts ...structure.WalkOption) shape.Pipelines {
	o := structure.DefaultWalkOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := h.root
	if o.Start != "" {
		start = findSubtree(h.root, o.Start)
	}

	var walks []shape.Pipeline
	climb(start, o.Stop, nil, &walks)

	ps := make(shape.Pipelines, len(walks))
	for _, w := range walks {
		ps[structure.WalkKey(w)] = w
	}

	return ps
}

// climb extends the walk by t's value, recording it at leaves and at
// the stop name.
func climb(t *shape.Tree, stop string, walk shape.Pipeline, out *[]shape.Pipeline) {
	if t == nil {
		return
	}
	walk = append(walk, t.Value)
	if (stop != "" && t.Value.Name() == stop) || t.Leaf() {
		recorded := make(shape.Pipeline, len(walk))
		copy(recorded, walk)
		*out = append(*out, recorded)
		return
	}
	for _, c := range t.Children {
		climb(c, stop, walk, out)
	}
}

// findSubtree returns the first pre-order position carrying name.
func findSubtree(t *shape.Tree, name string) *shape.Tree {
	if t == nil {
		return nil
	}
	if t.Value.Name() == name {
		return t
	}
	for _, c := range t.Children {
		if hit := findSubtree(c, name); hit != nil {
			return hit
		}
	}

	return nil
}
