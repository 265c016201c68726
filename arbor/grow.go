// Package arbor: growth along the Directed contract.
package arbor

import (
	"github.com/halcyard/plexus/convert"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// Append grafts v beneath every leaf. Each attachment point receives
// its own clone, so branches stay disjoint. Appending onto an empty
// Hierarchy installs v as the root.
func (h *Hierarchy) Append(v any) error {
	graft, err := resolve(v)
	if err != nil {
		return err
	}
	if graft == nil {
		return nil
	}
	if h.root == nil {
		h.root = graft
		return nil
	}
	for _, leaf := range leaves(h.root) {
		leaf.Children = append(leaf.Children, graft.Clone())
	}

	return nil
}

// Prepend roofs the Hierarchy: v becomes the new root and the current
// tree re-attaches beneath each of v's leaves.
func (h *Hierarchy) Prepend(v any) error {
	graft, err := resolve(v)
	if err != nil {
		return err
	}
	if graft == nil {
		return nil
	}
	if h.root == nil {
		h.root = graft
		return nil
	}

	old := h.root
	h.root = graft
	for _, leaf := range leaves(graft) {
		leaf.Children = append(leaf.Children, old.Clone())
	}

	return nil
}

// resolve normalizes v into a freshly owned subtree. Tree-shaped
// values clone, pipelines chain, node-shaped values become leaves, and
// any remaining composite routes through canonical adjacency, which
// must then be single-rooted.
func resolve(v any) (*shape.Tree, error) {
	switch x := v.(type) {
	case *Hierarchy:
		return x.root.Clone(), nil
	case *shape.Tree:
		return x.Clone(), nil
	case shape.Tree:
		return x.Clone(), nil
	case shape.Pipeline:
		return chainTree(x), nil
	case []node.Node:
		return chainTree(shape.Pipeline(x)), nil
	case shape.Pipelines:
		sub, err := FromPipelines(x)
		if err != nil {
			return nil, err
		}
		return sub.root, nil
	case structure.Directed:
		t, err := x.Tree()
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	if shape.Classify(v) == shape.KindNode {
		n := node.Of(v)
		if n.Name() == "" {
			return nil, ErrEmptyName
		}
		return shape.NewTree(n), nil
	}

	a, err := convert.ToAdjacency(v)
	if err != nil {
		return nil, err
	}

	return convert.AdjacencyToTree(a)
}
