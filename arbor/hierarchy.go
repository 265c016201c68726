// Package arbor: the Hierarchy type, its constructors, and its
// read-only projections.
package arbor

import (
	"errors"
	"fmt"

	"github.com/halcyard/plexus/convert"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// ErrEmptyName indicates a grafted node whose name resolves to the
// empty string.
var ErrEmptyName = errors.New("arbor: node name is empty")

var _ structure.Directed = (*Hierarchy)(nil)

// Hierarchy is a directed composite backed by one rooted tree. Unlike
// a graph.System, positions are not collapsed by name: the same name
// may occur on several branches, each with its own descendants.
type Hierarchy struct {
	root *shape.Tree
}

// New returns an empty Hierarchy; the first Append or Prepend installs
// the root.
func New() *Hierarchy {
	return &Hierarchy{}
}

// FromTree wraps a clone of t. A nil tree yields an empty Hierarchy.
func FromTree(t *shape.Tree) *Hierarchy {
	return &Hierarchy{root: t.Clone()}
}

// FromPipeline chains the sequence into a single branch. An empty
// pipeline yields an empty Hierarchy.
func FromPipeline(p shape.Pipeline) *Hierarchy {
	return &Hierarchy{root: chainTree(p)}
}

// FromPipelines prefix-merges the walks into one tree: pipelines
// sharing a prefix share those positions, and the first elements must
// agree on a single root name (convert.ErrRootCount otherwise).
// Iteration follows sorted pipeline names, so branch order is
// reproducible.
func FromPipelines(ps shape.Pipelines) (*Hierarchy, error) {
	h := &Hierarchy{}
	for _, k := range ps.Keys() {
		p := ps[k]
		if len(p) == 0 {
			continue
		}
		if h.root == nil {
			h.root = shape.NewTree(p[0])
		} else if p[0].Name() != h.root.Value.Name() {
			return nil, fmt.Errorf("%w: %q and %q", convert.ErrRootCount, h.root.Value.Name(), p[0].Name())
		}
		graftBranch(h.root, p)
	}

	return h, nil
}

// From dispatches v to the matching constructor: Hierarchy and Tree
// values clone, pipelines chain, and any other composite routes
// through canonical adjacency and must be single-rooted.
func From(v any) (*Hierarchy, error) {
	t, err := resolve(v)
	if err != nil {
		return nil, err
	}

	return &Hierarchy{root: t}, nil
}

// Len returns the number of tree positions (not distinct names).
func (h *Hierarchy) Len() int {
	return countNodes(h.root)
}

// Roots returns the root value, or nothing for an empty Hierarchy. The
// slice form satisfies the Directed contract; a Hierarchy never has
// more than one root.
func (h *Hierarchy) Roots() []node.Node {
	if h.root == nil {
		return nil
	}

	return []node.Node{h.root.Value}
}

// Endpoints returns every leaf value in branch (pre-order) order.
func (h *Hierarchy) Endpoints() []node.Node {
	ls := leaves(h.root)
	out := make([]node.Node, len(ls))
	for i, l := range ls {
		out[i] = l.Value
	}

	return out
}

// Pipeline returns the single branch of a chain-shaped Hierarchy, or
// structure.ErrNoPipeline when the tree branches.
func (h *Hierarchy) Pipeline() (shape.Pipeline, error) {
	ps := h.Walk()
	if len(ps) != 1 {
		return nil, fmt.Errorf("%w: %d walks", structure.ErrNoPipeline, len(ps))
	}

	return ps[ps.Keys()[0]], nil
}

// Pipelines returns every root-to-leaf branch, keyed by WalkKey.
func (h *Hierarchy) Pipelines() shape.Pipelines {
	return h.Walk()
}

// Tree returns an independent clone of the backing tree. An empty
// Hierarchy has no root to project (convert.ErrRootCount).
func (h *Hierarchy) Tree() (*shape.Tree, error) {
	if h.root == nil {
		return nil, fmt.Errorf("%w: found 0", convert.ErrRootCount)
	}

	return h.root.Clone(), nil
}

// countNodes walks t counting positions.
func countNodes(t *shape.Tree) int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += countNodes(c)
	}

	return n
}

// leaves collects t's leaf positions in pre-order.
func leaves(t *shape.Tree) []*shape.Tree {
	if t == nil {
		return nil
	}
	if t.Leaf() {
		return []*shape.Tree{t}
	}
	var out []*shape.Tree
	for _, c := range t.Children {
		out = append(out, leaves(c)...)
	}

	return out
}

// chainTree folds a pipeline into a single branch, last element
// deepest.
func chainTree(p shape.Pipeline) *shape.Tree {
	var t *shape.Tree
	for i := len(p) - 1; i >= 0; i-- {
		if t == nil {
			t = shape.NewTree(p[i])
		} else {
			t = shape.NewTree(p[i], t)
		}
	}

	return t
}

// graftBranch threads p below t, reusing existing children that carry
// the same name. p[0] is t itself.
func graftBranch(t *shape.Tree, p shape.Pipeline) {
	cur := t
	for _, n := range p[1:] {
		var next *shape.Tree
		for _, c := range cur.Children {
			if c.Value.Name() == n.Name() {
				next = c
				break
			}
		}
		if next == nil {
			next = shape.NewTree(n)
			cur.Children = append(cur.Children, next)
		}
		cur = next
	}
}
