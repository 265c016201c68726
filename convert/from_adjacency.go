// Package convert: backward projections out of canonical adjacency
// form.
package convert

import (
	"fmt"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// AdjacencyToEdges emits one edge per (key, successor) pair.
// Deterministic: tails iterate in sorted key order, heads in sorted
// set order. Adjacency stores names only, so every emitted endpoint is
// a node.String.
//
// Complexity: O(V log V + E log E)
func AdjacencyToEdges(a shape.Adjacency) shape.Edges {
	var out shape.Edges
	for _, tail := range a.Keys() {
		for _, head := range a[tail].Sorted() {
			out = append(out, shape.Edge{Tail: node.String(tail), Head: node.String(head)})
		}
	}

	return out
}

// AdjacencyToMatrix encodes a into a 0/1 grid with labels in
// lexicographic key order. See MatrixWithLabels for the error cases.
//
// Complexity: O(V² + E)
func AdjacencyToMatrix(a shape.Adjacency) (shape.Matrix, error) {
	return MatrixWithLabels(a, a.Keys())
}

// MatrixWithLabels encodes a into a 0/1 grid using the caller's label
// order. The labels must map one-to-one onto a's key set: a count
// mismatch is ErrLabelCount, and any key or successor that resolves to
// no label position is ErrUnknownNode.
//
// Complexity: O(V² + E)
func MatrixWithLabels(a shape.Adjacency, labels []string) (shape.Matrix, error) {
	// 1. Labels and keys must pair off exactly.
	if len(labels) != len(a) {
		return shape.Matrix{}, fmt.Errorf("%w: %d labels for %d keys", ErrLabelCount, len(labels), len(a))
	}
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}

	// 2. Zero grid.
	cells := make([][]int, len(labels))
	for i := range cells {
		cells[i] = make([]int, len(labels))
	}

	// 3. Set a cell per link; unresolvable names abort the encoding.
	for _, name := range a.Keys() {
		i, ok := pos[name]
		if !ok {
			return shape.Matrix{}, fmt.Errorf("%w: key %q has no label", ErrUnknownNode, name)
		}
		for _, succ := range a[name].Sorted() {
			j, ok := pos[succ]
			if !ok {
				return shape.Matrix{}, fmt.Errorf("%w: successor %q of %q has no label", ErrUnknownNode, succ, name)
			}
			cells[i][j] = 1
		}
	}

	return shape.Matrix{Labels: append([]string(nil), labels...), Cells: cells}, nil
}

// AdjacencyToForest builds one prefix tree per root: every walk from
// the root is a branch, shared descendants repeat per branch, and a
// name already on the current branch is not re-entered, so cyclic
// inputs terminate. Keys whose names never appear as successors are
// the roots.
//
// Complexity: O(paths × average path length)
func AdjacencyToForest(a shape.Adjacency) shape.Forest {
	f := make(shape.Forest)
	for _, r := range rootsOf(a) {
		f[r] = branch(a, r, make(map[string]bool))
	}

	return f
}

// AdjacencyToTree is AdjacencyToForest restricted to a single-root
// adjacency; any other root count is ErrRootCount.
func AdjacencyToTree(a shape.Adjacency) (*shape.Tree, error) {
	roots := rootsOf(a)
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrRootCount, len(roots))
	}

	return branch(a, roots[0], make(map[string]bool)), nil
}

// rootsOf returns the keys that appear in no successor set, sorted.
func rootsOf(a shape.Adjacency) []string {
	incoming := make(shape.Set)
	for _, succs := range a {
		incoming.Union(succs)
	}

	var roots []string
	for _, k := range a.Keys() {
		if !incoming.Has(k) {
			roots = append(roots, k)
		}
	}

	return roots
}

// branch grows the prefix tree below name. onPath holds the names of
// the branch being built; revisiting one would loop forever, so such
// successors are skipped.
func branch(a shape.Adjacency, name string, onPath map[string]bool) *shape.Tree {
	t := &shape.Tree{Value: node.String(name)}
	onPath[name] = true
	for _, succ := range a[name].Sorted() {
		if onPath[succ] {
			continue
		}
		t.Children = append(t.Children, branch(a, succ, onPath))
	}
	delete(onPath, name)

	return t
}
