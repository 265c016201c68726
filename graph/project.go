// Package graph: projections of a System into the shape representations.
//
// Every projection copies; callers may mutate the result without
// affecting the System. Edge and label orders are derived from the
// admission order of the catalog plus sorted successor iteration,
// so the same System always projects identically.
package graph

import (
	"fmt"

	"github.com/halcyard/plexus/convert"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// Edges lists every connection as tail/head pairs. Tails follow
// admission order, heads sorted order.
//
// Complexity: O(V + E log E).
func (s *System) Edges() shape.Edges {
	var es shape.Edges
	for _, tail := range s.nodes.Names() {
		t, ok := s.nodes.Get(tail)
		if !ok {
			t = node.String(tail)
		}
		for _, head := range s.adj[tail].Sorted() {
			h, ok := s.nodes.Get(head)
			if !ok {
				h = node.String(head)
			}
			es = append(es, shape.NewEdge(t, h))
		}
	}

	return es
}

// Adjacency snapshots the internal adjacency structure.
func (s *System) Adjacency() shape.Adjacency {
	return s.adj.Clone()
}

// Matrix projects the System into an adjacency matrix whose labels
// follow admission order.
func (s *System) Matrix() (shape.Matrix, error) {
	return convert.MatrixWithLabels(s.adj, s.Names())
}

// Pipeline returns the System's single walk. A System with zero or
// several walks is not a pipeline and the call fails with
// structure.ErrNoPipeline.
func (s *System) Pipeline() (shape.Pipeline, error) {
	walks := s.Paths()
	if len(walks) != 1 {
		return nil, fmt.Errorf("%w: %d walks", structure.ErrNoPipeline, len(walks))
	}

	return walks[0], nil
}

// Pipelines enumerates every walk, keyed by the joined node names.
func (s *System) Pipelines() shape.Pipelines {
	return s.Walk()
}

// Forest projects the System into one tree per root. Nodes reachable
// from several roots appear under each; a branch closing a cycle stops
// at the repeated node.
func (s *System) Forest() shape.Forest {
	f := make(shape.Forest, len(s.adj))
	for _, r := range s.Roots() {
		f[r.Name()] = s.limb(r.Name(), make(map[string]bool, s.Len()))
	}

	return f
}

// Tree projects a single-rooted System into its tree. Any other root
// count fails with convert.ErrRootCount.
func (s *System) Tree() (*shape.Tree, error) {
	roots := s.Roots()
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: %d roots", convert.ErrRootCount, len(roots))
	}

	return s.limb(roots[0].Name(), make(map[string]bool, s.Len())), nil
}

// limb builds the subtree under name, guarding against re-entry along
// the current branch.
func (s *System) limb(name string, onPath map[string]bool) *shape.Tree {
	n, ok := s.nodes.Get(name)
	if !ok {
		n = node.String(name)
	}
	t := shape.NewTree(n)
	onPath[name] = true
	for _, succ := range s.adj[name].Sorted() {
		if onPath[succ] {
			continue
		}
		t.Children = append(t.Children, s.limb(succ, onPath))
	}
	delete(onPath, name)

	return t
}
