// Package shape: concrete composite representation types.
//
// This file declares Edge, Edges, Set, Adjacency, Matrix, Pipeline,
// Pipelines, Tree, and Forest, with their small structural helpers.
// Adjacency is the canonical form; everything else converts through it
// (see package convert).
package shape

import (
	"sort"

	"github.com/halcyard/plexus/node"
)

// Edge is a directed connection Tail→Head. Edges carry no weight or
// label.
type Edge struct {
	// Tail is the origin node.
	Tail node.Node

	// Head is the destination node.
	Head node.Node
}

// NewEdge adapts tail and head via node.Of and returns the edge.
func NewEdge(tail, head any) Edge {
	return Edge{Tail: node.Of(tail), Head: node.Of(head)}
}

// Edges is an ordered list of directed edges.
type Edges []Edge

// Names returns the edges as (tail, head) name pairs in list order.
func (es Edges) Names() [][2]string {
	out := make([][2]string, len(es))
	for i, e := range es {
		out[i] = [2]string{e.Tail.Name(), e.Head.Name()}
	}

	return out
}

// Set is an unordered collection of node names with set semantics.
type Set map[string]struct{}

// NewSet returns a Set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Add inserts name; inserting an existing name is a no-op.
func (s Set) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Delete removes name if present.
func (s Set) Delete(name string) { delete(s, name) }

// Len returns the member count.
func (s Set) Len() int { return len(s) }

// Union adds every member of other into s.
func (s Set) Union(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for n := range s {
		out[n] = struct{}{}
	}

	return out
}

// Adjacency is the canonical directed-graph form: node name → set of
// successor names. A well-formed Adjacency lists every vertex as a
// key, including vertices with no outgoing edges (empty Set).
type Adjacency map[string]Set

// Ensure makes name a key (empty successor set if absent) and returns
// its set. Missing keys never materialize implicitly; every mutator
// calls Ensure explicitly.
func (a Adjacency) Ensure(name string) Set {
	s, ok := a[name]
	if !ok {
		s = make(Set)
		a[name] = s
	}

	return s
}

// Link ensures both endpoints exist and records the edge tail→head.
func (a Adjacency) Link(tail, head string) {
	a.Ensure(head)
	a.Ensure(tail).Add(head)
}

// Keys returns the key set in lexicographic order.
func (a Adjacency) Keys() []string {
	out := make([]string, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Merge unions other into a: shared keys union their successor sets,
// new keys copy theirs. The receiver changes; other does not.
func (a Adjacency) Merge(other Adjacency) {
	for k, s := range other {
		a.Ensure(k).Union(s)
	}
}

// Clone returns a deep copy: fresh map, fresh successor sets.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for k, s := range a {
		out[k] = s.Clone()
	}

	return out
}

// Matrix is the adjacency-matrix form: a square 0/1 cell grid plus the
// parallel label sequence. Cells[i][j] != 0 means an edge
// Labels[i]→Labels[j]. Geometry (squareness, label count) is validated
// by convert.MatrixToAdjacency, not here.
type Matrix struct {
	// Labels names each row/column, in order.
	Labels []string

	// Cells holds the connectivity grid, row-major.
	Cells [][]int
}

// Dim returns the row count of the cell grid.
func (m Matrix) Dim() int { return len(m.Cells) }

// Pipeline is one linear path: consecutive elements are implicitly
// connected tail→head. A single-element Pipeline is an isolated node.
type Pipeline []node.Node

// NewPipeline adapts each value via node.Of and returns the chain.
func NewPipeline(vs ...any) Pipeline {
	p := make(Pipeline, len(vs))
	for i, v := range vs {
		p[i] = node.Of(v)
	}

	return p
}

// Names returns the node names in chain order.
func (p Pipeline) Names() []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = n.Name()
	}

	return out
}

// Pipelines is a named collection of linear paths.
type Pipelines map[string]Pipeline

// Keys returns the pipeline names in lexicographic order.
func (ps Pipelines) Keys() []string {
	out := make([]string, 0, len(ps))
	for k := range ps {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Flatten concatenates every pipeline, iterating names in
// lexicographic order, into one combined Pipeline.
func (ps Pipelines) Flatten() Pipeline {
	var out Pipeline
	for _, k := range ps.Keys() {
		out = append(out, ps[k]...)
	}

	return out
}

// Tree is a rooted hierarchy: a value plus its ordered children. Trees
// share no descendants and contain no cycles.
type Tree struct {
	// Value is the node at this position.
	Value node.Node

	// Children are the ordered sub-trees.
	Children []*Tree
}

// NewTree adapts v via node.Of and attaches the given children.
func NewTree(v any, children ...*Tree) *Tree {
	return &Tree{Value: node.Of(v), Children: children}
}

// Leaf reports whether t has no children.
func (t *Tree) Leaf() bool { return len(t.Children) == 0 }

// Clone returns an independent deep copy of the tree. Values are
// shared; the tree structure is not. Cloning a nil tree yields nil.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{Value: t.Value}
	for _, c := range t.Children {
		out.Children = append(out.Children, c.Clone())
	}

	return out
}

// Forest is a disjoint collection of trees keyed by name.
type Forest map[string]*Tree
