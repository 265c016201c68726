// Package graph: constructors from external representations.
//
// Each named constructor runs the matching convert routine (or an
// equivalent direct ingestion), so a System is only ever populated
// from a shape that validated in full. Construction failures return
// before any state is shared with the caller.
package graph

import (
	"fmt"

	"github.com/halcyard/plexus/convert"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// FromEdges builds a System holding every edge in list order. Node
// values ride along into the catalog; both endpoints of each edge
// materialize.
//
// Complexity: O(E).
func FromEdges(es shape.Edges, opts ...Option) (*System, error) {
	s := New(opts...)
	for _, e := range es {
		if err := s.Connect(e.Tail, e.Head); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FromAdjacency builds a System from an adjacency mapping. Keys are
// admitted in lexicographic order (map iteration carries none), and
// successors materialize as nodes of their own.
//
// Complexity: O(V log V + E log E).
func FromAdjacency(a shape.Adjacency, opts ...Option) (*System, error) {
	s := New(opts...)
	if err := s.ingest(a); err != nil {
		return nil, err
	}

	return s, nil
}

// FromMatrix decodes a connectivity grid via convert.MatrixToAdjacency
// and admits the labels in label order, so the System's admission
// order reproduces the matrix layout.
//
// Complexity: O(V²).
func FromMatrix(m shape.Matrix, opts ...Option) (*System, error) {
	a, err := convert.MatrixToAdjacency(m)
	if err != nil {
		return nil, err
	}

	s := New(opts...)
	// Admit labels first: ingest re-admits them in sorted order, which
	// the first-wins catalog ignores.
	for _, label := range m.Labels {
		if err = s.Add(label); err != nil {
			return nil, err
		}
	}
	if err = s.ingest(a); err != nil {
		return nil, err
	}

	return s, nil
}

// FromPipeline chains the sequence into a System: consecutive elements
// connect tail→head, and a single-element pipeline yields one isolated
// node.
func FromPipeline(p shape.Pipeline, opts ...Option) (*System, error) {
	s := New(opts...)
	if err := s.thread(p); err != nil {
		return nil, err
	}

	return s, nil
}

// FromPipelines threads each named pipeline into one System, iterating
// names in lexicographic order. Shared nodes union their successors.
func FromPipelines(ps shape.Pipelines, opts ...Option) (*System, error) {
	s := New(opts...)
	for _, k := range ps.Keys() {
		if err := s.thread(ps[k]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// From dispatches v to the matching named constructor. Typed shapes
// keep their node values and ordering guarantees; raw map and slice
// forms route through convert.ToAdjacency first. Tree-shaped inputs
// fail with convert.ErrUnsupportedConversion and anything
// unrecognized with convert.ErrShape, naming the actual type.
func From(v any, opts ...Option) (*System, error) {
	switch x := v.(type) {
	case *System:
		s := New(opts...)
		if err := s.Merge(x); err != nil {
			return nil, err
		}
		return s, nil
	case shape.Edges:
		return FromEdges(x, opts...)
	case []shape.Edge:
		return FromEdges(shape.Edges(x), opts...)
	case shape.Edge:
		return FromEdges(shape.Edges{x}, opts...)
	case shape.Adjacency:
		return FromAdjacency(x, opts...)
	case shape.Matrix:
		return FromMatrix(x, opts...)
	case *shape.Matrix:
		if x == nil {
			return nil, fmt.Errorf("%w: got %T", convert.ErrShape, v)
		}
		return FromMatrix(*x, opts...)
	case shape.Pipeline:
		return FromPipeline(x, opts...)
	case []node.Node:
		return FromPipeline(shape.Pipeline(x), opts...)
	case shape.Pipelines:
		return FromPipelines(x, opts...)
	}

	a, err := convert.ToAdjacency(v)
	if err != nil {
		return nil, err
	}

	return FromAdjacency(a, opts...)
}

// ingest admits every key of a, then records its links, both in
// lexicographic order. Admission is first-wins, so pre-admitted names
// keep their position.
func (s *System) ingest(a shape.Adjacency) error {
	// 1. Keys first, so isolated nodes survive.
	for _, name := range a.Keys() {
		if err := s.Add(name); err != nil {
			return err
		}
	}
	// 2. Links; Connect enforces the loop policy.
	for _, name := range a.Keys() {
		for _, succ := range a[name].Sorted() {
			if err := s.Connect(name, succ); err != nil {
				return err
			}
		}
	}

	return nil
}

// thread admits p's head and connects each consecutive pair.
func (s *System) thread(p shape.Pipeline) error {
	if len(p) == 0 {
		return nil
	}
	if err := s.Add(p[0]); err != nil {
		return err
	}
	for i := 1; i < len(p); i++ {
		if err := s.Connect(p[i-1], p[i]); err != nil {
			return err
		}
	}

	return nil
}
