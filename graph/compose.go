// Package graph: growth along the Directed contract.
//
// Append and Prepend absorb the incoming value first, then connect it
// to the bounds the System had before absorption. Bounds are
// snapshotted up front, so a value sharing names with existing nodes
// still composes against the pre-growth structure.
package graph

import (
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

var _ structure.Directed = (*System)(nil)

// Append grows s from its endpoints: every current endpoint connects
// to v's roots after v is absorbed. A single node connects to every
// endpoint; another Directed or composite shape is merged in whole.
// Appending onto an empty System makes s equal to v.
func (s *System) Append(v any) error {
	tails := s.Endpoints()
	other, bounds, err := s.resolve(v)
	if err != nil {
		return err
	}
	if other != nil {
		if err = s.Merge(other); err != nil {
			return err
		}
	}

	return s.connectAll(tails, bounds.roots)
}

// Prepend grows s before its roots: v's endpoints connect to every
// root s had before absorption.
func (s *System) Prepend(v any) error {
	heads := s.Roots()
	other, bounds, err := s.resolve(v)
	if err != nil {
		return err
	}
	if other != nil {
		if err = s.Merge(other); err != nil {
			return err
		}
	}

	return s.connectAll(bounds.ends, heads)
}

// bounds carries the growth anchors of an incoming value.
type bounds struct {
	roots []node.Node
	ends  []node.Node
}

// resolve normalizes v for composition. Directed values absorb via
// their walk enumeration; composite shapes build a sub-System through
// From; anything node-shaped becomes a single node that is its own
// root and endpoint.
func (s *System) resolve(v any) (*System, bounds, error) {
	switch x := v.(type) {
	case *System:
		return x, bounds{roots: x.Roots(), ends: x.Endpoints()}, nil
	case structure.Directed:
		sub, err := FromPipelines(x.Pipelines())
		if err != nil {
			return nil, bounds{}, err
		}
		return sub, bounds{roots: x.Roots(), ends: x.Endpoints()}, nil
	}

	if shape.Classify(v) == shape.KindNode {
		n := node.Of(v)
		if err := s.Add(n); err != nil {
			return nil, bounds{}, err
		}
		single := []node.Node{n}
		return nil, bounds{roots: single, ends: single}, nil
	}

	sub, err := From(v)
	if err != nil {
		return nil, bounds{}, err
	}

	return sub, bounds{roots: sub.Roots(), ends: sub.Endpoints()}, nil
}

// connectAll records every tail→head pair.
func (s *System) connectAll(tails, heads []node.Node) error {
	for _, t := range tails {
		for _, h := range heads {
			if err := s.Connect(t, h); err != nil {
				return err
			}
		}
	}

	return nil
}
