// Package graph: structural queries over a System.
package graph

import (
	"fmt"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// Len returns the node count.
func (s *System) Len() int { return s.nodes.Len() }

// Contains reports membership by name identity: v is resolved via
// node.NameOf, so a freshly built node matches a stored one.
//
// Complexity: O(1).
func (s *System) Contains(v any) bool {
	_, ok := s.adj[node.NameOf(v)]
	return ok
}

// Node returns the stored node under name. Missing names are
// ErrNodeNotFound, distinguishing "absent" from "present".
func (s *System) Node(name string) (node.Node, error) {
	n, ok := s.nodes.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return n, nil
}

// Names returns every node name in admission order.
func (s *System) Names() []string { return s.nodes.Names() }

// Successors returns a copy of v's successor set, resolved by name
// identity. Missing nodes are ErrNodeNotFound; a present node with no
// out-edges yields an empty set.
//
// Complexity: O(deg(v)).
func (s *System) Successors(v any) (shape.Set, error) {
	name := node.NameOf(v)
	set, ok := s.adj[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return set.Clone(), nil
}

// Roots returns the nodes that appear in no successor set, in
// admission order. A self-looping node appears in its own set, so it
// is not a root.
//
// Complexity: O(V + E).
func (s *System) Roots() []node.Node {
	incoming := make(shape.Set, len(s.adj))
	for _, succs := range s.adj {
		incoming.Union(succs)
	}

	var out []node.Node
	for _, n := range s.nodes.Items() {
		if !incoming.Has(n.Name()) {
			out = append(out, n)
		}
	}

	return out
}

// Endpoints returns the nodes whose successor set is empty, in
// admission order. A self-looping node has a successor, so it is not
// an endpoint.
//
// Complexity: O(V).
func (s *System) Endpoints() []node.Node {
	var out []node.Node
	for _, n := range s.nodes.Items() {
		if s.adj[n.Name()].Len() == 0 {
			out = append(out, n)
		}
	}

	return out
}
