// Package graph: in-place System mutation.
//
// Add and Connect are idempotent: repeating a call leaves the System
// unchanged and returns nil. Removal operations surface absent targets
// as sentinel errors so callers can distinguish "absent" from "present
// with empty successors".
package graph

import (
	"fmt"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// Add admits v (adapted via node.Of) as an isolated node if its name
// is new; an existing name is a no-op that keeps the stored node.
// Returns ErrEmptyName when the name resolves to "".
//
// Complexity: O(1) amortized.
func (s *System) Add(v any) error {
	n := node.Of(v)
	if n.Name() == "" {
		return ErrEmptyName
	}
	s.admit(n)

	return nil
}

// Connect ensures both endpoints exist (implicit Add) and records the
// edge tail→head. Duplicate connects are no-ops. Self-loops are stored
// unless the System was built WithoutLoops.
//
// Complexity: O(1) amortized.
func (s *System) Connect(tail, head any) error {
	t, h := node.Of(tail), node.Of(head)

	// 1. Validate names before touching state.
	if t.Name() == "" || h.Name() == "" {
		return ErrEmptyName
	}
	// 2. Loop policy.
	if t.Name() == h.Name() && !s.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, t.Name())
	}

	// 3. Materialize endpoints, then record; set insertion is
	// idempotent.
	s.admit(t)
	s.admit(h)
	s.adj[t.Name()].Add(h.Name())

	return nil
}

// Disconnect removes the edge tail→head. Absent endpoints are
// ErrNodeNotFound; a present pair without the edge is ErrEdgeNotFound.
//
// Complexity: O(1).
func (s *System) Disconnect(tail, head any) error {
	t, h := node.NameOf(tail), node.NameOf(head)

	set, ok := s.adj[t]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, t)
	}
	if _, ok = s.adj[h]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, h)
	}
	if !set.Has(h) {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, t, h)
	}
	set.Delete(h)

	return nil
}

// Delete removes v's node, its successor set, and every inbound
// reference to it. Returns ErrNodeNotFound when absent.
//
// Complexity: O(V).
func (s *System) Delete(v any) error {
	name := node.NameOf(v)
	if _, ok := s.adj[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	delete(s.adj, name)
	for _, set := range s.adj {
		set.Delete(name)
	}
	s.nodes.Remove(name)

	return nil
}

// Merge unions other into s: shared names union their successor sets,
// new names arrive in other's admission order after s's existing
// order. Stored node values under shared names keep the receiver's.
// All-or-nothing: a loop violation under WithoutLoops aborts before
// any state changes. A nil other is a no-op.
//
// Complexity: O(V + E) over other.
func (s *System) Merge(other *System) error {
	if other == nil {
		return nil
	}
	// 1. Check the loop policy up front so failure leaves s untouched.
	if !s.allowLoops {
		for name, succs := range other.adj {
			if succs.Has(name) {
				return fmt.Errorf("%w: %q", ErrLoopNotAllowed, name)
			}
		}
	}

	// 2. Admit other's nodes in its order, then union the links.
	for _, n := range other.nodes.Items() {
		s.admit(n)
	}
	s.adj.Merge(other.adj)

	return nil
}

// Clone returns an independent deep copy: fresh adjacency, fresh
// catalog sequence (node values are shared, as everywhere in plexus).
func (s *System) Clone() *System {
	return &System{
		adj:        s.adj.Clone(),
		nodes:      s.nodes.Clone(),
		allowLoops: s.allowLoops,
	}
}

// Clear removes every node and edge; the loop policy survives.
func (s *System) Clear() {
	s.adj = make(shape.Adjacency)
	s.nodes.Clear()
}
