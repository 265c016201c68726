// Package graph: the System type, its sentinel errors, and the
// constructor options.
package graph

import (
	"errors"

	"github.com/halcyard/plexus/collect"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// Sentinel errors for System operations.
var (
	// ErrEmptyName indicates a node whose name resolves to the empty
	// string.
	ErrEmptyName = errors.New("graph: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a node that is
	// not present.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is
	// not present.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a System
	// built with WithoutLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrNotReachable indicates Search exhausted its origins without
	// reaching the target.
	ErrNotReachable = errors.New("graph: target not reachable")
)

// System is the canonical mutable composite: a directed graph of named
// nodes owning one adjacency mapping as its sole source of truth.
//
// The catalog keeps the first node value admitted under each name and
// preserves admission order; the adjacency mapping tracks connections
// by name. Both always cover the same name set.
type System struct {
	adj        shape.Adjacency
	nodes      *collect.Hybrid
	allowLoops bool
}

// Option configures a System at construction.
type Option func(*System)

// WithoutLoops makes Connect reject self-loops with ErrLoopNotAllowed.
func WithoutLoops() Option {
	return func(s *System) { s.allowLoops = false }
}

// New returns an empty System. Self-loops are permitted unless
// WithoutLoops is given.
func New(opts ...Option) *System {
	s := &System{
		adj:        make(shape.Adjacency),
		nodes:      collect.NewHybrid(),
		allowLoops: true,
	}
	for _, fn := range opts {
		fn(s)
	}

	return s
}

// admit materializes n as a catalog entry and adjacency key. The first
// admission under a name wins the catalog slot; re-admission only
// ensures the key.
func (s *System) admit(n node.Node) {
	if !s.nodes.Contains(n.Name()) {
		s.nodes.Add(n)
	}
	s.adj.Ensure(n.Name())
}
