// Package graph: single-target search.
//
// Search finds one walk to a target instead of enumerating everything
// Paths would. Depth-first search returns the lexicographically
// earliest walk; breadth-first returns a shortest one. Both honor the
// same origin rules as Walk: an explicit WithOrigin, or every root in
// admission order.
package graph

import (
	"fmt"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// SearchOptions configures a Search call.
type SearchOptions struct {
	// Origin is the name the search starts from; empty means every
	// root is tried in admission order.
	Origin string

	// Breadth selects breadth-first exploration; depth-first is the
	// default.
	Breadth bool
}

// SearchOption configures Search.
type SearchOption func(*SearchOptions)

// DefaultSearchOptions returns depth-first search from the roots.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}

// WithOrigin starts the search at v (resolved by name identity)
// instead of the roots.
func WithOrigin(v any) SearchOption {
	return func(o *SearchOptions) {
		o.Origin = node.NameOf(v)
	}
}

// WithBreadthFirst explores in increasing distance from the origin,
// so the returned walk is a shortest one.
func WithBreadthFirst() SearchOption {
	return func(o *SearchOptions) {
		o.Breadth = true
	}
}

// Search returns one walk from an origin to target. Absent targets and
// absent explicit origins are ErrNodeNotFound; a present target no
// origin reaches is ErrNotReachable.
//
// Complexity: O(V + E) per origin.
func (s *System) Search(target any, opts ...SearchOption) (shape.Pipeline, error) {
	o := DefaultSearchOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Both bounds must exist before any walking starts.
	goal := node.NameOf(target)
	if _, ok := s.adj[goal]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, goal)
	}
	var origins []string
	if o.Origin != "" {
		if _, ok := s.adj[o.Origin]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, o.Origin)
		}
		origins = append(origins, o.Origin)
	} else {
		for _, r := range s.Roots() {
			origins = append(origins, r.Name())
		}
	}

	// 2. Try each origin until one reaches the goal.
	for _, origin := range origins {
		var names []string
		var ok bool
		if o.Breadth {
			names, ok = s.broad(origin, goal)
		} else {
			names, ok = s.deep(origin, goal, make(map[string]bool, s.Len()))
		}
		if ok {
			return s.pipeline(names), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotReachable, goal)
}

// deep walks depth-first from name, returning the first walk that
// reaches goal. seen spans the whole search, so each node is expanded
// once.
func (s *System) deep(name, goal string, seen map[string]bool) ([]string, bool) {
	seen[name] = true
	if name == goal {
		return []string{name}, true
	}
	for _, succ := range s.adj[name].Sorted() {
		if seen[succ] {
			continue
		}
		if rest, ok := s.deep(succ, goal, seen); ok {
			return append([]string{name}, rest...), true
		}
	}

	return nil, false
}

// broad walks breadth-first from origin and rebuilds the walk through
// parent links when goal is dequeued.
func (s *System) broad(origin, goal string) ([]string, bool) {
	queue := []string{origin}
	seen := map[string]bool{origin: true}
	parent := make(map[string]string, s.Len())

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if name == goal {
			// Rebuild origin→goal by walking the parent chain back.
			var names []string
			for at := goal; ; at = parent[at] {
				names = append([]string{at}, names...)
				if at == origin {
					return names, true
				}
			}
		}
		for _, succ := range s.adj[name].Sorted() {
			if seen[succ] {
				continue
			}
			seen[succ] = true
			parent[succ] = name
			queue = append(queue, succ)
		}
	}

	return nil, false
}
