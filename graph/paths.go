// Package graph: path enumeration.
//
// Paths and Walk share one depth-first walker. The walker extends the
// current walk by one successor at a time and keeps an on-path guard:
// a name already on the walk being extended is never re-entered, so
// enumeration terminates on cyclic graphs. A walk is recorded when
// nothing can extend it: either the current node is an endpoint, or
// every successor is already on the walk (a dead end closing a cycle).
package graph

import (
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// Paths enumerates every maximal walk from every root. Roots iterate
// in admission order and successors in sorted order, so the result is
// reproducible. Walks sharing a prefix are all reported; each distinct
// terminal is structurally its own walk.
//
// Complexity: O(paths × average walk length); the path count can grow
// exponentially with branching, which is inherent to enumeration.
func (s *System) Paths() []shape.Pipeline {
	var out []shape.Pipeline
	for _, r := range s.Roots() {
		s.wander(r.Name(), "", make([]string, 0, s.Len()), make(map[string]bool, s.Len()), &out)
	}

	return out
}

// Walk discovers walks between the option bounds and keys them with
// structure.WalkKey. Unbounded, it reproduces Paths. WithStart names
// the single origin (an absent origin yields no walks); WithStop
// terminates any walk that reaches it early.
func (s *System) Walk(opts ...structure.WalkOption) shape.Pipelines {
	o := structure.DefaultWalkOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Resolve origins: the explicit start, or every root.
	var origins []string
	if o.Start != "" {
		if _, ok := s.adj[o.Start]; ok {
			origins = append(origins, o.Start)
		}
	} else {
		for _, r := range s.Roots() {
			origins = append(origins, r.Name())
		}
	}

	// 2. Run the shared walker per origin.
	var walks []shape.Pipeline
	for _, origin := range origins {
		s.wander(origin, o.Stop, make([]string, 0, s.Len()), make(map[string]bool, s.Len()), &walks)
	}

	// 3. Key the walks.
	ps := make(shape.Pipelines, len(walks))
	for _, w := range walks {
		ps[structure.WalkKey(w)] = w
	}

	return ps
}

// wander extends walk by name, recording it once nothing can extend it
// or the stop name is reached. onPath guards re-entry.
func (s *System) wander(name, stop string, walk []string, onPath map[string]bool, out *[]shape.Pipeline) {
	walk = append(walk, name)
	if name == stop {
		*out = append(*out, s.pipeline(walk))
		return
	}

	onPath[name] = true
	extended := false
	for _, succ := range s.adj[name].Sorted() {
		if onPath[succ] {
			continue
		}
		extended = true
		s.wander(succ, stop, walk, onPath, out)
	}
	if !extended {
		*out = append(*out, s.pipeline(walk))
	}
	delete(onPath, name)
}

// pipeline resolves a name walk back to catalog nodes.
func (s *System) pipeline(names []string) shape.Pipeline {
	p := make(shape.Pipeline, len(names))
	for i, name := range names {
		p[i], _ = s.nodes.Get(name)
	}

	return p
}
