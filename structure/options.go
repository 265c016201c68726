// Package structure: functional options for Walk.
package structure

import "github.com/halcyard/plexus/node"

// WalkOptions bounds a Walk. Zero values mean unbounded: walks start
// at every root and run to every endpoint.
type WalkOptions struct {
	// Start is the name the walks begin at; empty means every root.
	Start string

	// Stop is the name a walk terminates on when reached; empty means
	// walks run until no successor can extend them.
	Stop string
}

// WalkOption configures a Walk call.
type WalkOption func(*WalkOptions)

// DefaultWalkOptions returns unbounded options.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{}
}

// WithStart bounds the walk to begin at v (resolved by name identity).
func WithStart(v any) WalkOption {
	return func(o *WalkOptions) {
		o.Start = node.NameOf(v)
	}
}

// WithStop terminates any walk that reaches v (resolved by name
// identity); walks that never reach it still run to their endpoints.
func WithStop(v any) WalkOption {
	return func(o *WalkOptions) {
		o.Stop = node.NameOf(v)
	}
}
