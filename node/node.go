// Package node: identity adapter types and name derivation.
//
// This file declares Node, String, Named, Value, the Of adapter, and
// the NameOf derivation rule.
package node

import (
	"reflect"

	"github.com/go-openapi/inflect"
)

// NoneName is the canonical name assigned to nil values.
const NoneName = "none"

// Node is anything that can participate in a composite structure.
//
// Name uniquely identifies the node within its structure; structures
// treat equal names as the same vertex regardless of the underlying
// value.
type Node interface {
	// Name returns the node's identity string.
	Name() string
}

// String is a Node whose name is itself.
type String string

// Name returns the string verbatim.
func (s String) Name() string { return string(s) }

// Named provides a stored name. Embed it to make any struct a Node:
//
//	type Task struct {
//	    node.Named
//	    Cmd string
//	}
//
// A zero Named has the empty name; Of and NameOf substitute the
// type-derived name in that case.
type Named struct {
	// Label is the node name. Exported so literals can set it directly.
	Label string
}

// Name returns the stored label.
func (n Named) Name() string { return n.Label }

// Value adapts an arbitrary payload to the Node interface without
// touching the payload itself.
type Value struct {
	// Label is the derived node name.
	Label string

	// Payload is the adapted value, stored as given.
	Payload any
}

// Name returns the derived label.
func (v Value) Name() string { return v.Label }

// Of adapts v to a Node.
//
// Values that already implement Node with a non-empty name pass
// through untouched. Everything else (including Nodes with an empty
// name) is wrapped in a Value named per NameOf. The adapted value is
// never mutated.
//
// Complexity: O(1) plus one reflective type lookup on the wrap path.
func Of(v any) Node {
	// 1. Pass through ready-made identities.
	if n, ok := v.(Node); ok && n.Name() != "" {
		return n
	}
	// 2. Plain strings are their own name.
	if s, ok := v.(string); ok {
		return String(s)
	}
	// 3. Wrap everything else under a derived name.
	return Value{Label: NameOf(v), Payload: v}
}

// NameOf derives the identity name for v:
//
//  1. nil values are named NoneName.
//  2. A Node's declared non-empty name wins.
//  3. A plain string is its own name.
//  4. Otherwise the snake_case of the concrete type name (pointer
//     indirections stripped); unnamed types fall back to their kind.
func NameOf(v any) string {
	if v == nil {
		return NoneName
	}
	if n, ok := v.(Node); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		// Anonymous types carry no name; their kind is the best we have.
		return inflect.Underscore(t.Kind().String())
	}

	return inflect.Underscore(t.Name())
}
