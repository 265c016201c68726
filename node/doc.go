// Package node defines the identity contract shared by every composite
// structure in plexus.
//
// A Node is anything with a Name; names are the sole identity within a
// structure, so two values carrying the same name denote the same
// vertex. The package provides:
//
//   - Node, the one-method interface every structure stores.
//   - String, a string that is its own name.
//   - Named, an embeddable struct granting a stored name.
//   - Of, a non-mutating adapter from any Go value to a Node.
//   - NameOf, the name-derivation rule (declared name, else snake_case
//     of the concrete type name).
//
// Adapters never modify the adapted value: foreign values are wrapped
// in a Value that carries the payload alongside its derived name.
package node
