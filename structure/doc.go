// Package structure declares the directed-structure contract: the
// capability set any directed composite offers regardless of its
// backing representation.
//
// Directed covers the read-only projections (Roots, Endpoints,
// Pipeline, Pipelines, Tree), growth from either boundary (Append,
// Prepend), and path discovery (Walk with WithStart/WithStop bounds).
// graph.System implements it over an adjacency mapping and
// arbor.Hierarchy over a rooted tree, so callers needing only directed
// semantics can take either.
//
// Composition is defined purely in terms of the growth operations:
// Compose(base, v) appends v onto base's endpoints, Precompose(base,
// v) prepends v before base's roots. These are the function forms of
// the += and left-+ idioms.
//
// Walk returns a named collection of walks; Flatten on the result
// yields the single combined pipeline when one sequence is wanted.
package structure
