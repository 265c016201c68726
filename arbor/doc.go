// Package arbor provides Hierarchy, the tree-backed directed
// composite.
//
// A Hierarchy stores a rooted shape.Tree and implements the same
// structure.Directed contract as graph.System, so callers that only
// need directed semantics (roots, endpoints, walks, composition) can
// hold either behind the interface. The difference is in what the
// backing form preserves: a System collapses equal names into one
// vertex, while a Hierarchy keeps every occurrence as its own branch
// position, sharing no descendants.
//
// Construction:
//
//	h := arbor.New()                          // empty
//	h := arbor.FromTree(t)                    // clone of an existing tree
//	h := arbor.FromPipeline(p)                // linear chain
//	h, err := arbor.FromPipelines(ps)         // prefix-merged branches
//	h, err := arbor.From(v)                   // dispatch on shape
//
// Growth follows the Directed contract: Append grafts a value beneath
// every leaf, Prepend roofs the current root with a new one. Grafted
// subtrees are cloned per attachment point, preserving the no-shared-
// descendants property.
//
// Walks enumerate root-to-leaf branches. WithStart begins at the first
// pre-order subtree carrying the name; WithStop truncates a branch the
// moment the name is reached.
package arbor
