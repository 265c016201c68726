// Package graph provides System, the canonical mutable composite: a
// directed graph of named nodes backed by one adjacency mapping.
//
// The adjacency mapping is the sole source of truth. Every other view
// (Edges, Matrix, Pipeline, Pipelines, Tree, Forest) is a computed
// projection, so there is exactly one writable representation and no
// representation drift.
//
// Identity is the node name: two values carrying the same name denote
// the same vertex, and a freshly built node matches a stored one. The
// stored node value is the first one admitted under a name; later
// admissions of the same name are no-ops.
//
// Construction:
//
//   - New(opts...) — empty System.
//   - FromEdges, FromAdjacency, FromMatrix, FromPipeline,
//     FromPipelines — one constructor per shape.
//   - From(v) — dispatches on shape.Classify, accepting typed shapes
//     and raw map/slice forms; tree shapes are rejected with
//     convert.ErrUnsupportedConversion.
//
// Mutation:
//
//   - Add, Connect — idempotent; redundant calls are no-ops, not
//     errors, to keep incremental building ergonomic.
//   - Disconnect, Delete — removal; absent targets are
//     ErrEdgeNotFound/ErrNodeNotFound.
//   - Merge — successor-set union with the receiver's key order first,
//     then the other's unseen keys.
//
// Analysis:
//
//   - Roots: nodes appearing in no successor set. Endpoints: nodes
//     with an empty successor set. A node whose only edge is a
//     self-loop is neither.
//   - Paths: every maximal walk from every root, depth-first, with an
//     on-path guard so cyclic graphs terminate. Walks that dead-end in
//     a cycle are recorded like walks that reach an endpoint.
//   - Search: first discovery walk to a target, depth-first by
//     default, breadth-first with WithBreadthFirst.
//
// Determinism: names iterate in insertion order, successors in sorted
// order, and raw (unordered) inputs are ingested in lexicographic key
// order, so every operation is reproducible run to run.
//
// Configuration Options (Option):
//
//	– WithoutLoops()
//	    Rejects self-loops; Connect(v, v) → ErrLoopNotAllowed.
//	    By default self-loops are stored like any other edge.
//
// System is not safe for concurrent use; callers serialize access
// externally when sharing one across goroutines.
//
// Errors:
//
//	ErrEmptyName      - node name resolves to the empty string.
//	ErrNodeNotFound   - operation referenced an absent node.
//	ErrEdgeNotFound   - operation referenced an absent edge.
//	ErrLoopNotAllowed - self-loop rejected under WithoutLoops.
//	ErrNotReachable   - Search exhausted its origins without a hit.
package graph
