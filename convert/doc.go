// Package convert maps every recognized composite shape to and from
// the canonical adjacency form.
//
// Forward (shape → Adjacency):
//
//   - EdgesToAdjacency: tail→head pairs; heads materialize as keys.
//   - MatrixToAdjacency: 0/1 grid decoded by label position; rejects
//     non-square grids and label miscounts.
//   - PipelineToAdjacency: consecutive chain links; one element means
//     one isolated node.
//   - PipelinesToAdjacency: per-pipeline conversion merged by
//     successor-set union.
//   - TreeToAdjacency: deliberately unsupported; returns
//     ErrUnsupportedConversion instead of a partial result.
//   - ToAdjacency: single entry point dispatching on shape.Classify,
//     accepting typed shapes and raw map/slice forms alike.
//
// Backward (Adjacency → shape):
//
//   - AdjacencyToEdges: sorted tails, sorted heads.
//   - AdjacencyToMatrix / MatrixWithLabels: lexicographic or
//     caller-ordered labels; a successor that resolves to no label is
//     an error, never a dropped cell.
//   - AdjacencyToTree / AdjacencyToForest: prefix tree of every walk
//     from a root, cycle-guarded.
//
// Conversions build a fresh result and never alias or mutate their
// input; on error no partial value is returned.
//
// Errors:
//
//	ErrShape                 - value does not match the required shape.
//	ErrUnsupportedConversion - recognized but deliberately unimplemented path.
//	ErrNonSquare             - matrix row lengths differ from row count.
//	ErrLabelCount            - label count does not cover the key/row set.
//	ErrUnknownNode           - successor name resolves to no known key/label.
//	ErrRootCount             - tree projection needs exactly one root.
package convert
