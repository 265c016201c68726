// Package shape declares the composite shapes plexus recognizes and
// the classifier that tells them apart.
//
// The shape package provides:
//
//   - Concrete representation types: Edge/Edges, Set, Adjacency,
//     Matrix, Pipeline, Pipelines, Tree, Forest. Adjacency is the
//     canonical form every other shape converts through.
//   - Kind, a tagged classification of those shapes, and Classify,
//     the single dispatch point that maps an arbitrary value (typed
//     shape or raw map/slice form) to its Kind.
//   - Is* predicates (IsEdges, IsAdjacency, IsMatrix, IsPipeline,
//     IsPipelines, IsTree, IsForest, IsGraph, IsComposite), all pure
//     and routed through Classify.
//
// Predicates answer "is it shaped like X"; geometric legality (square
// matrices, resolvable labels) is checked by package convert at
// conversion time.
//
// See package convert for the conversions between shapes and package
// graph for the mutable structure built on Adjacency.
package shape
