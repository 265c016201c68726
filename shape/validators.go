// SPDX-License-Identifier: MIT
// Package shape: composite-shape predicates.
//
// Every predicate is pure, side-effect free, and routed through
// Classify so all of plexus agrees on what each shape is. Converters
// use them as guards; callers use them to dispatch without probing.
package shape

import "github.com/halcyard/plexus/node"

// IsNode reports whether v can serve as a single vertex. Any non-nil
// value qualifies: node.Of derives a name for values that lack one.
func IsNode(v any) bool { return v != nil }

// ImplementsNode reports whether v already satisfies node.Node, i.e.
// carries a declared name and needs no wrapping.
func ImplementsNode(v any) bool {
	_, ok := v.(node.Node)
	return ok
}

// IsEdge reports whether v is one directed tail→head pair.
func IsEdge(v any) bool { return Classify(v) == KindEdge }

// IsEdges reports whether v is a sequence of directed pairs.
func IsEdges(v any) bool { return Classify(v) == KindEdges }

// IsAdjacency reports whether v is a name→successor-set mapping.
func IsAdjacency(v any) bool { return Classify(v) == KindAdjacency }

// IsMatrix reports whether v is matrix-shaped (cell grid plus labels).
// Geometry is not checked here; convert.MatrixToAdjacency rejects
// non-square grids and label miscounts.
func IsMatrix(v any) bool { return Classify(v) == KindMatrix }

// IsPipeline reports whether v is one linear node sequence.
func IsPipeline(v any) bool { return Classify(v) == KindPipeline }

// IsPipelines reports whether v is a collection of linear sequences,
// either named (Pipelines) or positional ([]Pipeline, [][]string).
func IsPipelines(v any) bool { return Classify(v) == KindPipelines }

// IsTree reports whether v is a rooted hierarchy (Tree or a raw
// nested sequence).
func IsTree(v any) bool { return Classify(v) == KindTree }

// IsForest reports whether v is a keyed collection of trees.
func IsForest(v any) bool { return Classify(v) == KindForest }

// IsGraph reports whether v is one of the graph shapes: adjacency,
// matrix, or edge list.
func IsGraph(v any) bool {
	switch Classify(v) {
	case KindAdjacency, KindMatrix, KindEdges:
		return true
	}

	return false
}

// IsComposite reports whether v is any recognized composite shape.
// Single nodes and single edges are parts, not composites.
func IsComposite(v any) bool {
	switch Classify(v) {
	case KindEdges, KindAdjacency, KindMatrix, KindPipeline, KindPipelines, KindTree, KindForest:
		return true
	}

	return false
}
