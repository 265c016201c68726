// Package shape: the Kind tag and the Classify dispatch point.
package shape

import (
	"reflect"

	"github.com/halcyard/plexus/node"
)

// Kind tags the composite shapes plexus recognizes. Classification is
// explicit: converters and constructors switch on Kind instead of
// probing values.
type Kind uint8

const (
	// KindUnknown marks values no recognizer claimed (only nil, in
	// practice: any other value can at least serve as a node).
	KindUnknown Kind = iota

	// KindNode marks a value usable as a single vertex.
	KindNode

	// KindEdge marks one directed tail→head pair.
	KindEdge

	// KindEdges marks a sequence of directed pairs.
	KindEdges

	// KindAdjacency marks the canonical name→successor-set mapping.
	KindAdjacency

	// KindMatrix marks the cell-grid-plus-labels form.
	KindMatrix

	// KindPipeline marks one linear node sequence.
	KindPipeline

	// KindPipelines marks a collection of linear sequences.
	KindPipelines

	// KindTree marks a rooted hierarchy.
	KindTree

	// KindForest marks a keyed collection of trees.
	KindForest
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	"unknown",
	"node",
	"edge",
	"edges",
	"adjacency",
	"matrix",
	"pipeline",
	"pipelines",
	"tree",
	"forest",
}

// String returns the lower-case tag name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Classify maps v to its Kind. Both the package's concrete types and
// the raw Go forms a caller may hold before adaptation are recognized:
//
//	Edge, [2]string, [2]node.Node            → KindEdge
//	Edges, []Edge, [][2]string               → KindEdges
//	Adjacency, map[string]Set,
//	map[string]map[string]struct{},
//	map[string][]string                      → KindAdjacency
//	Matrix, *Matrix                          → KindMatrix
//	Pipeline, []node.Node, []string          → KindPipeline
//	Pipelines, map[string]Pipeline,
//	[]Pipeline, [][]string                   → KindPipelines
//	Tree, *Tree, nested []any                → KindTree
//	Forest, map[string]*Tree                 → KindForest
//
// Anything else non-nil classifies as KindNode: every value can carry
// a name (see node.Of). Only nil is KindUnknown.
//
// Complexity: O(1) for typed forms; O(n) over the elements of a raw
// []any tree candidate.
func Classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindUnknown
	case Edge, [2]string, [2]node.Node:
		return KindEdge
	case Edges, []Edge, [][2]string:
		return KindEdges
	case Adjacency, map[string]Set, map[string]map[string]struct{}, map[string][]string:
		return KindAdjacency
	case Matrix, *Matrix:
		return KindMatrix
	case Pipeline, []node.Node, []string:
		return KindPipeline
	case Pipelines, map[string]Pipeline, []Pipeline, [][]string:
		return KindPipelines
	case Tree, *Tree:
		return KindTree
	case Forest, map[string]*Tree:
		return KindForest
	case []any:
		if rawTree(x) {
			return KindTree
		}
		return KindNode
	}

	return KindNode
}

// rawTree reports whether seq is a nested-sequence tree: every element
// is either a leaf value or a nested sequence satisfying the same
// rule. Maps and funcs cannot serve as leaves (no stable identity), so
// their presence disqualifies the sequence.
func rawTree(seq []any) bool {
	for _, el := range seq {
		if inner, nested := el.([]any); nested {
			if !rawTree(inner) {
				return false
			}
			continue
		}
		if el == nil {
			continue
		}
		switch reflect.TypeOf(el).Kind() {
		case reflect.Map, reflect.Func:
			return false
		}
	}

	return true
}
