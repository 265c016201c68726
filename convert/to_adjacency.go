// Package convert: forward conversions into canonical adjacency form.
package convert

import (
	"fmt"
	"strconv"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// ToAdjacency converts any recognized composite shape to a fresh
// Adjacency. Dispatch is an explicit match on shape.Classify, so both
// the typed shapes and raw map/slice forms are accepted. Tree-shaped
// inputs return ErrUnsupportedConversion; unrecognized inputs return
// ErrShape naming the actual type.
//
// Complexity: O(V + E) over the input's nodes and links.
func ToAdjacency(v any) (shape.Adjacency, error) {
	switch shape.Classify(v) {
	case shape.KindAdjacency:
		a, ok := asAdjacency(v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrShape, v)
		}
		return a, nil
	case shape.KindEdge, shape.KindEdges:
		es, ok := asEdges(v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrShape, v)
		}
		return EdgesToAdjacency(es), nil
	case shape.KindMatrix:
		m, ok := asMatrix(v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrShape, v)
		}
		return MatrixToAdjacency(m)
	case shape.KindPipeline:
		p, ok := asPipeline(v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrShape, v)
		}
		return PipelineToAdjacency(p), nil
	case shape.KindPipelines:
		ps, ok := asPipelines(v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrShape, v)
		}
		return PipelinesToAdjacency(ps), nil
	case shape.KindTree, shape.KindForest:
		return nil, fmt.Errorf("%w: %T to adjacency", ErrUnsupportedConversion, v)
	}

	return nil, fmt.Errorf("%w: cannot derive adjacency from %T", ErrShape, v)
}

// EdgesToAdjacency folds a directed edge list into adjacency form.
// Both endpoints of every edge become keys (heads with an empty
// successor set until they gain out-edges); duplicate edges collapse
// by set union.
//
// Complexity: O(E)
func EdgesToAdjacency(es shape.Edges) shape.Adjacency {
	adj := make(shape.Adjacency, len(es))
	for _, e := range es {
		adj.Link(e.Tail.Name(), e.Head.Name())
	}

	return adj
}

// MatrixToAdjacency decodes a 0/1 connectivity grid.
//
// Preconditions, checked in order: every row spans the row count
// (ErrNonSquare) and the label sequence covers the dimension
// (ErrLabelCount). A non-zero cell [i][j] records Labels[i]→Labels[j];
// every label becomes a key even when its row is all zeros.
//
// Complexity: O(V²)
func MatrixToAdjacency(m shape.Matrix) (shape.Adjacency, error) {
	n := m.Dim()

	// 1. Geometry first: reject ragged grids.
	for i, row := range m.Cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	// 2. Labels must map one-to-one onto rows.
	if len(m.Labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(m.Labels), n)
	}

	// 3. Decode cells into links.
	adj := make(shape.Adjacency, n)
	for i, row := range m.Cells {
		adj.Ensure(m.Labels[i])
		for j, cell := range row {
			if cell != 0 {
				adj.Link(m.Labels[i], m.Labels[j])
			}
		}
	}

	return adj, nil
}

// PipelineToAdjacency chains consecutive elements tail→head. A
// single-element pipeline yields one key with an empty successor set;
// an empty pipeline yields an empty adjacency.
//
// Complexity: O(len(p))
func PipelineToAdjacency(p shape.Pipeline) shape.Adjacency {
	adj := make(shape.Adjacency, len(p))
	if len(p) == 0 {
		return adj
	}
	adj.Ensure(p[0].Name())
	for i := 1; i < len(p); i++ {
		adj.Link(p[i-1].Name(), p[i].Name())
	}

	return adj
}

// PipelinesToAdjacency converts each named pipeline independently and
// merges the results by successor-set union. Iteration follows sorted
// pipeline names; the merged result is order-independent anyway.
//
// Complexity: O(total pipeline length)
func PipelinesToAdjacency(ps shape.Pipelines) shape.Adjacency {
	adj := make(shape.Adjacency)
	for _, k := range ps.Keys() {
		adj.Merge(PipelineToAdjacency(ps[k]))
	}

	return adj
}

// TreeToAdjacency is deliberately not provided: a tree flattened into
// adjacency loses the distinction between shared names and shared
// descendants, so callers must route tree-shaped composites through a
// graph built by explicit connects. Always returns
// ErrUnsupportedConversion.
func TreeToAdjacency(*shape.Tree) (shape.Adjacency, error) {
	return nil, fmt.Errorf("%w: tree to adjacency", ErrUnsupportedConversion)
}

// asAdjacency rebuilds any accepted adjacency form as a fresh,
// well-formed Adjacency: successors materialize as keys, and the
// result shares no storage with the input.
func asAdjacency(v any) (shape.Adjacency, bool) {
	out := make(shape.Adjacency)
	switch x := v.(type) {
	case shape.Adjacency:
		copyAdjacency(out, x)
	case map[string]shape.Set:
		copyAdjacency(out, x)
	case map[string]map[string]struct{}:
		for k, succs := range x {
			out.Ensure(k)
			for s := range succs {
				out.Link(k, s)
			}
		}
	case map[string][]string:
		for k, succs := range x {
			out.Ensure(k)
			for _, s := range succs {
				out.Link(k, s)
			}
		}
	default:
		return nil, false
	}

	return out, true
}

func copyAdjacency(dst shape.Adjacency, src map[string]shape.Set) {
	for k, succs := range src {
		dst.Ensure(k)
		for s := range succs {
			dst.Link(k, s)
		}
	}
}

// asEdges normalizes single edges, edge lists, and raw name pairs.
func asEdges(v any) (shape.Edges, bool) {
	switch x := v.(type) {
	case shape.Edges:
		return x, true
	case []shape.Edge:
		return shape.Edges(x), true
	case shape.Edge:
		return shape.Edges{x}, true
	case [2]node.Node:
		return shape.Edges{{Tail: x[0], Head: x[1]}}, true
	case [2]string:
		return shape.Edges{shape.NewEdge(x[0], x[1])}, true
	case [][2]string:
		es := make(shape.Edges, len(x))
		for i, pair := range x {
			es[i] = shape.NewEdge(pair[0], pair[1])
		}
		return es, true
	}

	return nil, false
}

// asMatrix normalizes matrix values and pointers.
func asMatrix(v any) (shape.Matrix, bool) {
	switch x := v.(type) {
	case shape.Matrix:
		return x, true
	case *shape.Matrix:
		if x == nil {
			return shape.Matrix{}, false
		}
		return *x, true
	}

	return shape.Matrix{}, false
}

// asPipeline normalizes node and name sequences.
func asPipeline(v any) (shape.Pipeline, bool) {
	switch x := v.(type) {
	case shape.Pipeline:
		return x, true
	case []node.Node:
		return shape.Pipeline(x), true
	case []string:
		p := make(shape.Pipeline, len(x))
		for i, s := range x {
			p[i] = node.String(s)
		}
		return p, true
	}

	return nil, false
}

// asPipelines normalizes named and positional pipeline collections.
// Positional forms gain index-derived names, which only serve as map
// keys: adjacency conversion ignores them.
func asPipelines(v any) (shape.Pipelines, bool) {
	switch x := v.(type) {
	case shape.Pipelines:
		return x, true
	case map[string]shape.Pipeline:
		return shape.Pipelines(x), true
	case []shape.Pipeline:
		ps := make(shape.Pipelines, len(x))
		for i, p := range x {
			ps[strconv.Itoa(i)] = p
		}
		return ps, true
	case [][]string:
		ps := make(shape.Pipelines, len(x))
		for i, names := range x {
			p, _ := asPipeline(names)
			ps[strconv.Itoa(i)] = p
		}
		return ps, true
	}

	return nil, false
}
