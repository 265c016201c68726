// Package structure: the Directed contract and composition helpers.
package structure

import (
	"errors"
	"strings"

	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// ErrNoPipeline indicates a structure whose walks do not reduce to one
// linear pipeline.
var ErrNoPipeline = errors.New("structure: not a single pipeline")

// Directed is the capability set of a directed composite. Graph-backed
// and tree-backed structures implement it alike, so callers that only
// need directed semantics are indifferent to the backing
// representation.
type Directed interface {
	// Roots returns the nodes with no incoming connection, in the
	// structure's own order.
	Roots() []node.Node

	// Endpoints returns the nodes with no outgoing connection, in the
	// structure's own order.
	Endpoints() []node.Node

	// Pipeline returns the structure's single linear walk, or
	// ErrNoPipeline when the walks do not reduce to one.
	Pipeline() (shape.Pipeline, error)

	// Pipelines returns every maximal walk, keyed by WalkKey.
	Pipelines() shape.Pipelines

	// Tree returns the walk set as a rooted hierarchy; structures
	// without exactly one root cannot project one.
	Tree() (*shape.Tree, error)

	// Append grows the structure from its endpoints: every current
	// endpoint connects to v (for an incoming Directed, to each of its
	// roots, after its contents are absorbed).
	Append(v any) error

	// Prepend grows the structure before its roots: v (or each
	// endpoint of an incoming Directed) connects to every current
	// root.
	Prepend(v any) error

	// Walk discovers paths between the optional WithStart and WithStop
	// bounds; with no bounds it reproduces Pipelines.
	Walk(opts ...WalkOption) shape.Pipelines
}

// Compose appends v onto base: the += idiom as a function.
func Compose(base Directed, v any) error { return base.Append(v) }

// Precompose prepends v before base: right-composition as a function.
func Precompose(base Directed, v any) error { return base.Prepend(v) }

// WalkKey names a walk by joining its node names with "→". Every
// Directed implementation keys its Pipelines this way, so walks of
// different structures compare by key.
func WalkKey(p shape.Pipeline) string {
	return strings.Join(p.Names(), "→")
}
