package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/plexus/graph"
	"github.com/halcyard/plexus/node"
	"github.com/halcyard/plexus/shape"
)

// Crew and Gadget exercise the identity adapter: neither declares a
// name, so both derive one from their type.
type Crew struct{}

type SpyGadget struct {
	Serial int
}

// buildOutlaws assembles the five-node demo graph by hand:
// bonnie→clyde, butch→sundance, bonnie→henchman, sundance→henchman.
func buildOutlaws(t *testing.T) *graph.System {
	t.Helper()
	s := graph.New()
	for _, name := range []string{"bonnie", "clyde", "butch", "sundance", "henchman"} {
		require.NoError(t, s.Add(name))
	}
	require.NoError(t, s.Connect("bonnie", "clyde"))
	require.NoError(t, s.Connect("butch", "sundance"))
	require.NoError(t, s.Connect("bonnie", "henchman"))
	require.NoError(t, s.Connect("sundance", "henchman"))

	return s
}

// buildBroadcast builds the four-edge media graph used by the merge
// tests.
func buildBroadcast(t *testing.T) *graph.System {
	t.Helper()
	s, err := graph.FromEdges(shape.Edges{
		shape.NewEdge("camera", "woman"),
		shape.NewEdge("camera", "man"),
		shape.NewEdge("person", "man"),
		shape.NewEdge("tv", "person"),
	})
	require.NoError(t, err)

	return s
}

func TestAdd_Idempotent(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Add("solo"))
	require.NoError(t, s.Add("solo"))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"solo"}, s.Names())
}

func TestAdd_FirstAdmissionKeepsValue(t *testing.T) {
	s := graph.New()
	first := node.Value{Label: "probe", Payload: 1}
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(node.Value{Label: "probe", Payload: 2}))

	stored, err := s.Node("probe")
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestAdd_EmptyName(t *testing.T) {
	s := graph.New()
	assert.ErrorIs(t, s.Add(""), graph.ErrEmptyName)
	assert.Zero(t, s.Len())
}

func TestAdd_AdaptsForeignStructs(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Add(Crew{}))
	require.NoError(t, s.Add(SpyGadget{Serial: 7}))
	require.NoError(t, s.Connect("crew", "spy_gadget"))

	succs, err := s.Successors(Crew{})
	require.NoError(t, err)
	assert.True(t, succs.Has("spy_gadget"))
	assert.True(t, s.Contains(SpyGadget{Serial: 99}), "identity is by name, not payload")
}

func TestConnect_Idempotent(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("a", "b"))
	require.NoError(t, s.Connect("a", "b"))

	succs, err := s.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, 1, succs.Len())
	assert.Len(t, s.Edges(), 1)
}

func TestConnect_ImplicitAdd(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("tail", "head"))

	assert.True(t, s.Contains("tail"))
	assert.True(t, s.Contains("head"))
	succs, err := s.Successors("head")
	require.NoError(t, err)
	assert.Zero(t, succs.Len())
}

func TestConnect_SelfLoopPolicy(t *testing.T) {
	open := graph.New()
	require.NoError(t, open.Connect("ouroboros", "ouroboros"))
	succs, err := open.Successors("ouroboros")
	require.NoError(t, err)
	assert.True(t, succs.Has("ouroboros"))

	closed := graph.New(graph.WithoutLoops())
	assert.ErrorIs(t, closed.Connect("ouroboros", "ouroboros"), graph.ErrLoopNotAllowed)
	assert.False(t, closed.Contains("ouroboros"), "rejected connect must not admit endpoints")
}

func TestConnect_EmptyName(t *testing.T) {
	s := graph.New()
	assert.ErrorIs(t, s.Connect("", "head"), graph.ErrEmptyName)
	assert.ErrorIs(t, s.Connect("tail", ""), graph.ErrEmptyName)
	assert.Zero(t, s.Len())
}

func TestDisconnect(t *testing.T) {
	s := buildOutlaws(t)

	require.NoError(t, s.Disconnect("bonnie", "clyde"))
	succs, err := s.Successors("bonnie")
	require.NoError(t, err)
	assert.False(t, succs.Has("clyde"))
	assert.True(t, s.Contains("clyde"), "disconnect removes the edge, not the node")

	assert.ErrorIs(t, s.Disconnect("bonnie", "clyde"), graph.ErrEdgeNotFound)
	assert.ErrorIs(t, s.Disconnect("nobody", "clyde"), graph.ErrNodeNotFound)
	assert.ErrorIs(t, s.Disconnect("bonnie", "nobody"), graph.ErrNodeNotFound)
}

func TestDelete(t *testing.T) {
	s := buildOutlaws(t)

	require.NoError(t, s.Delete("henchman"))
	assert.False(t, s.Contains("henchman"))

	// Inbound references vanish with the node.
	for _, tail := range []string{"bonnie", "sundance"} {
		succs, err := s.Successors(tail)
		require.NoError(t, err)
		assert.False(t, succs.Has("henchman"))
	}
	assert.Equal(t, []string{"bonnie", "clyde", "butch", "sundance"}, s.Names())

	assert.ErrorIs(t, s.Delete("henchman"), graph.ErrNodeNotFound)
}

func TestSuccessors_DistinguishesAbsentFromEmpty(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Add("present"))

	succs, err := s.Successors("present")
	require.NoError(t, err)
	assert.Zero(t, succs.Len())

	_, err = s.Successors("absent")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestSuccessors_ReturnsCopy(t *testing.T) {
	s := buildOutlaws(t)
	succs, err := s.Successors("bonnie")
	require.NoError(t, err)

	succs.Add("impostor")
	fresh, err := s.Successors("bonnie")
	require.NoError(t, err)
	assert.False(t, fresh.Has("impostor"))
}

func TestNode_MissingKey(t *testing.T) {
	s := graph.New()
	_, err := s.Node("ghost")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestRootsAndEndpoints(t *testing.T) {
	s := buildOutlaws(t)

	var roots []string
	for _, n := range s.Roots() {
		roots = append(roots, n.Name())
	}
	assert.Equal(t, []string{"bonnie", "butch"}, roots)

	var ends []string
	for _, n := range s.Endpoints() {
		ends = append(ends, n.Name())
	}
	assert.Equal(t, []string{"clyde", "henchman"}, ends)
}

func TestRootsAndEndpoints_SelfLoopCountsBothWays(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("loner", "loner"))

	assert.Empty(t, s.Roots(), "a self-loop is an incoming edge")
	assert.Empty(t, s.Endpoints(), "a self-loop is an outgoing edge")
}

func TestMerge_RetainsAllEdges(t *testing.T) {
	s := buildOutlaws(t)
	require.NoError(t, s.Merge(buildBroadcast(t)))

	assert.Len(t, s.Edges(), 8)
	succs, err := s.Successors("camera")
	require.NoError(t, err)
	assert.True(t, succs.Has("woman"))
	assert.True(t, succs.Has("man"))

	// Re-merging introduces nothing new.
	require.NoError(t, s.Merge(buildBroadcast(t)))
	assert.Len(t, s.Edges(), 8)
}

func TestMerge_OrderFollowsReceiverThenNewcomers(t *testing.T) {
	s := buildOutlaws(t)
	require.NoError(t, s.Merge(buildBroadcast(t)))

	assert.Equal(t,
		[]string{"bonnie", "clyde", "butch", "sundance", "henchman", "camera", "woman", "man", "person", "tv"},
		s.Names())
}

func TestMerge_CommutativeOnSets(t *testing.T) {
	ab := buildOutlaws(t)
	require.NoError(t, ab.Merge(buildBroadcast(t)))

	ba := buildBroadcast(t)
	require.NoError(t, ba.Merge(buildOutlaws(t)))

	assert.Equal(t, ab.Adjacency(), ba.Adjacency())
}

func TestMerge_AssociativeOnSets(t *testing.T) {
	third, err := graph.FromEdges(shape.Edges{shape.NewEdge("woman", "bonnie")})
	require.NoError(t, err)

	left := buildOutlaws(t)
	require.NoError(t, left.Merge(buildBroadcast(t)))
	require.NoError(t, left.Merge(third))

	inner := buildBroadcast(t)
	require.NoError(t, inner.Merge(third))
	right := buildOutlaws(t)
	require.NoError(t, right.Merge(inner))

	assert.Equal(t, left.Adjacency(), right.Adjacency())
}

func TestMerge_LoopPolicyIsAllOrNothing(t *testing.T) {
	s := graph.New(graph.WithoutLoops())
	require.NoError(t, s.Connect("a", "b"))

	looped := graph.New()
	require.NoError(t, looped.Connect("c", "c"))
	require.NoError(t, looped.Connect("a", "c"))

	assert.ErrorIs(t, s.Merge(looped), graph.ErrLoopNotAllowed)
	assert.Equal(t, []string{"a", "b"}, s.Names(), "failed merge must leave the receiver untouched")
	succs, err := s.Successors("a")
	require.NoError(t, err)
	assert.False(t, succs.Has("c"))
}

func TestMerge_Nil(t *testing.T) {
	s := buildOutlaws(t)
	require.NoError(t, s.Merge(nil))
	assert.Equal(t, 5, s.Len())
}

func TestClone_Independent(t *testing.T) {
	s := buildOutlaws(t)
	c := s.Clone()

	require.NoError(t, c.Connect("henchman", "getaway"))
	require.NoError(t, c.Delete("clyde"))

	assert.True(t, s.Contains("clyde"))
	assert.False(t, s.Contains("getaway"))
	assert.Equal(t, 5, s.Len())
}

func TestClear_KeepsLoopPolicy(t *testing.T) {
	s := graph.New(graph.WithoutLoops())
	require.NoError(t, s.Connect("a", "b"))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.ErrorIs(t, s.Connect("a", "a"), graph.ErrLoopNotAllowed)
}
