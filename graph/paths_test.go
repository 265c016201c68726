package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/plexus/graph"
	"github.com/halcyard/plexus/shape"
	"github.com/halcyard/plexus/structure"
)

// pathNames flattens a path collection to name sequences for
// order-independent membership checks.
func pathNames(paths []shape.Pipeline) [][]string {
	out := make([][]string, len(paths))
	for i, p := range paths {
		out[i] = p.Names()
	}

	return out
}

func TestPaths_ManualFixture(t *testing.T) {
	s := buildOutlaws(t)

	all := pathNames(s.Paths())
	assert.Len(t, all, 3)
	assert.Contains(t, all, []string{"bonnie", "clyde"})
	assert.Contains(t, all, []string{"bonnie", "henchman"})
	assert.Contains(t, all, []string{"butch", "sundance", "henchman"})
}

func TestPaths_SharedPrefixesStayDistinct(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("a", "b"))
	require.NoError(t, s.Connect("a", "c"))
	require.NoError(t, s.Connect("b", "d"))
	require.NoError(t, s.Connect("c", "d"))

	all := pathNames(s.Paths())
	assert.Len(t, all, 2)
	assert.Contains(t, all, []string{"a", "b", "d"})
	assert.Contains(t, all, []string{"a", "c", "d"})
}

func TestPaths_CycleTerminatesAndRecordsDeadEnd(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("gate", "inner"))
	require.NoError(t, s.Connect("inner", "loop"))
	require.NoError(t, s.Connect("loop", "inner"))

	// The walk stalls at "loop": its only successor is already on the
	// walk, so the dead end itself is the recorded path.
	all := pathNames(s.Paths())
	assert.Equal(t, [][]string{{"gate", "inner", "loop"}}, all)
}

func TestPaths_CycleWithEscape(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("gate", "inner"))
	require.NoError(t, s.Connect("inner", "loop"))
	require.NoError(t, s.Connect("loop", "inner"))
	require.NoError(t, s.Connect("loop", "out"))

	all := pathNames(s.Paths())
	assert.Equal(t, [][]string{{"gate", "inner", "loop", "out"}}, all)
}

func TestPaths_PureCycleHasNoRoots(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Connect("a", "b"))
	require.NoError(t, s.Connect("b", "a"))

	assert.Empty(t, s.Paths())
}

func TestPaths_IsolatedNodeIsItsOwnPath(t *testing.T) {
	s := graph.New()
	require.NoError(t, s.Add("solo"))

	assert.Equal(t, [][]string{{"solo"}}, pathNames(s.Paths()))
}

func TestWalk_UnboundedMatchesPipelines(t *testing.T) {
	s := buildOutlaws(t)
	assert.Equal(t, s.Pipelines(), s.Walk())
}

func TestWalk_KeysJoinNodeNames(t *testing.T) {
	s := buildOutlaws(t)

	ps := s.Walk()
	assert.ElementsMatch(t,
		[]string{"bonnie→clyde", "bonnie→henchman", "butch→sundance→henchman"},
		ps.Keys())
}

func TestWalk_Stop(t *testing.T) {
	s := buildOutlaws(t)

	ps := s.Walk(structure.WithStop("sundance"))
	assert.Len(t, ps, 3)
	assert.Equal(t, []string{"butch", "sundance"}, ps["butch→sundance"].Names())

	// Walks that never reach the stop still run to their endpoints.
	assert.Contains(t, ps, "bonnie→clyde")
	assert.Contains(t, ps, "bonnie→henchman")
}

func TestWalk_Start(t *testing.T) {
	s := buildOutlaws(t)

	ps := s.Walk(structure.WithStart("sundance"))
	require.Len(t, ps, 1)
	assert.Equal(t, []string{"sundance", "henchman"}, ps["sundance→henchman"].Names())
}

func TestWalk_StartAbsent(t *testing.T) {
	s := buildOutlaws(t)
	assert.Empty(t, s.Walk(structure.WithStart("ghost")))
}

func TestWalk_StartAndStop(t *testing.T) {
	s := buildOutlaws(t)

	ps := s.Walk(structure.WithStart("butch"), structure.WithStop("henchman"))
	require.Len(t, ps, 1)
	assert.Equal(t, []string{"butch", "sundance", "henchman"},
		ps["butch→sundance→henchman"].Names())
}

func TestWalk_FlattenCombines(t *testing.T) {
	s := buildOutlaws(t)

	combined := s.Walk().Flatten()
	assert.Equal(t,
		[]string{"bonnie", "clyde", "bonnie", "henchman", "butch", "sundance", "henchman"},
		combined.Names())
}
