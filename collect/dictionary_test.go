package collect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/plexus/collect"
)

func TestDictionary_FromKeys(t *testing.T) {
	d := collect.FromKeys([]string{"a", "b", "c"}, "tree")
	assert.Equal(t, "tree", d.Get("a"))
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
}

func TestDictionary_SoftGetWithDefault(t *testing.T) {
	d := collect.NewDictionary[string, string]()
	d.Set("a", "b")
	d.Set("c", "d")
	d.Default("nada")

	assert.Equal(t, "nada", d.Get("f"))
	assert.Equal(t, "b", d.Get("a"))

	_, ok := d.Lookup("f")
	assert.False(t, ok, "Lookup must distinguish absent from defaulted")
}

func TestDictionary_GetZeroWithoutDefault(t *testing.T) {
	d := collect.NewDictionary[string, int]()
	assert.Equal(t, 0, d.Get("missing"))
}

func TestDictionary_OrderSurvivesOverwrite(t *testing.T) {
	d := collect.NewDictionary[string, int]()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("a", 9)

	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.Equal(t, []int{9, 2}, d.Values())
}

func TestDictionary_MergeKeepsBothOrders(t *testing.T) {
	d := collect.NewDictionary[string, string]()
	d.Set("a", "b")

	other := collect.NewDictionary[string, string]()
	other.Set("e", "f")
	other.Set("a", "overridden")

	d.Merge(other)
	assert.Equal(t, []string{"a", "e"}, d.Keys())
	assert.Equal(t, "overridden", d.Get("a"))
	assert.Equal(t, "f", d.Get("e"))
}

func TestDictionary_Subset(t *testing.T) {
	d := collect.NewDictionary[string, string]()
	d.Set("a", "b")
	d.Set("c", "d")
	d.Set("e", "f")

	sub := d.Subset("a", "e", "ghost")
	assert.Equal(t, []string{"a", "e"}, sub.Keys())
	assert.Equal(t, []string{"b", "f"}, sub.Values())
}

func TestDictionary_DeleteAndClear(t *testing.T) {
	d := collect.NewDictionary[string, int]()
	d.Set("a", 1)
	d.Set("b", 2)

	require.True(t, d.Delete("a"))
	assert.False(t, d.Delete("a"))
	assert.Equal(t, []string{"b"}, d.Keys())

	d.Default(-1)
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, -1, d.Get("b"), "fallback survives Clear")
}
