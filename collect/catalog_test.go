package collect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyard/plexus/collect"
)

func seededCatalog() *collect.Catalog[int] {
	c := collect.NewCatalog[int]()
	c.Set("low", 1)
	c.Set("mid", 2)
	c.Set("high", 3)

	return c
}

func TestCatalog_PlainKeys(t *testing.T) {
	c := seededCatalog()

	assert.Equal(t, []int{2}, c.Get("mid"))
	assert.Nil(t, c.Get("ghost"))

	v, ok := c.Lookup("low")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCatalog_Wildcards(t *testing.T) {
	c := seededCatalog()

	assert.Equal(t, []int{1, 2, 3}, c.Get(collect.WildcardAll))
	assert.Nil(t, c.Get(collect.WildcardNone))

	// Without configured defaults, "default" means everything.
	assert.Equal(t, []int{1, 2, 3}, c.Get(collect.WildcardDefault))

	c.SetDefaults("high", "low")
	assert.Equal(t, []int{3, 1}, c.Get(collect.WildcardDefault),
		"defaults resolve in configured order")
}

func TestCatalog_Select(t *testing.T) {
	c := seededCatalog()
	assert.Equal(t, []int{2, 1}, c.Select("mid", "low"))
	assert.Equal(t, []int{1, 2, 3, 2}, c.Select(collect.WildcardAll, "mid"))
}

func TestCatalog_Delete(t *testing.T) {
	t.Run("plain key", func(t *testing.T) {
		c := seededCatalog()
		c.Delete("mid")
		assert.Equal(t, []string{"low", "high"}, c.Keys())
	})

	t.Run("none is a no-op", func(t *testing.T) {
		c := seededCatalog()
		c.Delete(collect.WildcardNone)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("default removes configured keys", func(t *testing.T) {
		c := seededCatalog()
		c.SetDefaults("low", "high")
		c.Delete(collect.WildcardDefault)
		assert.Equal(t, []string{"mid"}, c.Keys())
	})

	t.Run("all clears", func(t *testing.T) {
		c := seededCatalog()
		c.Delete(collect.WildcardAll)
		assert.Equal(t, 0, c.Len())
	})
}

func TestCatalog_WildcardNamesAreOrdinaryOnWrite(t *testing.T) {
	c := collect.NewCatalog[string]()
	c.Set(collect.WildcardAll, "stored")

	// The write landed as a literal key; reads still resolve the
	// wildcard, so Lookup is the way to reach it.
	v, ok := c.Lookup("all")
	require.True(t, ok)
	assert.Equal(t, "stored", v)
}
