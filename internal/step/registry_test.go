package step

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDeduplicatesKeys(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	k := Key{Kind: "vertex", Solid: 0, Ring: 0, Index: 3, Sub: 1}
	a := reg.Add(k, Simple("VERTEX_POINT", Str("")))
	b := reg.Add(k, Simple("VERTEX_POINT", Str("other")))
	c := reg.Add(Key{Kind: "vertex", Index: 3}, Simple("VERTEX_POINT", Str("")))

	assert.Equal(t, ID(1), a)
	assert.Equal(t, a, b)
	assert.Equal(t, ID(2), c)
	assert.Equal(t, 2, reg.Len())

	recs := reg.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, Str(""), recs[a-1].Entity[0].Params[0], "first registration wins")

	id, ok := reg.Lookup(k)
	assert.True(t, ok)
	assert.Equal(t, a, id)
	_, ok = reg.Lookup(Key{Kind: "edge"})
	assert.False(t, ok)
}

func TestRegistryAnonymousAlwaysNew(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for i := 1; i <= 3; i++ {
		assert.Equal(t, ID(i), reg.New(Simple("EDGE_LOOP", Str(""))))
	}
	assert.Equal(t, ID(4), reg.Add(Key{}, Simple("EDGE_LOOP", Str(""))))

	recs := reg.Records()
	require.Len(t, recs, 4)
	for i, r := range recs {
		assert.Equal(t, ID(i+1), r.ID)
	}
	assert.Equal(t, 4, reg.Count("EDGE_LOOP"))
	assert.Zero(t, reg.Count("PLANE"))
}

func TestRegistryHas(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.New(Simple("PLANE", Str("")))
	assert.True(t, reg.Has(1))
	assert.False(t, reg.Has(0))
	assert.False(t, reg.Has(2))
}
