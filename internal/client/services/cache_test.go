package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingCache_GetMissOnEmpty(t *testing.T) {
	c := newListingCache[string]()
	_, ok := c.get(1)
	assert.False(t, ok)
}

func TestListingCache_CommitThenGet(t *testing.T) {
	c := newListingCache[string]()

	seq, gen := c.beginFetch()
	require.True(t, c.commit(1, seq, gen, "page-1"))

	got, ok := c.get(1)
	require.True(t, ok)
	assert.Equal(t, "page-1", got)
}

func TestListingCache_InvalidateStalesEveryPage(t *testing.T) {
	c := newListingCache[string]()

	seq, gen := c.beginFetch()
	require.True(t, c.commit(1, seq, gen, "page-1"))
	seq, gen = c.beginFetch()
	require.True(t, c.commit(2, seq, gen, "page-2"))

	c.invalidate()

	_, ok := c.get(1)
	assert.False(t, ok)
	_, ok = c.get(2)
	assert.False(t, ok)
}

func TestListingCache_StaleSequenceIsDiscarded(t *testing.T) {
	c := newListingCache[string]()

	// two fetches start; the later one resolves first
	seqOld, genOld := c.beginFetch()
	seqNew, genNew := c.beginFetch()

	require.True(t, c.commit(3, seqNew, genNew, "newer"))
	require.False(t, c.commit(3, seqOld, genOld, "older"))

	got, ok := c.get(3)
	require.True(t, ok)
	assert.Equal(t, "newer", got)
}

func TestListingCache_FetchAcrossInvalidationIsDiscarded(t *testing.T) {
	c := newListingCache[string]()

	seq, gen := c.beginFetch()
	c.invalidate()

	require.False(t, c.commit(1, seq, gen, "from-before-invalidation"))
	_, ok := c.get(1)
	assert.False(t, ok)
}
