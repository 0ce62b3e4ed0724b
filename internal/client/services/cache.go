package services

import "sync"

// listingCache caches listing pages under a generation tag. Mutations bump
// the generation, which stales every cached page at once and forces the
// next read of any page to refetch (the moral equivalent of the web
// client's invalidated query tags).
//
// Fetches additionally carry a sequence number so that a response resolving
// late can never replace a page cached by a newer fetch.
type listingCache[T any] struct {
	mu     sync.Mutex
	gen    uint64
	seq    uint64
	newest uint64
	pages  map[int]cacheEntry[T]
}

type cacheEntry[T any] struct {
	gen   uint64
	value T
}

func newListingCache[T any]() *listingCache[T] {
	return &listingCache[T]{pages: make(map[int]cacheEntry[T])}
}

// get returns the cached page if it belongs to the current generation.
func (c *listingCache[T]) get(page int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.pages[page]
	if !ok || entry.gen != c.gen {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// beginFetch claims a sequence number for a fetch that is about to start
// and records the generation it will belong to.
func (c *listingCache[T]) beginFetch() (seq, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	return c.seq, c.gen
}

// commit stores a fetched page unless it is stale: superseded by a newer
// fetch or invalidated while in flight. Reports whether the page was cached.
func (c *listingCache[T]) commit(page int, seq, gen uint64, value T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.newest || gen != c.gen {
		return false
	}
	c.newest = seq
	c.pages[page] = cacheEntry[T]{gen: gen, value: value}
	return true
}

// invalidate stales every cached page.
func (c *listingCache[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
}
