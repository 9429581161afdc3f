package pathresolve

import (
	"container/list"
	"regexp"
	"sync"
)

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
}

// patternCache is a thread-safe LRU of compiled ResolveFirst patterns.
// When full, the least recently used pattern is evicted.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newPatternCache(capacity int) *patternCache {
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (c *patternCache) get(pattern string) (*regexp.Regexp, bool) {
	if c.capacity <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*patternEntry).re, true
	}
	return nil, false
}

func (c *patternCache) put(pattern string, re *regexp.Regexp) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*patternEntry).re = re
		return
	}

	c.items[pattern] = c.eviction.PushFront(&patternEntry{pattern: pattern, re: re})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).pattern)
	}
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
