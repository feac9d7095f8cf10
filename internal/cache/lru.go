// Package cache provides a small fixed-capacity string cache with
// least-recently-used eviction, used as an optional response cache in front
// of the assistant's LLM calls.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 100

type entry struct {
	key   string
	value string
}

// Cache is a mutex-guarded LRU over string keys and values. Safe for
// concurrent use by HTTP handlers.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

// New returns a Cache holding at most capacity entries. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached value for key and marks it most recently used.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
