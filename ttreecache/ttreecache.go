// Package ttreecache implements a bounded read-through cache of recently
// resolved lookups fronting a ttree.Tree.
package ttreecache

import (
	"github.com/halstead/ttree/cache"
	"github.com/halstead/ttree/ttree"
)

// A Cache wraps a ttree.Tree with a bounded LRU cache of recently resolved
// values, so repeat Lookups of hot keys skip the tree descent entirely.
// A Cache is not safe for concurrent mutation, consistent with the Tree it
// wraps; the underlying cache.Cache's own locking only protects against
// torn reads within a single Lookup/Insert/Delete/Replace call.
type Cache[Key comparable, T any] struct {
	tree  *ttree.Tree[T]
	keyOf func(T) Key
	hot   *cache.Cache[Key, T]
}

// New constructs a Cache fronting tree, caching up to limit of the most
// recently resolved values. keyOf extracts the comparable cache key from a
// stored value; for a Tree[ttree.KV[K, V]], keyOf would be
// func(kv KV[K, V]) K { return kv.Key }.
func New[Key comparable, T any](tree *ttree.Tree[T], limit int64, keyOf func(T) Key) *Cache[Key, T] {
	return &Cache[Key, T]{
		tree:  tree,
		keyOf: keyOf,
		hot:   cache.New(cache.LRU[Key, T](limit)),
	}
}

// Lookup reports whether a value matching probe is present, and if so
// returns it. A cache hit is promoted in recency order without touching the
// tree; a miss descends the tree and, on success, populates the cache.
func (c *Cache[Key, T]) Lookup(probe T) (T, bool) {
	if v, ok := c.hot.Get(c.keyOf(probe)); ok {
		return v, true
	}
	v, ok := c.tree.Lookup(probe)
	if ok {
		c.hot.Put(c.keyOf(v), v)
	}
	return v, ok
}

// Insert adds key to the underlying tree. It returns ttree.ErrDuplicate
// without modifying the tree or the cache if key is already present.
func (c *Cache[Key, T]) Insert(key T) error {
	if err := c.tree.Insert(key); err != nil {
		return err
	}
	c.hot.Put(c.keyOf(key), key)
	return nil
}

// Replace adds or replaces key in the underlying tree, invalidating any
// stale cache entry so a subsequent Lookup observes the new value, and
// reports whether key was new.
func (c *Cache[Key, T]) Replace(key T) bool {
	isNew := c.tree.Replace(key)
	c.hot.Put(c.keyOf(key), key)
	return isNew
}

// Delete removes key from the underlying tree and evicts any cached entry
// for it. It returns ttree.ErrNotFound if key was not present.
func (c *Cache[Key, T]) Delete(key T) error {
	c.hot.Remove(c.keyOf(key))
	return c.tree.Delete(key)
}

// Len reports the number of elements in the underlying tree.
func (c *Cache[Key, T]) Len() int { return c.tree.Len() }

// CacheLen reports the number of entries currently held in the hot-key
// cache, as opposed to the full tree.
func (c *Cache[Key, T]) CacheLen() int { return c.hot.Len() }

// Clear discards every element from both the underlying tree and the cache.
func (c *Cache[Key, T]) Clear() {
	c.tree.Clear()
	c.hot.Clear()
}

// Tree returns the wrapped tree, for operations such as Inorder, cursors,
// and placeful insert/delete that ttreecache does not itself expose; using
// it to mutate the tree directly bypasses cache invalidation.
func (c *Cache[Key, T]) Tree() *ttree.Tree[T] { return c.tree }
