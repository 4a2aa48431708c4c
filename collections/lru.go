package collections

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a bounded cache that evicts the least-recently-used entry once
// full. Both Get and Put refresh an entry's recency.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// NewLRU creates a cache holding at most size entries. Size must be
// positive.
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{cache: cache}, nil
}

func (l *LRU[K, V]) Get(key K) (V, bool) {
	return l.cache.Get(key)
}

// Put stores the value, evicting the oldest entry when the cache is full.
// It reports whether an eviction happened.
func (l *LRU[K, V]) Put(key K, value V) bool {
	return l.cache.Add(key, value)
}

// Contains checks membership without refreshing recency.
func (l *LRU[K, V]) Contains(key K) bool {
	return l.cache.Contains(key)
}

func (l *LRU[K, V]) Remove(key K) {
	l.cache.Remove(key)
}

func (l *LRU[K, V]) Len() int {
	return l.cache.Len()
}

// Keys returns the cached keys from oldest to newest.
func (l *LRU[K, V]) Keys() []K {
	return l.cache.Keys()
}

// Purge drops every entry.
func (l *LRU[K, V]) Purge() {
	l.cache.Purge()
}
