package collections

import (
	"cmp"

	"github.com/tidwall/btree"
)

// SortedMap is an ordered map over a B-tree, supporting floor and ceiling
// lookups and in-order iteration. Not safe for concurrent use.
type SortedMap[K cmp.Ordered, V any] struct {
	tree *btree.Map[K, V]
}

func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		tree: btree.NewMap[K, V](0), // degree 0 = auto-optimize
	}
}

func (m *SortedMap[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

func (m *SortedMap[K, V]) Delete(key K) {
	m.tree.Delete(key)
}

func (m *SortedMap[K, V]) Len() int {
	return m.tree.Len()
}

// Floor returns the entry with the greatest key <= key.
func (m *SortedMap[K, V]) Floor(key K) (K, V, bool) {
	var (
		foundKey   K
		foundValue V
		found      bool
	)
	m.tree.Descend(key, func(k K, v V) bool {
		foundKey, foundValue, found = k, v, true
		return false
	})
	return foundKey, foundValue, found
}

// Ceiling returns the entry with the smallest key >= key.
func (m *SortedMap[K, V]) Ceiling(key K) (K, V, bool) {
	var (
		foundKey   K
		foundValue V
		found      bool
	)
	m.tree.Ascend(key, func(k K, v V) bool {
		foundKey, foundValue, found = k, v, true
		return false
	})
	return foundKey, foundValue, found
}

func (m *SortedMap[K, V]) Min() (K, V, bool) {
	return m.tree.Min()
}

func (m *SortedMap[K, V]) Max() (K, V, bool) {
	return m.tree.Max()
}

// Scan visits every entry in ascending key order until fn returns false.
func (m *SortedMap[K, V]) Scan(fn func(key K, value V) bool) {
	m.tree.Scan(fn)
}

// Keys returns all keys in ascending order.
func (m *SortedMap[K, V]) Keys() []K {
	return m.tree.Keys()
}
