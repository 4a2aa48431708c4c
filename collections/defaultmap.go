// Package collections provides the small container helpers shared across
// the toolkit: maps with materialized defaults, counters, an LRU cache,
// an ordered map with floor/ceiling lookup, and a range-keyed table.
package collections

import "sort"

// DefaultMap materializes missing entries through a factory on first
// access, so callers never branch on presence.
type DefaultMap[K comparable, V any] struct {
	entries map[K]V
	factory func() V
}

// NewDefaultMap creates an empty map whose missing values come from
// factory.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		entries: make(map[K]V),
		factory: factory,
	}
}

// Get returns the value for key, creating and storing it first when
// absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	if v, ok := d.entries[key]; ok {
		return v
	}
	v := d.factory()
	d.entries[key] = v
	return v
}

// Peek returns the value without materializing a missing entry.
func (d *DefaultMap[K, V]) Peek(key K) (V, bool) {
	v, ok := d.entries[key]
	return v, ok
}

func (d *DefaultMap[K, V]) Set(key K, value V) {
	d.entries[key] = value
}

// Update stores fn applied to the current (or freshly materialized)
// value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	d.entries[key] = fn(d.Get(key))
}

func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.entries, key)
}

func (d *DefaultMap[K, V]) Len() int {
	return len(d.entries)
}

func (d *DefaultMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	return keys
}

// Counter tallies occurrences per key. The zero-valued entry means the
// key was never counted.
type Counter[K comparable] map[K]int

func (c Counter[K]) Add(key K, n int) {
	c[key] += n
}

func (c Counter[K]) Count(key K) int {
	return c[key]
}

// Total sums all tallies.
func (c Counter[K]) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CounterItem pairs a key with its tally for sorted reporting.
type CounterItem[K comparable] struct {
	Key   K
	Count int
}

// SortedItems returns all entries ordered by descending count, the usual
// shape for frequency tables.
func (c Counter[K]) SortedItems() []CounterItem[K] {
	items := make([]CounterItem[K], 0, len(c))
	for k, n := range c {
		items = append(items, CounterItem[K]{Key: k, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

// ListMap accumulates values per key in insertion order.
type ListMap[K comparable, V any] map[K][]V

func (m ListMap[K, V]) Append(key K, value V) {
	m[key] = append(m[key], value)
}

// SetMap collects distinct values per key.
type SetMap[K, E comparable] map[K]map[E]struct{}

func (m SetMap[K, E]) Add(key K, elem E) {
	set, ok := m[key]
	if !ok {
		set = make(map[E]struct{})
		m[key] = set
	}
	set[elem] = struct{}{}
}

func (m SetMap[K, E]) Contains(key K, elem E) bool {
	_, ok := m[key][elem]
	return ok
}

func (m SetMap[K, E]) Size(key K) int {
	return len(m[key])
}
