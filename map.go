package chainmap

import "iter"

// Map is a hash map with string-like keys which resolves collisions by
// chaining entries inside buckets.
// It grows by doubling its bucket count whenever an insertion of a new key
// pushes size/capacity above the configured load factor; it never shrinks.
// Map is not safe for concurrent use.
type Map[K ~string, V any] struct {
	table[K, V]
}

// Returns a new instance of the map, configured by opts.
// By default the map has 16 buckets, a 0.75 load factor and uses PolynomialHash.
func New[K ~string, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Same as New, but panics on invalid options.
func MustNew[K ~string, V any](opts ...Option[K, V]) *Map[K, V] {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Set stores value under key, overwriting the previous value if any.
//
// Inserting a new key may resize the map before Set returns: the capacity
// doubles until size/capacity is back under the load factor, rehashing every
// entry on each doubling at O(n) cost. Callers must not rely on capacity or
// bucket placement being stable across any Set.
func (m *Map[K, V]) Set(key K, value V) {
	m.set(key, value)
}

// Returns the value stored under key and whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Checks whether key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.has(key)
}

// Removes key from the map. Returns whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	return m.delete(key)
}

func (m *Map[K, V]) Len() int {
	return m.size
}

// Returns the current number of buckets.
func (m *Map[K, V]) Cap() int {
	return m.capacity
}

func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Clear drops every entry. The capacity is kept.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Keys returns a snapshot of the keys in bucket order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns a snapshot of the values in bucket order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, v := range m.All() {
		values = append(values, v)
	}

	return values
}

// Entries returns a snapshot of the entries in bucket order.
// Modifying the returned slice doesn't affect the map.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for i := range m.buckets {
		entries = append(entries, m.buckets[i]...)
	}

	return entries
}

// All iterates over the live entries in bucket order.
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for _, e := range m.buckets[i] {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}
