package chainmap

// Entry is a key/value pair stored in the map.
type Entry[K ~string, V any] struct {
	Key   K
	Value V
}

// bucket is a chain of entries sharing one bucket index.
// No two entries in a bucket share a key.
type bucket[K ~string, V any] []Entry[K, V]

// find returns the position of key in the bucket, or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].Key == key {
			return i
		}
	}

	return -1
}

// removeAt swaps the last entry into position i and shrinks the bucket.
// Order inside a bucket is not preserved.
func (b *bucket[K, V]) removeAt(i int) {
	s := *b
	last := len(s) - 1

	s[i] = s[last]
	// Release references held by the vacated slot.
	s[last] = Entry[K, V]{}
	*b = s[:last]
}
