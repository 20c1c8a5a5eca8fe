package chainmap

import "github.com/cespare/xxhash/v2"

const hashPrime = 31

// HashFunc maps a key to a bucket index for the given capacity.
// It must be a pure function of its arguments: the map calls it again with
// the new capacity on every resize.
type HashFunc[K ~string] func(key K, capacity int) int

// PolynomialHash accumulates hash = (hash*31 + b) mod capacity over the key bytes.
// Keys are hashed as UTF-8 bytes, so non-ASCII keys land differently than a
// hash over UTF-16 code units would place them; ASCII keys hash the same.
func PolynomialHash[K ~string](key K, capacity int) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*hashPrime + int(key[i])) % capacity
	}

	return h
}

// XXHash reduces the xxhash64 digest of the key modulo capacity.
func XXHash[K ~string](key K, capacity int) int {
	return int(xxhash.Sum64String(string(key)) % uint64(capacity))
}

// bucketIndex keeps a custom hash function inside [0, capacity).
func bucketIndex[K ~string](f HashFunc[K], key K, capacity int) int {
	idx := f(key, capacity) % capacity
	if idx < 0 {
		idx += capacity
	}

	return idx
}
