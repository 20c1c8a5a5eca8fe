package chainmap

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

type table[K ~string, V any] struct {
	buckets []bucket[K, V]

	capacity   int
	loadFactor float64
	size       int
	resizes    int

	hashFunc HashFunc[K]
	log      logrus.FieldLogger
}

type Option[K ~string, V any] func(t *table[K, V])

// Sets the initial number of buckets.
func WithCapacity[K ~string, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.capacity = capacity
	}
}

// Sets the size/capacity ratio above which the table doubles.
func WithLoadFactor[K ~string, V any](loadFactor float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.loadFactor = loadFactor
	}
}

// Override default hash function.
func WithHashFunc[K ~string, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Routes resize events to the given logger.
func WithLogger[K ~string, V any](log logrus.FieldLogger) Option[K, V] {
	return func(t *table[K, V]) {
		t.log = log
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) error {
	t.capacity = DefaultCapacity
	t.loadFactor = DefaultLoadFactor
	t.hashFunc = PolynomialHash[K]
	t.log = logrus.StandardLogger()

	for _, opt := range opts {
		opt(t)
	}

	if t.capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, t.capacity)
	}

	if math.IsNaN(t.loadFactor) || t.loadFactor <= 0 || t.loadFactor > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, t.loadFactor)
	}

	if t.hashFunc == nil {
		return ErrNilHashFunc
	}

	if t.log == nil {
		return ErrNilLogger
	}

	t.buckets = make([]bucket[K, V], t.capacity)

	return nil
}

func (t *table[K, V]) bucketFor(key K) *bucket[K, V] {
	return &t.buckets[bucketIndex(t.hashFunc, key, t.capacity)]
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := t.bucketFor(key)
	if i := b.find(key); i >= 0 {
		return (*b)[i].Value, true
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) has(key K) bool {
	return t.bucketFor(key).find(key) >= 0
}

// put overwrites an existing entry or appends a new one.
// Returns whether the key is new.
func (t *table[K, V]) put(key K, value V) bool {
	b := t.bucketFor(key)
	if i := b.find(key); i >= 0 {
		(*b)[i].Value = value
		return false
	}

	*b = append(*b, Entry[K, V]{Key: key, Value: value})
	t.size++

	return true
}

func (t *table[K, V]) set(key K, value V) {
	if !t.put(key, value) {
		return
	}

	// A single doubling is not enough when loadFactor*capacity < 1.
	for t.overloaded() {
		t.resize()
	}
}

func (t *table[K, V]) overloaded() bool {
	return float64(t.size)/float64(t.capacity) > t.loadFactor
}

func (t *table[K, V]) delete(key K) bool {
	b := t.bucketFor(key)

	i := b.find(key)
	if i < 0 {
		return false
	}

	b.removeAt(i)
	t.size--

	return true
}

// resize doubles the capacity and rehashes every entry against it,
// walking the old buckets in index order.
func (t *table[K, V]) resize() {
	old := t.buckets
	from := t.capacity

	t.capacity *= 2
	t.buckets = make([]bucket[K, V], t.capacity)
	t.size = 0

	for i := range old {
		for _, e := range old[i] {
			t.put(e.Key, e.Value)
		}
	}

	t.resizes++

	t.log.WithFields(logrus.Fields{
		"from": from,
		"to":   t.capacity,
		"size": t.size,
	}).Debug("chainmap: resized")
}

func (t *table[K, V]) reset() {
	t.buckets = make([]bucket[K, V], t.capacity)
	t.size = 0
}
