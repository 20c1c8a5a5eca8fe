package chainmap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestPolynomialHash(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		capacity int
		want     int
	}{
		{"empty key", "", 16, 0},
		{"single byte", "a", 16, 97 % 16},
		{"two bytes", "ab", 16, (97%16*31 + 98) % 16},
		{"capacity one", "anything", 1, 0},
		{"larger capacity", "ab", 1 << 16, 97*31 + 98},
		// "é" is hashed as its UTF-8 bytes 0xC3 0xA9.
		{"multibyte rune", "é", 1 << 16, 0xC3*31 + 0xA9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PolynomialHash(tt.key, tt.capacity))
		})
	}
}

func TestPolynomialHash_Range(t *testing.T) {
	keys := []string{"apple", "banana", "ice cream", "żółw", "\xff\xff\xff"}

	for _, capacity := range []int{1, 3, 16, 17, 1 << 20} {
		for _, k := range keys {
			h := PolynomialHash(k, capacity)
			require.GreaterOrEqual(t, h, 0)
			require.Less(t, h, capacity)
		}
	}
}

func TestXXHash(t *testing.T) {
	for _, capacity := range []int{1, 16, 31, 4096} {
		want := int(xxhash.Sum64String("foo") % uint64(capacity))
		require.Equal(t, want, XXHash("foo", capacity))
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		name string
		hash int
		want int
	}{
		{"in range", 5, 5},
		{"too large", 100, 100 % 16},
		{"negative", -1, 15},
		{"negative multiple", -32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := func(string, int) int { return tt.hash }
			require.Equal(t, tt.want, bucketIndex(f, "foo", 16))
		})
	}
}
