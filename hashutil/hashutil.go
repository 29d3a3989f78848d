// Package hashutil provides ready-made hash functions and comparator helpers
// for building hashset callbacks.
package hashutil

import (
	"cmp"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// String returns an xxHash64 digest of s. This is the recommended string
// hasher: fast and close to uniform.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes returns an xxHash64 digest of b.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// StringMurmur3 returns a Murmur3 digest of s.
func StringMurmur3(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

// StringXXH3 returns an XXH3 digest of s.
func StringXXH3(s string) uint64 {
	return xxh3.HashString(s)
}

// String31 is the classic multiply-by-31 polynomial string hash. It is
// markedly less uniform than the others; it exists for comparison (see the
// uniformity subcommand of cmd/hashset) and for compatibility with callers
// that need its exact values.
func String31(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = 31*h + uint64(s[i])
	}
	return h
}

// Compare is a three-way comparator for ordered keys, suitable as a
// hashset.Comparator for element types that are their own key.
func Compare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Clone heap-copies *v and returns a reference to the copy. Handy for
// inserting a detached snapshot of a stack value into a table.
func Clone[T any](v *T) *T {
	c := *v
	return &c
}
