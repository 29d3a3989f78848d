package hashset

import "errors"

// Hasher returns a hash of the key part of element. Lookup stays fast only
// when the returned values are close to uniformly distributed; a skewed
// hasher degrades chains toward linear scans but remains correct.
type Hasher[E any] func(element E) uint64

// Comparator returns negative if the key part of a sorts before that of b,
// positive if it sorts after, and 0 if they compare equal. The table uses it
// for equality only.
type Comparator[E any] func(a, b E) int

// ErrBucketCount is returned by New when the requested bucket count is less
// than one.
var ErrBucketCount = errors.New("hashset: bucket count must be at least 1")

type node[E any] struct {
	element E
	next    *node[E]
}

// Table is a chained hash table of elements keyed by caller-supplied Hasher
// and Comparator callbacks. The zero value is not usable; construct with New.
type Table[E any] struct {
	buckets []*node[E]
	hasher  Hasher[E]
	compare Comparator[E]
	count   int
	gen     uint64 // bumped on structural change, checked by iterators
}

// New returns a Table with exactly bucketCount buckets. The hasher and
// comparator must agree: elements that compare equal must hash equally.
func New[E any](bucketCount int, hasher Hasher[E], compare Comparator[E]) (*Table[E], error) {
	if bucketCount < 1 {
		return nil, ErrBucketCount
	}
	return &Table[E]{
		buckets: make([]*node[E], bucketCount),
		hasher:  hasher,
		compare: compare,
	}, nil
}

func (t *Table[E]) bucket(element E) int {
	return int(t.hasher(element) % uint64(len(t.buckets)))
}

// Add inserts element, or replaces the stored element whose key compares
// equal to element's. On replacement the displaced element is returned with
// ok true; ownership of it reverts to the caller. Replacement is not a
// structural change and does not invalidate live iterators.
func (t *Table[E]) Add(element E) (replaced E, ok bool) {
	index := t.bucket(element)
	curr := t.buckets[index]
	if curr == nil {
		t.buckets[index] = &node[E]{element: element}
		t.count++
		t.gen++
		return replaced, false
	}
	for {
		if t.compare(curr.element, element) == 0 {
			replaced, curr.element = curr.element, element
			return replaced, true
		}
		if curr.next == nil {
			curr.next = &node[E]{element: element}
			t.count++
			t.gen++
			return replaced, false
		}
		curr = curr.next
	}
}

// Get returns the stored element whose key compares equal to probe's key.
// Only the key part of probe is consulted.
func (t *Table[E]) Get(probe E) (element E, ok bool) {
	for curr := t.buckets[t.bucket(probe)]; curr != nil; curr = curr.next {
		if t.compare(curr.element, probe) == 0 {
			return curr.element, true
		}
	}
	return element, false
}

// Contains reports whether an element matching probe's key is present.
func (t *Table[E]) Contains(probe E) bool {
	_, ok := t.Get(probe)
	return ok
}

// Remove unlinks the stored element whose key compares equal to probe's key
// and returns it; ownership reverts to the caller. Removing an absent key is
// a no-op with ok false, not an error.
func (t *Table[E]) Remove(probe E) (removed E, ok bool) {
	index := t.bucket(probe)
	var prev *node[E]
	for curr := t.buckets[index]; curr != nil; curr = curr.next {
		if t.compare(curr.element, probe) == 0 {
			if prev != nil {
				prev.next = curr.next
			} else {
				t.buckets[index] = curr.next
			}
			t.count--
			t.gen++
			return curr.element, true
		}
		prev = curr
	}
	return removed, false
}

// Clear unlinks every chain, leaving a valid empty table with the same
// bucket count. The elements themselves are untouched; the caller owns them.
func (t *Table[E]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.count = 0
	t.gen++
}

// Len returns the number of elements in the table.
func (t *Table[E]) Len() int {
	return t.count
}

// Empty returns true if the table holds no elements.
func (t *Table[E]) Empty() bool {
	return t.count == 0
}

// BucketCount returns the fixed number of buckets chosen at construction.
func (t *Table[E]) BucketCount() int {
	return len(t.buckets)
}

// BucketSizes returns the chain length of every bucket, indexed by bucket.
// Useful for judging hasher quality against the table's load factor.
func (t *Table[E]) BucketSizes() []int {
	sizes := make([]int, len(t.buckets))
	for i, curr := range t.buckets {
		for ; curr != nil; curr = curr.next {
			sizes[i]++
		}
	}
	return sizes
}
