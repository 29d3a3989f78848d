// Package hashset implements a fixed-size chained hash table of caller-owned
// elements, usable as either a set or a map.
//
// The table is an array of pointers to chain heads (the "buckets"). If the
// bucket count is large enough relative to the number of elements inserted,
// and if the Hasher produces a uniform distribution, the chains tend to be
// short and lookup is fast. The bucket count is fixed at construction; the
// table never rehashes, so callers must size it for the expected load factor
// up front.
//
// Elements are inspected only through their Hasher and Comparator callbacks;
// the table itself never copies or retains anything beyond a reference to
// each element. Elements have a "key part" consumed by the callbacks, and an
// optional "value part" that only the caller knows about. This lets elements
// be anything: plain keys (a set), or key/value pairs (a map). The Set and
// Map types package up these two common shapes.
//
// The key part of an element must not be mutated in a way that changes its
// hash or comparison outcome while the element is in a table; doing so breaks
// bucket placement. Mutating the value part in place is always fine, even
// during iteration.
//
// Tables are not safe for concurrent use. Concurrent lookups without a
// concurrent writer are fine; anything else needs external locking.
package hashset
