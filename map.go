package hashset

// Pair is a key/value element. The key is the key part; the value part is
// opaque to the table.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is a Table of Pair elements hashed and compared by key only.
type Map[K, V any] struct {
	table *Table[Pair[K, V]]
}

// NewMap creates a Map with the given fixed bucket count. The hasher and
// comparator see keys, not pairs.
func NewMap[K, V any](bucketCount int, hasher Hasher[K], compare Comparator[K]) (*Map[K, V], error) {
	table, err := New[Pair[K, V]](bucketCount,
		func(p Pair[K, V]) uint64 { return hasher(p.Key) },
		func(a, b Pair[K, V]) int { return compare(a.Key, b.Key) },
	)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{table: table}, nil
}

// Set stores value under key. If the key was already present, the previous
// value is returned with ok true.
func (m *Map[K, V]) Set(key K, value V) (replaced V, ok bool) {
	p, ok := m.table.Add(Pair[K, V]{Key: key, Value: value})
	return p.Value, ok
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	p, ok := m.table.Get(Pair[K, V]{Key: key})
	return p.Value, ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.table.Contains(Pair[K, V]{Key: key})
}

// Delete removes key and returns the value that was stored under it.
// Deleting an absent key is a no-op with ok false.
func (m *Map[K, V]) Delete(key K) (removed V, ok bool) {
	p, ok := m.table.Remove(Pair[K, V]{Key: key})
	return p.Value, ok
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.table.Len()
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.table.Clear()
}

// Iterator returns a single-pass cursor over the map's entries.
func (m *Map[K, V]) Iterator() Iterator[Pair[K, V]] {
	return m.table.Iterator()
}

// Range calls f for each entry until f returns false.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.table.Range(func(p Pair[K, V]) bool {
		return f(p.Key, p.Value)
	})
}
