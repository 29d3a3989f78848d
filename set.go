package hashset

// Set is a Table whose elements are plain keys: the whole element is the key
// part and there is no value part.
type Set[E any] struct {
	table *Table[E]
}

// NewSet creates a Set with the given fixed bucket count.
func NewSet[E any](bucketCount int, hasher Hasher[E], compare Comparator[E]) (*Set[E], error) {
	table, err := New[E](bucketCount, hasher, compare)
	if err != nil {
		return nil, err
	}
	return &Set[E]{table: table}, nil
}

// Add inserts element into the set. If an equal-comparing element was
// already present it is displaced and returned with ok true.
func (s *Set[E]) Add(element E) (replaced E, ok bool) {
	return s.table.Add(element)
}

// Contains reports whether an element equal to probe is in the set.
func (s *Set[E]) Contains(probe E) bool {
	return s.table.Contains(probe)
}

// Remove deletes the element equal to probe and returns it.
func (s *Set[E]) Remove(probe E) (removed E, ok bool) {
	return s.table.Remove(probe)
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int {
	return s.table.Len()
}

// Clear empties the set.
func (s *Set[E]) Clear() {
	s.table.Clear()
}

// Iterator returns a single-pass cursor over the set's elements.
func (s *Set[E]) Iterator() Iterator[E] {
	return s.table.Iterator()
}

// Range calls f for each element until f returns false.
func (s *Set[E]) Range(f func(element E) bool) {
	s.table.Range(f)
}
