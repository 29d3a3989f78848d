package hashset

// Iterator is a single-pass cursor over a Table. It yields each element
// exactly once, in bucket-ascending, within-chain order. A structural change
// to the table (an insert of a new key, a remove, or a Clear) invalidates
// every live iterator; Next panics if it observes one. Mutating the value
// part of yielded elements, or replacing an element via Add, is safe.
//
// An exhausted iterator stays exhausted; start over with a fresh call to
// Table.Iterator.
type Iterator[E any] struct {
	table  *Table[E]
	bucket int
	node   *node[E]
	gen    uint64
}

// Iterator returns a cursor positioned at the table's first bucket.
func (t *Table[E]) Iterator() Iterator[E] {
	return Iterator[E]{table: t, node: t.buckets[0], gen: t.gen}
}

// Next returns the next element, or ok false once the table is exhausted.
func (it *Iterator[E]) Next() (element E, ok bool) {
	if it.gen != it.table.gen {
		panic("hashset: table modified during iteration")
	}
	for {
		if it.node != nil {
			element = it.node.element
			it.node = it.node.next
			return element, true
		}
		if it.bucket+1 >= len(it.table.buckets) {
			return element, false
		}
		it.bucket++
		it.node = it.table.buckets[it.bucket]
	}
}

// Range calls f for each element in iteration order until f returns false.
func (t *Table[E]) Range(f func(element E) bool) {
	it := t.Iterator()
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		if !f(element) {
			return
		}
	}
}
