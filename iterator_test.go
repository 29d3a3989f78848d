package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noncombatant/hashset/hashutil"
)

func TestIteratorYieldsEachElementOnce(t *testing.T) {
	table, err := New[int](10, identity, hashutil.Compare[int])
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		table.Add(k)
	}

	seen := make(map[int]int)
	it := table.Iterator()
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		seen[k]++
	}
	assert.Len(t, seen, 10, "iteration should cover the full membership")
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %d yielded more than once", k)
	}

	for k := 0; k < 10; k++ {
		_, ok := table.Remove(k)
		require.True(t, ok)
	}
	it = table.Iterator()
	_, ok := it.Next()
	assert.False(t, ok, "an emptied table should yield nothing")
}

func TestIteratorEmptyTable(t *testing.T) {
	table, err := New[int](7, identity, hashutil.Compare[int])
	require.NoError(t, err)

	it := table.Iterator()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIteratorExhaustionIsSticky(t *testing.T) {
	table, err := New[int](3, identity, hashutil.Compare[int])
	require.NoError(t, err)
	table.Add(1)

	it := table.Iterator()
	_, ok := it.Next()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		assert.False(t, ok, "an exhausted iterator does not reset itself")
	}

	// Restarting means constructing a fresh iterator.
	it = table.Iterator()
	k, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, k)
}

func TestIteratorInvalidatedByStructuralChange(t *testing.T) {
	newTable := func() *Table[int] {
		table, err := New[int](5, identity, hashutil.Compare[int])
		require.NoError(t, err)
		for k := 0; k < 5; k++ {
			table.Add(k)
		}
		return table
	}

	t.Run("insert", func(t *testing.T) {
		table := newTable()
		it := table.Iterator()
		table.Add(99)
		assert.Panics(t, func() { it.Next() })
	})
	t.Run("remove", func(t *testing.T) {
		table := newTable()
		it := table.Iterator()
		table.Remove(3)
		assert.Panics(t, func() { it.Next() })
	})
	t.Run("clear", func(t *testing.T) {
		table := newTable()
		it := table.Iterator()
		table.Clear()
		assert.Panics(t, func() { it.Next() })
	})
}

func TestIteratorSurvivesReplaceAndValueMutation(t *testing.T) {
	table := newWordTable(t, 5)
	for _, w := range []string{"ant", "bee", "cow", "doe", "elk"} {
		table.Add(&word{word: w, definition: "old"})
	}

	count := 0
	it := table.Iterator()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		w.definition = "new"
		table.Add(&word{word: "bee", definition: "replacement"})
		count++
	}
	assert.Equal(t, 5, count)
}

func TestTableRangeEarlyStop(t *testing.T) {
	table, err := New[int](10, identity, hashutil.Compare[int])
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		table.Add(k)
	}

	count := 0
	table.Range(func(int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
