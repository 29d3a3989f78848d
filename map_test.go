package hashset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noncombatant/hashset/hashutil"
)

func newDictionary(t *testing.T) *Map[string, string] {
	t.Helper()
	m, err := NewMap[string, string](10, hashutil.String, strings.Compare)
	require.NoError(t, err)
	return m
}

func TestMapSetAndGet(t *testing.T) {
	dict := newDictionary(t)
	dict.Set("cat", "A fine animal")
	dict.Set("dog", "A friend")

	definition, ok := dict.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "A fine animal", definition)

	definition, ok = dict.Get("dog")
	require.True(t, ok)
	assert.Equal(t, "A friend", definition)

	_, ok = dict.Get("ferret")
	assert.False(t, ok)
	assert.True(t, dict.Contains("cat"))
	assert.False(t, dict.Contains("ferret"))
}

func TestMapSetReturnsReplacedValue(t *testing.T) {
	dict := newDictionary(t)

	_, ok := dict.Set("cat", "A fine animal")
	assert.False(t, ok)

	old, ok := dict.Set("cat", "A nice friend who loves food")
	require.True(t, ok)
	assert.Equal(t, "A fine animal", old)

	definition, ok := dict.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "A nice friend who loves food", definition)
	assert.Equal(t, 1, dict.Len())
}

func TestMapDelete(t *testing.T) {
	dict := newDictionary(t)
	dict.Set("cat", "A fine animal")

	old, ok := dict.Delete("cat")
	require.True(t, ok)
	assert.Equal(t, "A fine animal", old)
	assert.False(t, dict.Contains("cat"))

	_, ok = dict.Delete("cat")
	assert.False(t, ok, "deleting an absent key is a no-op")
}

// One bucket forces all entries onto a single chain; the map must still
// distinguish keys by comparison.
func TestMapCollidingKeys(t *testing.T) {
	m, err := NewMap[int, string](1, func(int) uint64 { return 7 }, hashutil.Compare[int])
	require.NoError(t, err)

	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	for key, want := range map[int]string{1: "one", 2: "two", 3: "three"} {
		got, ok := m.Get(key)
		require.True(t, ok, "key %d", key)
		assert.Equal(t, want, got)
	}

	_, ok := m.Delete(2)
	require.True(t, ok)
	assert.False(t, m.Contains(2))
	assert.True(t, m.Contains(1))
	assert.True(t, m.Contains(3))
}

func TestMapIterationAndClear(t *testing.T) {
	dict := newDictionary(t)
	dict.Set("cat", "A fine animal")
	dict.Set("dog", "A friend")

	seen := make(map[string]string)
	it := dict.Iterator()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		seen[p.Key] = p.Value
	}
	assert.Equal(t, map[string]string{"cat": "A fine animal", "dog": "A friend"}, seen)

	dict.Clear()
	assert.Equal(t, 0, dict.Len())
	dict.Range(func(string, string) bool {
		t.Fatal("cleared map should be empty")
		return false
	})
}
