package treemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_Empty(t *testing.T) {
	tree := newStringTree()
	itr := tree.Iterator(true)
	require.False(t, itr.Valid())
	require.NoError(t, itr.Error())

	itr.Next()
	require.False(t, itr.Valid())
	require.ErrorIs(t, itr.Error(), ErrIteratorExhausted)
	require.PanicsWithError(t, ErrIteratorExhausted.Error(), func() { itr.Key() })
	require.PanicsWithError(t, ErrIteratorExhausted.Error(), func() { itr.Value() })

	for range tree.All() {
		t.Fatal("empty tree yielded an entry")
	}
}

func TestIterator_Order(t *testing.T) {
	tree := setupTenKeyTree(t, DefaultTreeOptions())

	cases := []struct {
		name      string
		ascending bool
		expected  []int
	}{
		{"ascending", true, []int{1, 11, 14, 16, 17, 18, 34, 36, 72, 100}},
		{"descending", false, []int{100, 72, 36, 34, 18, 17, 16, 14, 11, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			itr := tree.Iterator(tc.ascending)
			var keys []int
			for ; itr.Valid(); itr.Next() {
				keys = append(keys, itr.Key())
				v, found, err := tree.Get(itr.Key())
				require.NoError(t, err)
				require.True(t, found)
				require.Equal(t, v, itr.Value())
			}
			require.NoError(t, itr.Error())
			require.Equal(t, tc.expected, keys)
			require.NoError(t, itr.Close())
		})
	}
}

func TestIterator_Exhausted(t *testing.T) {
	tree := newStringTree()
	_, _, err := tree.Set(testKey, testVal)
	require.NoError(t, err)

	itr := tree.Iterator(true)
	require.True(t, itr.Valid())
	require.Equal(t, testKey, itr.Key())
	require.Equal(t, testVal, itr.Value())

	itr.Next()
	require.False(t, itr.Valid())
	require.NoError(t, itr.Error())

	itr.Next()
	require.ErrorIs(t, itr.Error(), ErrIteratorExhausted)
	require.Panics(t, func() { itr.Key() })
	require.ErrorIs(t, itr.Close(), ErrIteratorExhausted)
}

func TestIterator_Close(t *testing.T) {
	tree := setupTenKeyTree(t, DefaultTreeOptions())
	itr := tree.Iterator(true)
	require.NoError(t, itr.Close())
	require.False(t, itr.Valid())
	itr.Next()
	require.ErrorIs(t, itr.Error(), ErrIteratorExhausted)
}

func TestIterator_Mutation(t *testing.T) {
	tree := setupTenKeyTree(t, DefaultTreeOptions())

	itr := tree.Iterator(true)
	require.Equal(t, 1, itr.Key())
	// value updates keep the shape
	_, updated, err := tree.Set(1, 100)
	require.NoError(t, err)
	require.True(t, updated)
	require.Equal(t, 100, itr.Value())
	itr.Next()
	require.True(t, itr.Valid())
	require.Equal(t, 11, itr.Key())

	_, _, err = tree.Set(12, 0)
	require.NoError(t, err)
	itr.Next()
	require.False(t, itr.Valid())
	require.ErrorIs(t, itr.Error(), ErrTreeMutated)
	require.PanicsWithError(t, ErrTreeMutated.Error(), func() { itr.Key() })

	itr = tree.Iterator(true)
	_, _, err = tree.Remove(36)
	require.NoError(t, err)
	itr.Next()
	require.ErrorIs(t, itr.Error(), ErrTreeMutated)

	itr = tree.Iterator(true)
	tree.Clear()
	itr.Next()
	require.ErrorIs(t, itr.Error(), ErrTreeMutated)

	// a fresh iterator after mutation walks the current tree
	_, _, err = tree.Set(5, 5)
	require.NoError(t, err)
	require.Equal(t, []int{5}, keysOf(tree))
}

func TestIterator_Seq(t *testing.T) {
	tree := setupTenKeyTree(t, DefaultTreeOptions())

	var keys, values []int
	for k, v := range tree.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []int{1, 11, 14, 16, 17, 18, 34, 36, 72, 100}, keys)
	require.Equal(t, []int{6, 4, 7, 8, 5, 9, 11, 3, 12, 13}, values)
	require.Equal(t, int64(len(keys)), tree.Size())

	keys = keys[:0]
	for k := range tree.Backward() {
		keys = append(keys, k)
		if len(keys) == 3 {
			break
		}
	}
	require.Equal(t, []int{100, 72, 36}, keys)

	keys = keys[:0]
	for k := range tree.Keys() {
		if k > 16 {
			break
		}
		keys = append(keys, k)
	}
	require.Equal(t, []int{1, 11, 14, 16}, keys)

	require.PanicsWithError(t, ErrTreeMutated.Error(), func() {
		for k := range tree.All() {
			_, _, _ = tree.Remove(k)
		}
	})
}

func TestIterator_Entries(t *testing.T) {
	tree := setupTenKeyTree(t, DefaultTreeOptions())
	entries := tree.Entries()
	require.Len(t, entries, 10)
	require.Equal(t, Entry[int, int]{Key: 1, Value: 6}, entries[0])
	require.Equal(t, Entry[int, int]{Key: 100, Value: 13}, entries[9])

	var visited []int
	stopped := tree.Traverse(false, func(k, _ int) bool {
		visited = append(visited, k)
		return k == 34
	})
	require.True(t, stopped)
	require.Equal(t, []int{100, 72, 36, 34}, visited)

	visited = visited[:0]
	stopped = tree.Traverse(true, func(k, _ int) bool {
		visited = append(visited, k)
		return false
	})
	require.False(t, stopped)
	require.Len(t, visited, 10)
}
