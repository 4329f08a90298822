package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveAbsent(t *testing.T) {
	tr := New[int]()
	_, ok := tr.Remove(1)
	require.False(t, ok)

	for _, v := range []int{50, 25, 75} {
		tr.Insert(v)
	}
	before := snapshot(tr)
	for _, v := range []int{0, 60, 100} {
		_, ok := tr.Remove(v)
		require.False(t, ok)
	}
	require.Equal(t, before, snapshot(tr))
	require.Equal(t, 3, tr.Len())
	requireInvariants(t, tr)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		insert []int
		remove int
	}{
		{
			name:   "single node root",
			insert: []int{50},
			remove: 50,
		},
		{
			name:   "root with left child only",
			insert: []int{50, 25},
			remove: 50,
		},
		{
			name:   "root with right child only",
			insert: []int{50, 75},
			remove: 50,
		},
		{
			name:   "leaf left child",
			insert: []int{50, 25, 75},
			remove: 25,
		},
		{
			name:   "leaf right child",
			insert: []int{50, 25, 75},
			remove: 75,
		},
		{
			name:   "root with two leaf children",
			insert: []int{50, 25, 75},
			remove: 50,
		},
		{
			name:   "node with left child only",
			insert: []int{50, 25, 75, 10},
			remove: 25,
		},
		{
			name:   "node with right child only",
			insert: []int{50, 25, 75, 30},
			remove: 25,
		},
		{
			name:   "root two children, deep successor",
			insert: []int{50, 25, 75, 60, 90, 80},
			remove: 75,
		},
		{
			name:   "root two children, predecessor from taller left",
			insert: []int{50, 25, 75, 10, 30},
			remove: 50,
		},
		{
			name:   "root two children, successor promoted over its child",
			insert: []int{50, 25, 75, 10, 30, 27},
			remove: 30,
		},
		{
			name:   "non-root node with two children",
			insert: []int{50, 25, 75, 10, 30, 5},
			remove: 50,
		},
		{
			name:   "removal cascades a rotation",
			insert: []int{50, 25, 75, 10, 30, 60, 90, 5, 27, 35, 80, 33},
			remove: 60,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := New[int]()
			for _, v := range tc.insert {
				_, ok := tr.Insert(v)
				require.True(t, ok)
			}
			requireInvariants(t, tr)

			got, ok := tr.Remove(tc.remove)
			require.True(t, ok)
			require.Equal(t, tc.remove, got)
			require.Equal(t, len(tc.insert)-1, tr.Len())
			requireInvariants(t, tr)

			_, ok = tr.Contains(tc.remove)
			require.False(t, ok)
			for _, v := range tc.insert {
				if v == tc.remove {
					continue
				}
				i, ok := tr.Contains(v)
				require.True(t, ok, "lost %d", v)
				kept, ok := tr.Get(i)
				require.True(t, ok)
				require.Equal(t, v, kept)
			}
		})
	}
}

// Indices handed out before a removal must read back as absent once
// their slot is vacated, never as some other survivor.
func TestRemoveInvalidatesIndex(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{50, 25, 75, 10} {
		tr.Insert(v)
	}
	i, ok := tr.Contains(10)
	require.True(t, ok)

	_, ok = tr.Remove(10)
	require.True(t, ok)
	_, ok = tr.Get(i)
	require.False(t, ok)
	requireInvariants(t, tr)
}
