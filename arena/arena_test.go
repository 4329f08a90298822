package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocAndGet(t *testing.T) {
	var a Arena[string]
	require.Zero(t, a.Len())
	require.Zero(t, a.Live())

	i := a.Alloc("a")
	j := a.Alloc("b")
	require.Equal(t, Index(0), i)
	require.Equal(t, Index(1), j)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.Live())

	v, ok := a.Get(i)
	require.True(t, ok)
	require.Equal(t, "a", *v)

	// Get hands out a pointer into the slot itself.
	*v = "c"
	v, ok = a.Get(i)
	require.True(t, ok)
	require.Equal(t, "c", *v)

	_, ok = a.Get(None)
	require.False(t, ok)
	_, ok = a.Get(Index(2))
	require.False(t, ok)
}

func TestVacateAndReuse(t *testing.T) {
	var a Arena[int]
	for i := 0; i < 4; i++ {
		a.Alloc(i * 10)
	}

	v, ok := a.Vacate(1)
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = a.Get(1)
	require.False(t, ok)
	_, ok = a.Vacate(1)
	require.False(t, ok)
	require.Equal(t, 4, a.Len())
	require.Equal(t, 3, a.Live())

	// Freed slots are reused most recently vacated first.
	a.Vacate(2)
	require.Equal(t, Index(2), a.Alloc(50))
	require.Equal(t, Index(1), a.Alloc(60))
	require.Equal(t, 4, a.Len())
	require.Equal(t, 4, a.Live())
}

func TestTrimTail(t *testing.T) {
	var a Arena[int]
	for i := 0; i < 5; i++ {
		a.Alloc(i)
	}
	a.Vacate(4)
	a.Vacate(2)
	a.Vacate(3)

	a.TrimTail()
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.Live())

	// The trimmed indices are gone from the free stack, so the next
	// Alloc appends.
	require.Equal(t, Index(2), a.Alloc(9))

	// An interior hole survives trimming and stays reusable.
	a.Vacate(1)
	a.TrimTail()
	require.Equal(t, 3, a.Len())
	require.Equal(t, Index(1), a.Alloc(7))
}

func TestTrimTailAll(t *testing.T) {
	var a Arena[int]
	a.Alloc(1)
	a.Alloc(2)
	a.Vacate(0)
	a.Vacate(1)
	a.TrimTail()
	require.Zero(t, a.Len())
	require.Zero(t, a.Live())
	require.Equal(t, Index(0), a.Alloc(3))
}

func TestSwap(t *testing.T) {
	var a Arena[int]
	a.Alloc(1)
	a.Alloc(2)
	a.Vacate(1)

	a.Swap(0, 1)
	_, ok := a.Get(0)
	require.False(t, ok)
	v, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, *v)
}

func TestReset(t *testing.T) {
	var a Arena[int]
	a.Alloc(1)
	a.Alloc(2)
	a.Vacate(0)
	a.Reset()
	require.Zero(t, a.Len())
	require.Zero(t, a.Live())
	require.Equal(t, Index(0), a.Alloc(3))
}
