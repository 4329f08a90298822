package avl

import "github.com/ajwerner/avl/arena"

// pathStack records the slot indices visited while descending from the
// root. Paths are bounded by tree height, so a small inline array
// covers trees of a few thousand values without allocating; deeper
// paths spill to a slice.
type pathStack struct {
	a    [pathStackDepth]arena.Index
	aLen int8 // -1 when using s
	s    []arena.Index
}

const pathStackDepth = 16

func (ps *pathStack) push(i arena.Index) {
	if ps.aLen == -1 {
		ps.s = append(ps.s, i)
	} else if int(ps.aLen) == len(ps.a) {
		ps.s = make([]arena.Index, int(ps.aLen)+1, 2*int(ps.aLen))
		copy(ps.s, ps.a[:])
		ps.s[ps.aLen] = i
		ps.aLen = -1
	} else {
		ps.a[ps.aLen] = i
		ps.aLen++
	}
}

func (ps *pathStack) pop() arena.Index {
	if ps.aLen == -1 {
		i := ps.s[len(ps.s)-1]
		ps.s = ps.s[:len(ps.s)-1]
		return i
	}
	ps.aLen--
	return ps.a[ps.aLen]
}

func (ps *pathStack) last() arena.Index {
	if ps.aLen == -1 {
		return ps.s[len(ps.s)-1]
	}
	return ps.a[ps.aLen-1]
}

func (ps *pathStack) len() int {
	if ps.aLen == -1 {
		return len(ps.s)
	}
	return int(ps.aLen)
}

func (ps *pathStack) reset() {
	if ps.aLen == -1 {
		ps.s = ps.s[:0]
	} else {
		ps.aLen = 0
	}
}
