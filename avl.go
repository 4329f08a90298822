// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package avl implements a height-balanced binary search tree of
// unique values stored in a slot arena, with children linked by slot
// index rather than by pointer.
//
// Insert and Contains report the slot index a value occupies; the
// index stays usable with Get until a removal vacates the slot.
//
// A Tree is not safe for concurrent use.
package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/avl/arena"
)

// node is a tree vertex. Children are addressed by slot index because
// slots are reused after removal; a leaf has height 0 and an absent
// child contributes height -1.
type node[T any] struct {
	value  T
	left   arena.Index
	right  arena.Index
	height int8
}

func newNode[T any](v T) node[T] {
	return node[T]{value: v, left: arena.None, right: arena.None}
}

// Tree is an AVL tree of unique values backed by a slot arena.
type Tree[T any] struct {
	nodes arena.Arena[node[T]]
	root  arena.Index
	size  int
	cmp   func(T, T) int

	// path is reused across operations to record descent paths for the
	// bottom-up rebalancing replay.
	path pathStack
}

// Compare is a three-way comparison for any ordered type.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// New returns an empty tree ordered by <.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc[T](Compare[T])
}

// NewFunc returns an empty tree ordered by cmp, which must define a
// total order, returning a negative, zero or positive int in the
// manner of strings.Compare.
func NewFunc[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{root: arena.None, cmp: cmp}
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// Height returns the height of the tree: -1 when empty, 0 for a single
// value.
func (t *Tree[T]) Height() int {
	if t.size == 0 {
		return -1
	}
	return int(t.mustNode(t.root).height)
}

// Get returns the value stored in slot i. It returns false if the slot
// is out of range or vacant; an index obtained before a removal may no
// longer refer to its value.
func (t *Tree[T]) Get(i arena.Index) (T, bool) {
	n, ok := t.nodes.Get(i)
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Contains reports the slot index holding v, if present. It does not
// modify the tree.
func (t *Tree[T]) Contains(v T) (arena.Index, bool) {
	if t.size == 0 {
		return arena.None, false
	}
	if !t.descend(v) {
		return arena.None, false
	}
	if t.path.len() == 0 {
		return t.root, true
	}
	parent := t.mustNode(t.path.last())
	if t.cmp(v, parent.value) < 0 {
		return parent.left, true
	}
	return parent.right, true
}

// descend walks from the root comparing v against each visited node,
// recording onto t.path every slot index visited strictly before the
// stopping point. It reports whether v was found; on a miss the last
// recorded index is the prospective parent of v. The tree must not be
// empty.
func (t *Tree[T]) descend(v T) bool {
	t.path.reset()
	i := t.root
	for {
		n := t.mustNode(i)
		c := t.cmp(v, n.value)
		if c == 0 {
			return true
		}
		next := n.left
		if c > 0 {
			next = n.right
		}
		t.path.push(i)
		if !next.Assigned() {
			return false
		}
		i = next
	}
}

// mustNode returns the node in slot i. The index must come from the
// tree's own linkage; a vacant slot here means the path bookkeeping is
// broken.
func (t *Tree[T]) mustNode(i arena.Index) *node[T] {
	n, ok := t.nodes.Get(i)
	if !ok {
		panic("avl: linked slot is vacant")
	}
	return n
}
