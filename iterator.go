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

package avl

import "github.com/ajwerner/avl/arena"

// Iterator drains a tree breadth-first, yielding every value exactly
// once. Values come back level by level, not in sorted order. An
// Iterator is finite and cannot be restarted.
type Iterator[T any] struct {
	nodes arena.Arena[node[T]]
	queue []arena.Index
	cur   T
	ok    bool
}

// Drain empties the tree and returns an iterator over every value it
// held. The tree itself is left empty and ready for reuse.
//
//	it := t.Drain()
//	for it.First(); it.Valid(); it.Next() {
//		_ = it.Cur()
//	}
func (t *Tree[T]) Drain() Iterator[T] {
	it := Iterator[T]{nodes: t.nodes}
	if t.size > 0 {
		it.queue = append(it.queue, t.root)
	}
	t.nodes = arena.Arena[node[T]]{}
	t.root = arena.None
	t.size = 0
	return it
}

// First yields the first value, the old tree root.
func (it *Iterator[T]) First() { it.advance() }

// Next yields the next value in breadth-first order.
func (it *Iterator[T]) Next() { it.advance() }

// Valid reports whether Cur holds a value.
func (it *Iterator[T]) Valid() bool { return it.ok }

// Cur returns the current value.
func (it *Iterator[T]) Cur() T { return it.cur }

func (it *Iterator[T]) advance() {
	if len(it.queue) == 0 {
		var zero T
		it.cur, it.ok = zero, false
		return
	}
	i := it.queue[0]
	it.queue = it.queue[1:]
	n, ok := it.nodes.Vacate(i)
	if !ok {
		panic("avl: drained slot is vacant")
	}
	if n.left.Assigned() {
		it.queue = append(it.queue, n.left)
	}
	if n.right.Assigned() {
		it.queue = append(it.queue, n.right)
	}
	it.cur, it.ok = n.value, true
}
