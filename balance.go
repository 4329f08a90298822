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

// rebalancePath drains the recorded descent path deepest-first,
// recomputing each node's height and applying any rotation its balance
// factor calls for, then re-links the next ancestor on the path to the
// subtree's new root. The final iteration always runs on the tree root.
func (t *Tree[T]) rebalancePath() {
	for t.path.len() > 0 {
		i := t.path.pop()
		factor := t.updateHeight(i)
		sub := t.balanceNode(i, factor)
		if t.path.len() == 0 {
			t.root = sub
			return
		}
		parent := t.mustNode(t.path.last())
		if parent.left == i {
			parent.left = sub
		} else {
			parent.right = sub
		}
	}
}

// updateHeight recomputes the height stored at slot i from its
// children and returns the node's balance factor, right height minus
// left height.
func (t *Tree[T]) updateHeight(i arena.Index) int8 {
	n := t.mustNode(i)
	lh, rh := t.childHeight(n.left), t.childHeight(n.right)
	if lh > rh {
		n.height = 1 + lh
	} else {
		n.height = 1 + rh
	}
	return rh - lh
}

// balanceNode applies the AVL rotation cases at slot i and returns the
// index of the subtree's new root, which is i itself when no rotation
// is needed. A factor of -2 takes a single right rotation when the
// left child is itself left-heavy or balanced, otherwise a left-right
// double; +2 mirrors this on the right.
func (t *Tree[T]) balanceNode(i arena.Index, factor int8) arena.Index {
	switch factor {
	case -2:
		l := t.mustNode(t.mustNode(i).left)
		if t.childHeight(l.left) >= t.childHeight(l.right) {
			return t.rotateRight(i)
		}
		return t.rotateLeftRight(i)
	case 2:
		r := t.mustNode(t.mustNode(i).right)
		if t.childHeight(r.right) >= t.childHeight(r.left) {
			return t.rotateLeft(i)
		}
		return t.rotateRightLeft(i)
	}
	return i
}

// childHeight treats an absent child as an empty subtree of height -1.
func (t *Tree[T]) childHeight(i arena.Index) int8 {
	if !i.Assigned() {
		return -1
	}
	return t.mustNode(i).height
}

// rotateRight makes i's left child the subtree root, with i as its
// right child, and returns the new root's index. Heights are
// recomputed bottom-up: i first, then the new root above it.
func (t *Tree[T]) rotateRight(i arena.Index) arena.Index {
	l := t.mustNode(i).left
	lr := t.mustNode(l).right
	t.mustNode(i).left = lr
	t.mustNode(l).right = i
	t.updateHeight(i)
	t.updateHeight(l)
	return l
}

// rotateLeft is the mirror of rotateRight.
func (t *Tree[T]) rotateLeft(i arena.Index) arena.Index {
	r := t.mustNode(i).right
	rl := t.mustNode(r).left
	t.mustNode(i).right = rl
	t.mustNode(r).left = i
	t.updateHeight(i)
	t.updateHeight(r)
	return r
}

func (t *Tree[T]) rotateLeftRight(i arena.Index) arena.Index {
	n := t.mustNode(i)
	n.left = t.rotateLeft(n.left)
	return t.rotateRight(i)
}

func (t *Tree[T]) rotateRightLeft(i arena.Index) arena.Index {
	n := t.mustNode(i)
	n.right = t.rotateRight(n.right)
	return t.rotateLeft(i)
}
