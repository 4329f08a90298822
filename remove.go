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

// Remove takes v out of the tree, returning the stored value. It
// returns false, leaving the tree unchanged, if v is not present.
func (t *Tree[T]) Remove(v T) (T, bool) {
	var zero T
	if t.size == 0 {
		return zero, false
	}

	isRoot := false
	rootNode := t.mustNode(t.root)
	if t.cmp(v, rootNode.value) == 0 {
		if t.size == 1 {
			out, _ := t.nodes.Vacate(t.root)
			t.nodes.Reset()
			t.root = arena.None
			t.size = 0
			return out.value, true
		}
		if rootNode.left.Assigned() != rootNode.right.Assigned() {
			// The surviving child becomes the root directly; nothing
			// below it changed, so no rebalancing is needed.
			newRoot := rootNode.left
			if rootNode.right.Assigned() {
				newRoot = rootNode.right
			}
			out, _ := t.nodes.Vacate(t.root)
			t.root = newRoot
			t.size--
			t.nodes.TrimTail()
			return out.value, true
		}
		isRoot = true
	}

	if isRoot {
		t.path.reset()
		t.path.push(t.root)
	} else if !t.descend(v) {
		return zero, false
	}

	parent := t.path.last()
	childIsLeft := false
	target := t.root
	if !isRoot {
		p := t.mustNode(parent)
		childIsLeft = t.cmp(v, p.value) < 0
		if childIsLeft {
			target = p.left
		} else {
			target = p.right
		}
	}

	tn := t.mustNode(target)
	if tn.left.Assigned() && tn.right.Assigned() {
		out := t.removeInner(target, isRoot, tn.left, tn.right)
		t.rebalancePath()
		t.nodes.TrimTail()
		t.size--
		return out, true
	}

	// Leaf or single child: splice the sole child, if any, into the
	// parent's link.
	child := arena.None
	if tn.left.Assigned() != tn.right.Assigned() {
		child = tn.left
		if tn.right.Assigned() {
			child = tn.right
		}
	}
	p := t.mustNode(parent)
	if childIsLeft {
		p.left = child
	} else {
		p.right = child
	}
	out, _ := t.nodes.Vacate(target)

	t.rebalancePath()
	t.nodes.TrimTail()
	t.size--
	return out.value, true
}

// removeInner handles removal of a node with two children. The target
// node is never unlinked; its payload is replaced in place with the
// value of its in-order neighbor from the taller child subtree, ties
// breaking to the right to match the balance factor convention. Every
// slot visited on the way to the neighbor joins the rebalancing path,
// since each is an ancestor whose height may change. Returns the
// removed value.
func (t *Tree[T]) removeInner(target arena.Index, isRoot bool, left, right arena.Index) T {
	if !isRoot {
		t.path.push(target)
	}

	var vacated arena.Index
	if t.mustNode(left).height > t.mustNode(right).height {
		// Predecessor: the rightmost node of the left subtree.
		cur := left
		for t.mustNode(cur).right.Assigned() {
			t.path.push(cur)
			cur = t.mustNode(cur).right
		}
		if c := t.mustNode(cur).left; c.Assigned() {
			// The neighbor's sole child is promoted into its slot;
			// the child's former slot is the one vacated.
			t.nodes.Swap(cur, c)
			vacated = c
		} else {
			t.mustNode(t.path.last()).right = arena.None
			vacated = cur
		}
	} else {
		// Successor: the leftmost node of the right subtree.
		cur := right
		for t.mustNode(cur).left.Assigned() {
			t.path.push(cur)
			cur = t.mustNode(cur).left
		}
		if c := t.mustNode(cur).right; c.Assigned() {
			t.nodes.Swap(cur, c)
			vacated = c
		} else {
			t.mustNode(t.path.last()).left = arena.None
			vacated = cur
		}
	}

	neighbor, _ := t.nodes.Vacate(vacated)
	repl := newNode(neighbor.value)
	// The neighbor may have been a direct child of the target, in
	// which case its slot is now vacant and must not stay linked. The
	// height is recomputed during the replay.
	if _, ok := t.nodes.Get(left); ok {
		repl.left = left
	}
	if _, ok := t.nodes.Get(right); ok {
		repl.right = right
	}

	tn := t.mustNode(target)
	out := tn.value
	*tn = repl
	return out
}
