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

// Insert adds v to the tree and returns the slot index it now
// occupies. It returns false, leaving the tree unchanged, if v is
// already present.
func (t *Tree[T]) Insert(v T) (arena.Index, bool) {
	if t.size == 0 {
		t.root = t.nodes.Alloc(newNode(v))
		t.size = 1
		return t.root, true
	}
	if t.descend(v) {
		return arena.None, false
	}

	parent := t.path.last()
	toLeft := t.cmp(v, t.mustNode(parent).value) < 0
	i := t.nodes.Alloc(newNode(v))
	// Alloc may have grown the arena; re-fetch the parent.
	p := t.mustNode(parent)
	if toLeft {
		p.left = i
	} else {
		p.right = i
	}

	t.rebalancePath()
	t.size++
	return i, true
}
