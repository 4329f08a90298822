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

// Package arena provides a growable slot store addressed by index.
// Vacated slots are remembered on a free stack and reused before the
// backing array grows, so an index is only valid while its slot stays
// occupied.
package arena

// Index addresses a slot in an Arena.
type Index int

// None is the index of no slot.
const None Index = -1

// Assigned reports whether i refers to a slot at all.
func (i Index) Assigned() bool { return i != None }

type slot[T any] struct {
	value    T
	occupied bool
}

// Arena is a growable array of slots. The zero value is an empty arena
// ready for use.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []Index
}

// Alloc stores v in a vacant slot, reusing the most recently vacated
// one if any exist, and returns the index of the slot used.
func (a *Arena[T]) Alloc(v T) Index {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = slot[T]{value: v, occupied: true}
		return i
	}
	a.slots = append(a.slots, slot[T]{value: v, occupied: true})
	return Index(len(a.slots) - 1)
}

// Get returns a pointer to the value in slot i, or false if i is out of
// range or the slot is vacant. The pointer is invalidated by the next
// Alloc.
func (a *Arena[T]) Get(i Index) (*T, bool) {
	if i < 0 || int(i) >= len(a.slots) || !a.slots[i].occupied {
		return nil, false
	}
	return &a.slots[i].value, true
}

// Vacate takes the value out of slot i, marks the slot vacant and
// pushes i onto the free stack. It returns false if i is out of range
// or the slot is already vacant.
func (a *Arena[T]) Vacate(i Index) (T, bool) {
	var zero T
	if i < 0 || int(i) >= len(a.slots) || !a.slots[i].occupied {
		return zero, false
	}
	v := a.slots[i].value
	a.slots[i] = slot[T]{}
	a.free = append(a.free, i)
	return v, true
}

// Swap exchanges the contents of slots i and j, occupancy included.
func (a *Arena[T]) Swap(i, j Index) {
	a.slots[i], a.slots[j] = a.slots[j], a.slots[i]
}

// TrimTail removes vacant slots from the end of the arena and drops
// their indices from the free stack; a slot that is physically gone no
// longer needs tracking.
func (a *Arena[T]) TrimTail() {
	n := len(a.slots)
	for n > 0 && !a.slots[n-1].occupied {
		n--
	}
	if n == len(a.slots) {
		return
	}
	a.slots = a.slots[:n]
	kept := a.free[:0]
	for _, i := range a.free {
		if int(i) < n {
			kept = append(kept, i)
		}
	}
	a.free = kept
}

// Len is the number of physical slots, vacant ones included.
func (a *Arena[T]) Len() int { return len(a.slots) }

// Live is the number of occupied slots.
func (a *Arena[T]) Live() int { return len(a.slots) - len(a.free) }

// Reset drops every slot and forgets the free stack.
func (a *Arena[T]) Reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}
