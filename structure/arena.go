// Package structure holds the low-level, allocation-free building blocks
// the matching engine core is built on: here, a preallocated slab with a
// LIFO free list, the same arena discipline the teacher's pooled skiplist
// used for its node storage, generalized to hold any fixed-size record.
package structure

import "errors"

// ErrArenaExhausted is returned by Alloc when every slot is in use.
var ErrArenaExhausted = errors.New("structure: arena exhausted")

// Arena is a fixed-capacity slab of T with a LIFO free list. Slots are
// addressed by a stable int32 index for their entire lifetime; the arena
// never reallocates its backing slice, so a pointer obtained from At
// remains valid until the slot is freed and the caller stops using it.
//
// Arena is not safe for concurrent use; the matching engine core is
// single-threaded by design and never shares an arena across goroutines.
type Arena[T any] struct {
	slots    []T
	inUse    []bool
	freeList []int32 // LIFO stack of free slot indices
}

// NewArena preallocates an arena with room for exactly capacity records.
func NewArena[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		slots:    make([]T, capacity),
		inUse:    make([]bool, capacity),
		freeList: make([]int32, capacity),
	}
	for i := 0; i < capacity; i++ {
		// Push in descending order so slot 0 is handed out first.
		a.freeList[i] = int32(capacity - 1 - i)
	}
	return a
}

// Cap returns the arena's fixed capacity.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Len returns the number of slots currently in use.
func (a *Arena[T]) Len() int { return len(a.slots) - len(a.freeList) }

// Alloc pops a slot off the free list and returns its index and a pointer
// to its zero value. Returns ErrArenaExhausted if no slot is free.
func (a *Arena[T]) Alloc() (int32, *T, error) {
	n := len(a.freeList)
	if n == 0 {
		return 0, nil, ErrArenaExhausted
	}
	idx := a.freeList[n-1]
	a.freeList = a.freeList[:n-1]
	a.inUse[idx] = true
	return idx, &a.slots[idx], nil
}

// Free returns idx to the free list. The caller must have already removed
// any external references to the slot (index lists, maps); Arena does not
// track who else holds the index.
func (a *Arena[T]) Free(idx int32) {
	var zero T
	a.slots[idx] = zero
	a.inUse[idx] = false
	a.freeList = append(a.freeList, idx)
}

// At returns a pointer to the record at idx, regardless of whether the
// slot is currently in use.
func (a *Arena[T]) At(idx int32) *T {
	return &a.slots[idx]
}

// InUse reports whether idx currently holds a live record.
func (a *Arena[T]) InUse(idx int32) bool {
	return a.inUse[idx]
}
