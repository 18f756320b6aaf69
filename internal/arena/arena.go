// Package arena implements the slot-allocated store the document model
// uses to own every node: a vector of slots addressed by index, each
// tagged with a generation counter so an Id whose slot has been removed
// (and possibly reused) is distinguishable from a live one. This is the same shape as
// the upstream decoder's tree of *Node pointers, except nodes are never
// referenced by pointer: callers hold a small copyable Id and go through
// the arena for every access, which is what lets mutation leave unrelated
// Ids valid and lets removal be O(1) without walking the tree.
package arena

import "fmt"

// Id is an opaque handle into an Arena. It is only meaningful relative to
// the Arena that produced it; using an Id against a different Arena is a
// caller bug, not something this package detects.
type Id struct {
	index      uint32
	generation uint32
}

// IsZero reports whether id is the zero Id, which never names a live node.
func (id Id) IsZero() bool {
	return id.generation == 0
}

func (id Id) String() string {
	return fmt.Sprintf("Id(%d#%d)", id.index, id.generation)
}

type slotState uint8

const (
	slotLive slotState = iota
	slotRemoved
)

type slot[T any] struct {
	generation uint32
	state      slotState
	value      T
}

// Arena is a slot allocator over values of type T. The zero Arena is not
// usable; construct one with New.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
}

// New returns an empty Arena ready for use.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value in a fresh or recycled slot and returns its Id.
func (a *Arena[T]) Insert(value T) Id {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.state = slotLive
		s.value = value
		return Id{index: idx, generation: s.generation}
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{generation: 1, state: slotLive, value: value})
	return Id{index: idx, generation: 1}
}

// Get returns a pointer to the stored value for a live Id. The returned
// pointer is valid only until the next Insert (which may grow the slot
// slice and move every slot) or a Remove of the same slot; callers that need to retain access across mutations should re-Get
// by Id rather than holding the pointer.
func (a *Arena[T]) Get(id Id) (*T, error) {
	s, err := a.slotFor(id)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// Remove tombstones id's slot. Future lookups of id fail with ErrRemoved.
// The slot index is queued for reuse by a later Insert, under a bumped
// generation, so any old Id into it keeps failing rather than silently
// resolving to the new occupant.
func (a *Arena[T]) Remove(id Id) error {
	s, err := a.slotFor(id)
	if err != nil {
		return err
	}
	var zero T
	s.value = zero
	s.state = slotRemoved
	s.generation++
	a.free = append(a.free, id.index)
	return nil
}

// Contains reports whether id currently names a live node, without
// distinguishing why not (stale vs removed vs never issued).
func (a *Arena[T]) Contains(id Id) bool {
	_, err := a.slotFor(id)
	return err == nil
}

func (a *Arena[T]) slotFor(id Id) (*slot[T], error) {
	if id.generation == 0 || int(id.index) >= len(a.slots) {
		return nil, ErrStale
	}
	s := &a.slots[id.index]
	if s.generation != id.generation {
		if id.generation < s.generation {
			return nil, ErrRemoved
		}
		return nil, ErrStale
	}
	if s.state == slotRemoved {
		return nil, ErrRemoved
	}
	return s, nil
}

// Len returns the number of live (non-tombstoned) slots.
func (a *Arena[T]) Len() int {
	return len(a.slots) - len(a.free)
}
