// File: internal/storage/arena.go
// Package storage implements the slot arena backing the ring buffer.
//
// The arena is a fixed array of element slots with index-addressed lifetime
// control: the owner decides when a slot is constructed, overwritten, or
// destroyed. Occupancy is tracked logically by the owner (head/tail/size),
// never per slot. Destroying a slot stores the zero value so the slot drops
// any references it held; an unoccupied slot must never be surfaced to
// callers.

package storage

// Arena is a fixed-size array of element slots.
type Arena[T any] struct {
	slots []T
}

// New allocates an arena with n slots. This is the only allocation the
// container performs over its whole lifetime.
func New[T any](n int) *Arena[T] {
	return &Arena[T]{slots: make([]T, n)}
}

// Len returns the number of slots.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// Ref returns a pointer to slot i.
func (a *Arena[T]) Ref(i int) *T {
	return &a.slots[i]
}

// Set writes a value into slot i, overwriting whatever it held.
func (a *Arena[T]) Set(i int, v T) {
	a.slots[i] = v
}

// Take reads slot i out and destroys it.
func (a *Arena[T]) Take(i int) T {
	v := a.slots[i]
	a.Destroy(i)
	return v
}

// Destroy zeroes slot i so the collector can reclaim what it referenced.
func (a *Arena[T]) Destroy(i int) {
	var zero T
	a.slots[i] = zero
}

// CopySpan copies slots [first, last) from src into the same positions here.
func (a *Arena[T]) CopySpan(src *Arena[T], first, last int) {
	copy(a.slots[first:last], src.slots[first:last])
}

// MoveSpan relocates slots [first, last) from src into the same positions
// here, destroying the source slots.
func (a *Arena[T]) MoveSpan(src *Arena[T], first, last int) {
	var zero T
	for i := first; i < last; i++ {
		a.slots[i] = src.slots[i]
		src.slots[i] = zero
	}
}

// Raw exposes the backing slot array in physical order. Callers must account
// for the owner's wraparound themselves.
func (a *Arena[T]) Raw() []T {
	return a.slots
}
