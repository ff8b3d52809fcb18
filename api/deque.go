// Package api
//
// Contracts and error model for the circular-buffer library.

package api

// Deque is the double-ended fixed-capacity buffer contract.
//
// Implementations keep all operations O(1) and allocation-free after
// construction. Pushing into a full buffer evicts the element at the
// opposite end rather than growing.
type Deque[T any] interface {
	// Len returns the current number of live elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Empty reports whether the buffer holds no elements.
	Empty() bool
	// Full reports whether the buffer is at capacity.
	Full() bool
	// Front returns a pointer to the logical first element.
	// Contents are meaningless while the buffer is empty.
	Front() *T
	// Back returns a pointer to the logical last element.
	// Contents are meaningless while the buffer is empty.
	Back() *T
	// PushBack appends a value, evicting the front element when full.
	PushBack(v T)
	// PushFront prepends a value, evicting the back element when full.
	PushFront(v T)
	// PopBack removes and returns the last element; ok is false when empty.
	PopBack() (T, bool)
	// PopFront removes and returns the first element; ok is false when empty.
	PopFront() (T, bool)
	// Clear removes every element and restores the empty state.
	Clear()
}
