// File: ring/iterator.go
//
// Bidirectional cursor over a ring's slot arena. The cursor carries the
// physical position plus the count of forward steps left, so termination is
// well-defined despite wraparound: on a full ring, Begin and End share a
// physical position but differ in the remaining count until the cursor has
// walked the whole lap.

package ring

import (
	"github.com/DarkerSquirrel/circular-buffer/internal/index"
	"github.com/DarkerSquirrel/circular-buffer/internal/storage"
)

// Iterator is a bidirectional cursor over a ring's storage. The zero value
// is not usable; always obtain iterators from Begin/End.
type Iterator[T any] struct {
	store *storage.Arena[T]
	pos   int
	left  int
}

// Begin returns a cursor at the logical first element; equals End() when the
// ring is empty.
func (r *Ring[T]) Begin() Iterator[T] {
	if r.size == 0 {
		return r.End()
	}
	return Iterator[T]{store: r.store, pos: r.head, left: r.size}
}

// End returns the one-past-last sentinel cursor.
func (r *Ring[T]) End() Iterator[T] {
	return Iterator[T]{store: r.store, pos: index.Inc(r.tail, r.store.Len()), left: 0}
}

// Ref returns a pointer to the element under the cursor. Dereferencing End()
// reads an unoccupied slot; the pointer is valid but its contents are
// meaningless.
func (it Iterator[T]) Ref() *T { return it.store.Ref(it.pos) }

// Value returns a copy of the element under the cursor. Same End() caveat
// as Ref.
func (it Iterator[T]) Value() T { return *it.store.Ref(it.pos) }

// Next advances the cursor one logical step forward.
func (it *Iterator[T]) Next() {
	it.pos = index.Inc(it.pos, it.store.Len())
	it.left--
}

// Prev retreats the cursor one logical step.
func (it *Iterator[T]) Prev() {
	it.pos = index.Dec(it.pos, it.store.Len())
	it.left++
}

// Done reports whether the cursor has no forward steps left.
func (it Iterator[T]) Done() bool { return it.left == 0 }

// Equal reports whether both cursors reference the same storage at the same
// position with the same remaining count. All three must match: position
// alone cannot distinguish Begin from End on a full ring.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.store == other.store && it.pos == other.pos && it.left == other.left
}

// Reverse adapts the bidirectional cursor to traverse back-to-front. It
// wraps a forward cursor as its base and dereferences the element just
// before it, so RBegin (wrapping End) yields the last element and REnd
// (wrapping Begin) is the reverse sentinel.
type Reverse[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse cursor at the logical last element; equals REnd()
// when the ring is empty.
func (r *Ring[T]) RBegin() Reverse[T] { return Reverse[T]{base: r.End()} }

// REnd returns the reverse one-past-last sentinel cursor.
func (r *Ring[T]) REnd() Reverse[T] { return Reverse[T]{base: r.Begin()} }

// Ref returns a pointer to the element under the reverse cursor.
func (rv Reverse[T]) Ref() *T {
	b := rv.base
	b.Prev()
	return b.Ref()
}

// Value returns a copy of the element under the reverse cursor.
func (rv Reverse[T]) Value() T { return *rv.Ref() }

// Next advances the reverse cursor, i.e. retreats the base.
func (rv *Reverse[T]) Next() { rv.base.Prev() }

// Prev retreats the reverse cursor, i.e. advances the base.
func (rv *Reverse[T]) Prev() { rv.base.Next() }

// Base returns the wrapped forward cursor.
func (rv Reverse[T]) Base() Iterator[T] { return rv.base }

// Equal reports whether both reverse cursors wrap equal base cursors.
func (rv Reverse[T]) Equal(other Reverse[T]) bool {
	return rv.base.Equal(other.base)
}
