// File: ring/seq.go
//
// Range-over-func adapters built on the bidirectional cursor. These are the
// read-only traversals; use the cursors directly when mutation through Ref
// is needed.

package ring

import "iter"

// All yields the live elements front-to-back.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the live elements back-to-front.
func (r *Ring[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := r.End()
		for n := r.size; n > 0; n-- {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Slice returns the logical sequence as a fresh slice, front-to-back.
func (r *Ring[T]) Slice() []T {
	if r.size == 0 {
		return nil
	}
	out := make([]T, 0, r.size)
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}
