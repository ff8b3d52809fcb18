// File: ring/ring.go
//
// Ring state, constructors, capacity/access surface, and the copy/move
// family. Head and tail index the logical first and last live element; while
// the buffer is empty they sit in the canonical sentinel relationship
// head == Inc(tail) so Begin() and End() coincide.

package ring

import (
	"fmt"
	"iter"

	"github.com/DarkerSquirrel/circular-buffer/api"
	"github.com/DarkerSquirrel/circular-buffer/internal/index"
	"github.com/DarkerSquirrel/circular-buffer/internal/storage"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity double-ended queue over a contiguous slot arena.
//
// Pushing into a full ring evicts the element at the opposite end. The ring
// owns every live element it stores; slots outside the occupied range hold
// the zero value and are never surfaced.
type Ring[T any] struct {
	head  int
	tail  int
	size  int
	store *storage.Arena[T]

	stats   *Statistics
	metrics *ringMetrics
	opts    *ringOptions[T]
}

// New creates an empty ring with the given fixed capacity.
// Returns ErrInvalidCapacity when capacity < 1.
func New[T any](capacity int, opts ...Option[T]) (*Ring[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"ring: capacity must be at least 1").WithContext("capacity", capacity)
	}

	o := applyOptions(opts...)

	var metrics *ringMetrics
	if o.metricsReg != nil && o.name != "" {
		var err error
		metrics, err = newRingMetrics(o.metricsReg, o.name)
		if err != nil {
			return nil, fmt.Errorf("ring: register metrics: %w", err)
		}
	}

	return &Ring[T]{
		head:    1 % capacity,
		tail:    0,
		store:   storage.New[T](capacity),
		stats:   NewStatistics(),
		metrics: metrics,
		opts:    o,
	}, nil
}

// NewFilled creates a ring holding count copies of fill at the front.
// Returns ErrInvalidCount when count < 0 and ErrCapacityExceeded when
// count > capacity. Arguments are validated before any construction side
// effects, so a failed call leaves nothing behind.
func NewFilled[T any](capacity, count int, fill T, opts ...Option[T]) (*Ring[T], error) {
	if count < 0 {
		return nil, api.NewError(api.ErrCodeInvalidCount,
			"ring: negative fill count").WithContext("count", count)
	}
	if count > capacity {
		return nil, api.NewError(api.ErrCodeCapacityExceeded,
			"ring: fill count exceeds capacity").
			WithContext("count", count).
			WithContext("capacity", capacity)
	}

	r, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		r.store.Set(i, fill)
	}
	if count > 0 {
		r.head, r.tail, r.size = 0, count-1, count
		r.stats.UpdateSize(int64(count))
		r.updateSizeMetric()
	}
	return r, nil
}

// FromSlice creates a ring pre-filled with the given items in order.
// Returns ErrCapacityExceeded when len(items) > capacity. Validated before
// any construction side effects.
func FromSlice[T any](capacity int, items []T, opts ...Option[T]) (*Ring[T], error) {
	if len(items) > capacity {
		return nil, api.NewError(api.ErrCodeCapacityExceeded,
			"ring: item count exceeds capacity").
			WithContext("count", len(items)).
			WithContext("capacity", capacity)
	}

	r, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}

	for i, v := range items {
		r.store.Set(i, v)
	}
	if len(items) > 0 {
		r.head, r.tail, r.size = 0, len(items)-1, len(items)
		r.stats.UpdateSize(int64(r.size))
		r.updateSizeMetric()
	}
	return r, nil
}

// Collect creates a ring from a sequence, counting as it consumes.
// Fails with ErrCapacityExceeded the moment the count would pass capacity;
// the abandoned ring's collectors are unregistered so the name stays free.
func Collect[T any](capacity int, seq iter.Seq[T], opts ...Option[T]) (*Ring[T], error) {
	r, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}

	n := 0
	for v := range seq {
		if n >= capacity {
			r.discard()
			return nil, api.NewError(api.ErrCodeCapacityExceeded,
				"ring: sequence longer than capacity").
				WithContext("capacity", capacity)
		}
		r.store.Set(n, v)
		n++
	}
	if n > 0 {
		r.head, r.tail, r.size = 0, n-1, n
		r.stats.UpdateSize(int64(n))
		r.updateSizeMetric()
	}
	return r, nil
}

// capacity

// Len returns the current number of live elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return r.store.Len() }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the ring is at capacity.
func (r *Ring[T]) Full() bool { return r.size == r.store.Len() }

// element access

// Front returns a pointer to the logical first element. The slot always
// exists, so the pointer is valid even when the ring is empty, but its
// contents are meaningless then. No bounds check on this path.
func (r *Ring[T]) Front() *T { return r.store.Ref(r.head) }

// Back returns a pointer to the logical last element. Same empty-ring
// caveat as Front.
func (r *Ring[T]) Back() *T { return r.store.Ref(r.tail) }

// At returns a pointer to the element at logical offset i from the front.
// Same empty-ring caveat as Front; i must be within [0, Len()).
func (r *Ring[T]) At(i int) *T {
	return r.store.Ref((r.head + i) % r.store.Len())
}

// Data exposes the backing slots in physical order. Slots outside the
// occupied range hold the zero value; the caller must account for
// wraparound manually.
func (r *Ring[T]) Data() []T { return r.store.Raw() }

// Stats returns the always-on operation statistics.
func (r *Ring[T]) Stats() *Statistics { return r.stats }

// String implements fmt.Stringer for logs and test failures.
func (r *Ring[T]) String() string {
	return fmt.Sprintf("Ring{len: %d, cap: %d}", r.size, r.store.Len())
}

// copy/move

// Clone returns a deep copy holding the same logical sequence. Only the
// occupied span is copied. The clone starts with fresh statistics and no
// metrics registration (a collector can only be registered once).
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{
		head:  r.head,
		tail:  r.tail,
		size:  r.size,
		store: storage.New[T](r.store.Len()),
		stats: NewStatistics(),
		opts:  r.opts,
	}
	c.copyOccupied(r)
	c.stats.UpdateSize(int64(c.size))
	return c
}

// CopyFrom replaces this ring's contents with a copy of src's logical
// sequence. Capacities must match, as they are part of the buffer's
// identity. Returns ErrInvalidCapacity on mismatch.
func (r *Ring[T]) CopyFrom(src *Ring[T]) error {
	if src == r {
		return nil
	}
	if err := r.checkSameCapacity(src); err != nil {
		return err
	}

	r.destroyOccupied()
	r.head, r.tail, r.size = src.head, src.tail, src.size
	r.copyOccupied(src)
	r.stats.UpdateSize(int64(r.size))
	r.updateSizeMetric()
	return nil
}

// MoveFrom relocates src's elements into this ring and leaves src empty.
// Capacities must match. Returns ErrInvalidCapacity on mismatch.
func (r *Ring[T]) MoveFrom(src *Ring[T]) error {
	if src == r {
		return nil
	}
	if err := r.checkSameCapacity(src); err != nil {
		return err
	}

	r.destroyOccupied()
	r.head, r.tail, r.size = src.head, src.tail, src.size
	r.moveOccupied(src)
	src.resetEmpty()
	r.stats.UpdateSize(int64(r.size))
	r.updateSizeMetric()
	return nil
}

// Take relocates this ring's elements into a fresh ring and leaves the
// receiver empty. The result starts with fresh statistics and no metrics
// registration.
func (r *Ring[T]) Take() *Ring[T] {
	c := &Ring[T]{
		head:  r.head,
		tail:  r.tail,
		size:  r.size,
		store: storage.New[T](r.store.Len()),
		stats: NewStatistics(),
		opts:  r.opts,
	}
	c.moveOccupied(r)
	r.resetEmpty()
	c.stats.UpdateSize(int64(c.size))
	return c
}

func (r *Ring[T]) checkSameCapacity(src *Ring[T]) error {
	if r.store.Len() != src.store.Len() {
		return api.NewError(api.ErrCodeInvalidCapacity,
			"ring: capacity mismatch").
			WithContext("dst", r.store.Len()).
			WithContext("src", src.store.Len())
	}
	return nil
}

// copyOccupied copies exactly the occupied span from src: the whole array
// when full, head..tail when contiguous, or the head..N-1 and 0..tail halves
// when wrapped. Unoccupied slots are never touched.
func (r *Ring[T]) copyOccupied(src *Ring[T]) {
	n := src.store.Len()
	switch {
	case src.size == 0:
	case src.size == n:
		r.store.CopySpan(src.store, 0, n)
	case src.head <= src.tail:
		r.store.CopySpan(src.store, src.head, src.tail+1)
	default:
		r.store.CopySpan(src.store, src.head, n)
		r.store.CopySpan(src.store, 0, src.tail+1)
	}
}

// moveOccupied relocates the occupied span, destroying the source slots.
func (r *Ring[T]) moveOccupied(src *Ring[T]) {
	n := src.store.Len()
	switch {
	case src.size == 0:
	case src.size == n:
		r.store.MoveSpan(src.store, 0, n)
	case src.head <= src.tail:
		r.store.MoveSpan(src.store, src.head, src.tail+1)
	default:
		r.store.MoveSpan(src.store, src.head, n)
		r.store.MoveSpan(src.store, 0, src.tail+1)
	}
}

// destroyOccupied zeroes every live slot without touching the sentinel.
func (r *Ring[T]) destroyOccupied() {
	n := r.store.Len()
	for i, pos := 0, r.head; i < r.size; i++ {
		r.store.Destroy(pos)
		pos = index.Inc(pos, n)
	}
}

// resetEmpty restores the canonical empty sentinel head == Inc(tail).
func (r *Ring[T]) resetEmpty() {
	r.head = 1 % r.store.Len()
	r.tail = 0
	r.size = 0
	r.stats.UpdateSize(0)
	r.updateSizeMetric()
}

func (r *Ring[T]) updateSizeMetric() {
	if r.metrics != nil {
		r.metrics.updateSize(r.size, r.store.Len())
	}
}

// discard releases a ring abandoned by a failed constructor: its collectors
// are unregistered so the buffer name can be registered again.
func (r *Ring[T]) discard() {
	if r.metrics != nil {
		r.metrics.unregister(r.opts.metricsReg)
		r.metrics = nil
	}
}
