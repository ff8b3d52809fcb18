// File: ring/mutate.go
//
// Double-ended push/pop/emplace and clear. Every operation is O(1) and
// allocation-free. Pushing into a full ring first evicts the opposite-end
// element: its slot is freed, size drops, and the boundary index steps past
// it before the new value lands in the freed slot.

package ring

import "github.com/DarkerSquirrel/circular-buffer/internal/index"

// PushBack appends a value. When full, the front element is evicted first.
func (r *Ring[T]) PushBack(v T) {
	n := r.store.Len()

	var newTail int
	evicted, notify := false, false
	var old T
	if r.size == n {
		newTail = r.head
		if r.opts.dropCallback != nil {
			old, notify = *r.store.Ref(newTail), true
		}
		r.head = index.Inc(r.head, n)
		r.size--
		evicted = true
	} else {
		newTail = index.Inc(r.tail, n)
	}

	r.store.Set(newTail, v)
	r.tail = newTail
	r.size++

	r.recordWrite(evicted)
	if notify {
		r.opts.dropCallback(old)
	}
}

// PushFront prepends a value. When full, the back element is evicted first.
func (r *Ring[T]) PushFront(v T) {
	n := r.store.Len()

	var newHead int
	evicted, notify := false, false
	var old T
	if r.size == n {
		newHead = r.tail
		if r.opts.dropCallback != nil {
			old, notify = *r.store.Ref(newHead), true
		}
		r.tail = index.Dec(r.tail, n)
		r.size--
		evicted = true
	} else {
		newHead = index.Dec(r.head, n)
	}

	r.store.Set(newHead, v)
	r.head = newHead
	r.size++

	r.recordWrite(evicted)
	if notify {
		r.opts.dropCallback(old)
	}
}

// EmplaceBack appends an element constructed in place: the target slot is
// destroyed (when eviction frees it) and init builds the value through the
// slot pointer instead of assignment. Returns the pointer to the new
// element. A nil init leaves the slot zero-valued.
func (r *Ring[T]) EmplaceBack(init func(*T)) *T {
	n := r.store.Len()

	var newTail int
	evicted, notify := false, false
	var old T
	if r.size == n {
		newTail = r.head
		if r.opts.dropCallback != nil {
			old, notify = *r.store.Ref(newTail), true
		}
		r.head = index.Inc(r.head, n)
		r.size--
		r.store.Destroy(newTail)
		evicted = true
	} else {
		newTail = index.Inc(r.tail, n)
	}

	slot := r.store.Ref(newTail)
	if init != nil {
		init(slot)
	}
	r.tail = newTail
	r.size++

	r.recordWrite(evicted)
	if notify {
		r.opts.dropCallback(old)
	}
	return slot
}

// EmplaceFront prepends an element constructed in place. See EmplaceBack.
func (r *Ring[T]) EmplaceFront(init func(*T)) *T {
	n := r.store.Len()

	var newHead int
	evicted, notify := false, false
	var old T
	if r.size == n {
		newHead = r.tail
		if r.opts.dropCallback != nil {
			old, notify = *r.store.Ref(newHead), true
		}
		r.tail = index.Dec(r.tail, n)
		r.size--
		r.store.Destroy(newHead)
		evicted = true
	} else {
		newHead = index.Dec(r.head, n)
	}

	slot := r.store.Ref(newHead)
	if init != nil {
		init(slot)
	}
	r.head = newHead
	r.size++

	r.recordWrite(evicted)
	if notify {
		r.opts.dropCallback(old)
	}
	return slot
}

// PopBack removes and returns the last element; ok is false and the ring is
// untouched when empty.
func (r *Ring[T]) PopBack() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}

	old := r.tail
	r.size--
	r.tail = index.Dec(r.tail, r.store.Len())
	v = r.store.Take(old)

	r.recordRead()
	return v, true
}

// PopFront removes and returns the first element; ok is false and the ring
// is untouched when empty.
func (r *Ring[T]) PopFront() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}

	old := r.head
	r.size--
	r.head = index.Inc(r.head, r.store.Len())
	v = r.store.Take(old)

	r.recordRead()
	return v, true
}

// Clear destroys every live element back-to-front and restores the canonical
// empty sentinel. Afterwards the ring is indistinguishable from a freshly
// constructed one of the same capacity.
func (r *Ring[T]) Clear() {
	n := r.store.Len()
	for r.size != 0 {
		old := r.tail
		r.size--
		r.tail = index.Dec(r.tail, n)
		r.store.Destroy(old)
	}
	r.head = 1 % n
	r.tail = 0

	r.stats.UpdateSize(0)
	r.updateSizeMetric()
}

func (r *Ring[T]) recordWrite(evicted bool) {
	r.stats.Write()
	if evicted {
		r.stats.Overflow()
		r.stats.Drop()
	}
	r.stats.UpdateSize(int64(r.size))

	if r.metrics != nil {
		r.metrics.recordWrite(r.size, r.store.Len())
		if evicted {
			r.metrics.recordOverflow()
			r.metrics.recordDrop()
		}
	}
}

func (r *Ring[T]) recordRead() {
	r.stats.Read()
	r.stats.UpdateSize(int64(r.size))

	if r.metrics != nil {
		r.metrics.recordRead(r.size, r.store.Len())
	}
}
