package pool

// Slot is a companion that can be refilled from another companion of the same
// type, e.g. *ReusableQuote.
type Slot[R any] interface {
	Clearer
	CopyFrom(source R)
}

// Ring is a fixed set of preallocated slots. Publish overwrites the oldest
// slot in place, so steady-state publishing does not allocate.
// A Ring is not safe for concurrent use.
type Ring[R Slot[R]] struct {
	slots []R
	next  int
	count int
}

// NewRing preallocates size slots with newFunc. size must be positive.
func NewRing[R Slot[R]](size int, newFunc func() R) *Ring[R] {
	if size <= 0 {
		panic("pool: ring size must be positive")
	}
	slots := make([]R, size)
	for i := range slots {
		slots[i] = newFunc()
	}
	return &Ring[R]{slots: slots}
}

// Publish copies src into the next slot and returns that slot.
func (r *Ring[R]) Publish(src R) R {
	slot := r.slots[r.next]
	slot.Clear()
	slot.CopyFrom(src)

	r.next = (r.next + 1) % len(r.slots)
	if r.count < len(r.slots) {
		r.count++
	}
	return slot
}

// At returns the i-th oldest published slot, 0 ≤ i < Len().
func (r *Ring[R]) At(i int) R {
	if i < 0 || i >= r.count {
		panic("pool: ring index out of range")
	}
	start := (r.next - r.count + len(r.slots)) % len(r.slots)
	return r.slots[(start+i)%len(r.slots)]
}

func (r *Ring[R]) Len() int { return r.count }

func (r *Ring[R]) Cap() int { return len(r.slots) }

// Reset clears every slot and empties the ring.
func (r *Ring[R]) Reset() {
	for _, s := range r.slots {
		s.Clear()
	}
	r.next, r.count = 0, 0
}
