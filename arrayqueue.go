// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"code.hybscloud.com/atomix"
)

// ArrayQueue is a fixed-capacity lock-free multi-producer multi-consumer
// FIFO queue over a circular slot array.
//
// Each slot carries a sequence tag validated against the claiming cursor,
// which cycles the slot through empty → writing → full → reading and back
// with full ABA safety: a producer or consumer acts on a slot only in the
// state it expects and retries (with Backoff) when another party's write
// is still in flight. A full queue fails Enqueue immediately with ErrFull
// and an empty queue fails Dequeue with ErrEmpty — retries are bounded by
// actual contention, never by queue state.
//
// Memory: n slots for capacity n (16+ bytes per slot).
type ArrayQueue[T any] struct {
	_        CacheLinePad
	tail     atomix.Uint64 // Producer cursor
	_        CacheLinePad
	head     atomix.Uint64 // Consumer cursor
	_        CacheLinePad
	buffer   []arraySlot[T]
	mask     uint64
	capacity uint64
}

type arraySlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    [CacheLineSize - 8]byte // Pad to cache line
}

// NewArrayQueue creates a queue with the given fixed capacity.
// Capacity rounds up to the next power of 2. Panics if capacity < 1.
func NewArrayQueue[T any](capacity int) *ArrayQueue[T] {
	if capacity < 1 {
		panic("syncx: capacity must be >= 1")
	}

	n := uint64(roundToPow2(capacity))
	q := &ArrayQueue[T]{
		buffer:   make([]arraySlot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	// seq == index marks every slot empty for cycle 0.
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// Enqueue adds an element to the queue.
// Returns ErrFull immediately if the queue is full; retries only on a
// concurrent-producer collision.
func (q *ArrayQueue[T]) Enqueue(elem *T) error {
	backoff := Backoff{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			// Slot is empty for this cycle: claim it.
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.data = *elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			// Slot still holds the previous cycle's element.
			return ErrFull
		}

		backoff.Spin()
	}
}

// Dequeue removes and returns the oldest element.
// Returns (zero value, ErrEmpty) immediately if the queue is empty;
// retries only on a concurrent-consumer collision or an in-flight write.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	backoff := Backoff{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			// Slot is full for this cycle: claim it.
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrEmpty
		}

		backoff.Spin()
	}
}

// Cap returns the effective queue capacity.
func (q *ArrayQueue[T]) Cap() int {
	return int(q.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
