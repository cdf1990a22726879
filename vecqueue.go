// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// defaultSegmentCap is the slot count of one VecQueue segment. Small
// enough that an idle queue costs little, large enough that segment
// hand-off (one allocation plus two pointer CASes) is rare.
const defaultSegmentCap = 32

// Slot states of a VecQueue segment. A slot starts empty, becomes full
// when a producer commits its write, and is marked read after a consumer
// takes the element. Segments are single-use, so states never cycle back.
const (
	vecSlotEmpty uint64 = iota
	vecSlotFull
	vecSlotRead
)

// vecSegment is one fixed-capacity block in the chain.
//
// Cursors are claimed with fetch-and-add and never wrap: a segment whose
// producer cursor passed the capacity is full forever and a segment whose
// consumer cursor passed it is drained forever. Retirement therefore
// needs no re-seal handshake — the head pointer simply moves past it.
type vecSegment[T any] struct {
	_       CacheLinePad
	pushIdx atomix.Uint64 // Producer claims (may overshoot capacity)
	_       CacheLinePad
	popIdx  atomix.Uint64 // Consumer claims
	_       CacheLinePad
	next    atomic.Pointer[vecSegment[T]]
	slots   []vecSlot[T]
}

type vecSlot[T any] struct {
	state atomix.Uint64
	data  T
}

// VecQueue is an unbounded multi-producer multi-consumer FIFO queue built
// as a linked chain of fixed-capacity segments.
//
// Each segment behaves like a bounded lock-free queue; when the tail
// segment fills up a producer links a fresh segment and retries there, so
// Enqueue never reports ErrFull — memory is the only capacity bound.
// Dequeue drains segments in order and advances past a segment once it is
// fully consumed, preserving global FIFO order across segment boundaries.
//
// Memory: one live segment minimum; drained segments are unlinked and
// reclaimed by the garbage collector.
type VecQueue[T any] struct {
	_      CacheLinePad
	tail   atomic.Pointer[vecSegment[T]]
	_      CacheLinePad
	head   atomic.Pointer[vecSegment[T]]
	_      CacheLinePad
	segCap uint64
}

// NewVecQueue creates an empty queue with the default segment capacity.
func NewVecQueue[T any]() *VecQueue[T] {
	return NewVecQueueSize[T](defaultSegmentCap)
}

// NewVecQueueSize creates an empty queue with the given segment capacity.
// The capacity rounds up to the next power of 2. Panics if it is < 1.
func NewVecQueueSize[T any](segCapacity int) *VecQueue[T] {
	if segCapacity < 1 {
		panic("syncx: segment capacity must be >= 1")
	}

	q := &VecQueue[T]{segCap: uint64(roundToPow2(segCapacity))}
	seg := q.newSegment()
	q.tail.Store(seg)
	q.head.Store(seg)

	return q
}

func (q *VecQueue[T]) newSegment() *vecSegment[T] {
	return &vecSegment[T]{slots: make([]vecSlot[T], q.segCap)}
}

// Enqueue adds an element to the queue. It never reports a full queue;
// when the tail segment is exhausted a new segment is linked and the push
// retries there.
func (q *VecQueue[T]) Enqueue(elem *T) error {
	backoff := Backoff{}
	for {
		seg := q.tail.Load()

		i := seg.pushIdx.AddAcqRel(1) - 1
		if i < q.segCap {
			slot := &seg.slots[i]
			slot.data = *elem
			slot.state.StoreRelease(vecSlotFull)
			return nil
		}

		// Tail segment exhausted: link a successor (first producer to
		// observe exhaustion wins the CAS, losers adopt its segment),
		// then help advance the tail pointer and retry there.
		next := seg.next.Load()
		if next == nil {
			fresh := q.newSegment()
			if seg.next.CompareAndSwap(nil, fresh) {
				next = fresh
			} else {
				next = seg.next.Load()
			}
		}
		q.tail.CompareAndSwap(seg, next)

		backoff.Spin()
	}
}

// Dequeue removes and returns the oldest element.
// Returns (zero value, ErrEmpty) if no element is available; retries with
// backoff only on consumer collisions and in-flight producer writes.
func (q *VecQueue[T]) Dequeue() (T, error) {
	backoff := Backoff{}
	for {
		seg := q.head.Load()

		h := seg.popIdx.LoadAcquire()
		if h >= q.segCap {
			// Segment fully drained: advance to the successor if one
			// exists, otherwise the queue is empty.
			next := seg.next.Load()
			if next == nil {
				var zero T
				return zero, ErrEmpty
			}
			q.head.CompareAndSwap(seg, next)
			continue
		}

		slot := &seg.slots[h]
		if slot.state.LoadAcquire() == vecSlotEmpty {
			if h >= seg.pushIdx.LoadAcquire() {
				// No producer has claimed this slot: the queue holds no
				// element beyond the consumed prefix.
				var zero T
				return zero, ErrEmpty
			}
			// Claimed but not yet committed: the writer is in flight.
			backoff.Spin()
			continue
		}

		if seg.popIdx.CompareAndSwapAcqRel(h, h+1) {
			elem := slot.data
			var zero T
			slot.data = zero
			slot.state.StoreRelease(vecSlotRead)
			return elem, nil
		}

		backoff.Spin()
	}
}

// SegmentCap returns the effective per-segment capacity.
func (q *VecQueue[T]) SegmentCap() int {
	return int(q.segCap)
}
