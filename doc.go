// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncx provides low-level concurrency and performance
// primitives for high-throughput systems: schedulers, runtimes,
// allocators, and the queues between them.
//
// The package offers:
//
//   - CachePadded / CacheLinePad: false-sharing-free memory layout
//   - Backoff: exponential spin-then-yield for lock-free retry loops
//   - LightArc / WeakLightArc: atomic strong/weak reference counting
//   - ArrayQueue: bounded lock-free MPMC FIFO queue
//   - VecQueue: unbounded MPMC FIFO queue of chained segments
//   - Instant, NUMA queries, NumberKeyMap: supporting utilities
//
// # Quick Start
//
//	q := syncx.NewArrayQueue[Event](1024) // bounded
//	u := syncx.NewVecQueue[Event]()       // unbounded
//
//	v := Event{}
//	if err := q.Enqueue(&v); errors.Is(err, syncx.ErrFull) {
//	    // Handle backpressure
//	}
//
//	elem, err := q.Dequeue()
//	if errors.Is(err, syncx.ErrEmpty) {
//	    // Try again later
//	}
//
// # Retry Loops
//
// Queue operations never block: they fail immediately with ErrFull or
// ErrEmpty and retry internally only on contention collisions. A caller
// that wants to wait composes its own loop with Backoff:
//
//	backoff := syncx.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if backoff.IsCompleted() {
//	        // Contention outlived the spin budget: switch to a
//	        // blocking fallback instead of burning the core.
//	    }
//	    backoff.Snooze()
//	}
//
// A timeout is layered the same way, by bounding the loop.
//
// # Shared Ownership
//
// LightArc shares one heap value between goroutines with deterministic
// release:
//
//	a := syncx.NewLightArcDrop(conn, func(c *Conn) { c.Close() })
//	b := a.Clone()
//
//	go func() {
//	    defer b.Drop()
//	    serve(b.Get())
//	}()
//
//	w := a.Downgrade() // observe without keeping alive
//	a.Drop()
//
//	if _, err := w.Upgrade(); errors.Is(err, syncx.ErrUpgradeFailed) {
//	    // The connection was already closed.
//	}
//
// # False Sharing
//
// Counters updated by different cores must not share a cache line.
// CachePadded spaces values at least CacheLineSize bytes apart:
//
//	type stats struct {
//	    produced syncx.CachePadded[atomix.Uint64]
//	    consumed syncx.CachePadded[atomix.Uint64]
//	}
//
// # Error Handling
//
// ErrFull and ErrEmpty wrap [code.hybscloud.com/iox]'s ErrWouldBlock:
// they are control flow signals, not failures. ErrUpgradeFailed is
// permanent for its handle. Helpers IsWouldBlock, IsSemantic and
// IsNonFailure delegate to iox for wrapped-error support.
//
// # Thread Safety
//
// ArrayQueue and VecQueue are safe for any number of producer and
// consumer goroutines. LightArc handles may be cloned, downgraded and
// dropped concurrently; each individual handle belongs to one goroutine.
// Backoff, NumberKeyMap and PerNode values carry no internal
// synchronization. Never wrap these types in a lock: the internal
// spin/yield retry discipline assumes lock-free progress and a lock
// around it can deadlock.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established
// through atomic memory orderings on separate variables, so the
// sequence-tag protocols here produce false positives under -race.
// Stress tests incompatible with race detection are excluded via
// //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions, and [golang.org/x/sys] for NUMA topology queries.
package syncx
