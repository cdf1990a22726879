// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// spinLimit is the escalation step past which Snooze stops busy-spinning
// and yields to the scheduler. Contention that resolves within a few
// hundred pause instructions stays on-CPU; anything longer gives up its
// timeslice instead of burning a core.
const spinLimit = 6

// Backoff performs exponential backoff in spin loops.
//
// Backing off in lock-free retry loops reduces contention: each step
// waits roughly twice as long as the previous one, first with CPU pause
// instructions and, for Snooze, eventually by yielding the goroutine to
// the scheduler.
//
// The zero value is ready to use. Backoff is not safe for concurrent use;
// each goroutine keeps its own, typically one per retry loop:
//
//	backoff := syncx.Backoff{}
//	for {
//	    if err := q.Enqueue(&v); err == nil {
//	        break
//	    }
//	    if backoff.IsCompleted() {
//	        // Switch to a blocking fallback.
//	    }
//	    backoff.Snooze()
//	}
type Backoff struct {
	step uint32
}

// Step returns how many times the backoff advanced since creation or the
// last Reset.
func (b *Backoff) Step() uint32 {
	return b.step
}

// Reset returns the backoff to the initial spinning regime. Call it after
// making forward progress so the next contention episode starts fresh.
func (b *Backoff) Reset() {
	b.step = 0
}

// Spin backs off in a lock-free loop.
//
// Use it when retrying because another goroutine made progress (a lost
// compare-and-swap). It executes an escalating number of CPU pause
// instructions and never yields to the scheduler.
func (b *Backoff) Spin() {
	sw := spin.Wait{}
	for range 1 << min(b.step, spinLimit) {
		sw.Once()
	}
	b.step++
}

// SpinOr spins below the escalation threshold and calls f past it.
// Snooze is SpinOr with the scheduler yield as f.
func (b *Backoff) SpinOr(f func()) {
	if b.step < spinLimit {
		sw := spin.Wait{}
		for range 1 << b.step {
			sw.Once()
		}
	} else {
		f()
	}
	b.step++
}

// Snooze backs off while waiting for another goroutine to make progress.
//
// Below the threshold it behaves like Spin; past it the goroutine yields
// its timeslice via the scheduler instead of spinning. The return value
// reports whether the backoff has crossed into the yielding regime, so
// callers can abandon the lock-free path for a blocking fallback.
func (b *Backoff) Snooze() bool {
	b.SpinOr(runtime.Gosched)
	return b.IsCompleted()
}

// IsCompleted reports whether exponential backoff has completed and
// blocking on a different synchronization mechanism is advised.
func (b *Backoff) IsCompleted() bool {
	return b.step >= spinLimit
}
