// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"time"
	_ "unsafe" // for go:linkname
)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Instant is a compact monotonic point in time: nanoseconds of the
// runtime monotonic clock packed into 8 bytes.
//
// Unlike time.Time it carries no wall clock, no location, and no
// monotonic/wall duality — it is totally ordered, comparable with ==,
// and cheap to store in bulk (timestamps per queue slot, per connection,
// per retry loop).
type Instant uint64

// InstantNow returns the current monotonic instant.
func InstantNow() Instant {
	return Instant(nanotime())
}

// Elapsed returns the time passed since t.
// Returns zero if t is in the future of the clock (monotonicity bugs).
func (t Instant) Elapsed() time.Duration {
	return InstantNow().Sub(t)
}

// Sub returns the duration from earlier to t, or zero if earlier is
// later than t.
func (t Instant) Sub(earlier Instant) time.Duration {
	if t < earlier {
		return 0
	}
	return time.Duration(t - earlier)
}

// Add returns the instant d after t. Negative d moves backwards and
// saturates at the clock origin.
func (t Instant) Add(d time.Duration) Instant {
	if d < 0 && Instant(-d) > t {
		return 0
	}
	return t + Instant(d)
}

// Before reports whether t precedes other.
func (t Instant) Before(other Instant) bool {
	return t < other
}

// After reports whether t follows other.
func (t Instant) After(other Instant) bool {
	return t > other
}
