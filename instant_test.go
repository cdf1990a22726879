// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"testing"
	"time"

	"code.hybscloud.com/syncx"
)

func TestInstantMonotonic(t *testing.T) {
	a := syncx.InstantNow()
	time.Sleep(time.Millisecond)
	b := syncx.InstantNow()

	if !b.After(a) {
		t.Fatal("clock did not advance across a sleep")
	}
	if d := b.Sub(a); d <= 0 {
		t.Fatalf("Sub: got %v, want > 0", d)
	}
	if d := a.Elapsed(); d <= 0 {
		t.Fatalf("Elapsed: got %v, want > 0", d)
	}
}

func TestInstantSubSaturates(t *testing.T) {
	a := syncx.InstantNow()
	b := a.Add(time.Second)

	if d := a.Sub(b); d != 0 {
		t.Fatalf("Sub of a later instant: got %v, want 0", d)
	}
	if d := b.Sub(a); d != time.Second {
		t.Fatalf("Sub: got %v, want 1s", d)
	}
}

func TestInstantAdd(t *testing.T) {
	a := syncx.Instant(1000)

	if got := a.Add(time.Microsecond); got != syncx.Instant(2000) {
		t.Fatalf("Add: got %d, want 2000", got)
	}
	if got := a.Add(-500 * time.Nanosecond); got != syncx.Instant(500) {
		t.Fatalf("Add negative: got %d, want 500", got)
	}
	// Moving past the clock origin saturates at zero.
	if got := a.Add(-time.Second); got != 0 {
		t.Fatalf("Add past origin: got %d, want 0", got)
	}
}

func TestInstantOrdering(t *testing.T) {
	a := syncx.Instant(10)
	b := syncx.Instant(20)

	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Fatal("After is inconsistent")
	}
	if a.Before(a) || a.After(a) {
		t.Fatal("an instant neither precedes nor follows itself")
	}
}
