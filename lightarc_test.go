// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/syncx"
)

func TestLightArcBasic(t *testing.T) {
	a := syncx.NewLightArc(42)

	if got := *a.Get(); got != 42 {
		t.Fatalf("Get: got %d, want 42", got)
	}
	if got := a.StrongCount(); got != 1 {
		t.Fatalf("StrongCount: got %d, want 1", got)
	}

	*a.Get() = 7
	b := a.Clone()
	if got := *b.Get(); got != 7 {
		t.Fatalf("clone does not share the value: got %d, want 7", got)
	}
	if got := a.StrongCount(); got != 2 {
		t.Fatalf("StrongCount after Clone: got %d, want 2", got)
	}

	b.Drop()
	if got := a.StrongCount(); got != 1 {
		t.Fatalf("StrongCount after Drop: got %d, want 1", got)
	}
	a.Drop()
}

// TestLightArcDropHook verifies the release hook runs exactly once, on
// the last drop, observing the final value.
func TestLightArcDropHook(t *testing.T) {
	released := 0
	observed := 0
	a := syncx.NewLightArcDrop(10, func(v *int) {
		released++
		observed = *v
	})

	clones := make([]syncx.LightArc[int], 4)
	for i := range clones {
		clones[i] = a.Clone()
	}
	*a.Get() = 20

	for i := range clones {
		clones[i].Drop()
		if released != 0 {
			t.Fatal("hook ran while strong handles remain")
		}
	}

	a.Drop()
	if released != 1 {
		t.Fatalf("hook ran %d times, want 1", released)
	}
	if observed != 20 {
		t.Fatalf("hook observed %d, want 20", observed)
	}
}

func TestLightArcDoubleDrop(t *testing.T) {
	a := syncx.NewLightArc(1)
	a.Drop()

	defer func() {
		if recover() == nil {
			t.Fatal("second Drop on the same handle must panic")
		}
	}()
	a.Drop()
}

func TestLightArcUpgrade(t *testing.T) {
	a := syncx.NewLightArc(5)
	w := a.Downgrade()

	if got := a.WeakCount(); got != 2 {
		t.Fatalf("WeakCount after Downgrade: got %d, want 2", got)
	}

	// Alive: upgrade succeeds and owns a strong handle.
	b, err := w.Upgrade()
	if err != nil {
		t.Fatalf("Upgrade while alive: %v", err)
	}
	if got := *b.Get(); got != 5 {
		t.Fatalf("upgraded handle value: got %d, want 5", got)
	}
	if got := a.StrongCount(); got != 2 {
		t.Fatalf("StrongCount after Upgrade: got %d, want 2", got)
	}
	b.Drop()
	a.Drop()

	// Released: upgrade fails permanently.
	if _, err := w.Upgrade(); !errors.Is(err, syncx.ErrUpgradeFailed) {
		t.Fatalf("Upgrade after release: got %v, want ErrUpgradeFailed", err)
	}
	if _, err := w.Upgrade(); !errors.Is(err, syncx.ErrUpgradeFailed) {
		t.Fatalf("repeated Upgrade after release: got %v, want ErrUpgradeFailed", err)
	}
	w.Drop()
}

// TestLightArcConcurrentCloneDrop hammers the counter from many
// goroutines: every clone is dropped exactly once and the hook still
// runs exactly once.
func TestLightArcConcurrentCloneDrop(t *testing.T) {
	if syncx.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const goroutines = 8
	const iterations = 10000

	released := atomix.Int64{}
	a := syncx.NewLightArcDrop(struct{}{}, func(*struct{}) {
		released.Add(1)
	})

	wg := sync.WaitGroup{}
	for range goroutines {
		c := a.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				d := c.Clone()
				d.Drop()
			}
			c.Drop()
		}()
	}
	wg.Wait()

	if got := released.Load(); got != 0 {
		t.Fatalf("hook ran %d times while the root handle is live", got)
	}
	a.Drop()
	if got := released.Load(); got != 1 {
		t.Fatalf("hook ran %d times, want 1", got)
	}
}

// TestLightArcUpgradeRace races weak upgrades against the final drop:
// each attempt must either obtain a fully live handle or fail, never a
// handle to a cleared value.
func TestLightArcUpgradeRace(t *testing.T) {
	if syncx.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const attempts = 1000

	for range attempts {
		a := syncx.NewLightArc(1234)
		w := a.Downgrade()

		done := make(chan struct{})
		go func() {
			defer close(done)
			if b, err := w.Upgrade(); err == nil {
				if got := *b.Get(); got != 1234 {
					t.Errorf("upgraded handle observed cleared value %d", got)
				}
				b.Drop()
			}
		}()

		a.Drop()
		<-done
		w.Drop()
	}
}
