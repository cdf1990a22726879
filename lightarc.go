// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"code.hybscloud.com/atomix"
)

// maxRefCount aborts the process before a reference count can wrap.
// Reaching it requires 2^62 live handles and is practically unreachable.
const maxRefCount = 1 << 62

// lightArcInner is the shared block behind all handles to one value.
//
// The strong and weak counters are cache-line padded so that clone/drop
// traffic on one does not invalidate the other, and neither invalidates
// the line(s) holding the value.
type lightArcInner[T any] struct {
	strong CachePadded[atomix.Int64]
	weak   CachePadded[atomix.Int64]
	drop   func(*T)
	value  T
}

// LightArc is a lightweight atomically reference-counted handle to a
// shared value.
//
// Handles are explicit: Clone creates a new owning handle, Drop releases
// one. The value stays valid exactly while at least one strong handle is
// live. When the last strong handle is dropped the release hook (if any)
// runs exactly once and the stored value is cleared, after which weak
// handles observe absence and fail to upgrade. Reclamation of the shared
// block itself is left to the garbage collector once every handle lets go
// of it.
//
// Concurrent reads through live strong handles are safe; mutating the
// value requires caller-provided synchronization. Copying a LightArc with
// plain assignment does not change the reference count — use Clone for a
// new owning handle.
//
// Example:
//
//	a := syncx.NewLightArc(42)
//	b := a.Clone()
//
//	go func() {
//	    defer b.Drop()
//	    use(*b.Get())
//	}()
//
//	a.Drop()
type LightArc[T any] struct {
	inner *lightArcInner[T]
}

// WeakLightArc is a non-owning handle that tracks a LightArc value
// without keeping it alive. Upgrade attempts to recover a strong handle
// and fails once the value has been released.
type WeakLightArc[T any] struct {
	inner *lightArcInner[T]
}

// NewLightArc allocates a shared block holding value and returns the
// first strong handle (strong count 1).
func NewLightArc[T any](value T) LightArc[T] {
	return NewLightArcDrop(value, nil)
}

// NewLightArcDrop is NewLightArc with a release hook.
//
// The hook runs exactly once, on the goroutine that drops the last
// strong handle, before the stored value is cleared. All writes made
// through other handles happen before the hook observes the value.
func NewLightArcDrop[T any](value T, drop func(*T)) LightArc[T] {
	inner := &lightArcInner[T]{drop: drop, value: value}
	inner.strong.Value.StoreRelaxed(1)
	// The strong set as a whole holds one implicit weak reference; it is
	// released when the strong count hits zero.
	inner.weak.Value.StoreRelaxed(1)

	return LightArc[T]{inner: inner}
}

// Get returns a pointer to the shared value.
//
// The pointer is valid only while the handle is live: reading through it
// after Drop races with the value being cleared.
func (a LightArc[T]) Get() *T {
	return &a.inner.value
}

// Clone returns a new strong handle sharing the value.
//
// The count increment needs no ordering: the counter carries no data
// dependency, and the cloning goroutine already holds a live handle.
func (a LightArc[T]) Clone() LightArc[T] {
	if a.inner.strong.Value.AddAcqRel(1) > maxRefCount {
		panic("syncx: LightArc strong count overflow")
	}

	return LightArc[T]{inner: a.inner}
}

// Drop releases this strong handle.
//
// The handle that brings the strong count to zero runs the release hook
// and clears the value. The AcqRel decrement makes every preceding write
// through other handles visible to the releasing goroutine before the
// hook runs. The handle is dead afterwards; dropping it again panics.
func (a *LightArc[T]) Drop() {
	inner := a.inner
	if inner == nil {
		panic("syncx: Drop of dead LightArc handle")
	}
	a.inner = nil

	if inner.strong.Value.AddAcqRel(-1) != 0 {
		return
	}

	if inner.drop != nil {
		inner.drop(&inner.value)
	}
	var zero T
	inner.value = zero

	// Release the implicit weak held by the strong set. The block itself
	// becomes collectible once the last weak handle lets go.
	inner.weak.Value.AddAcqRel(-1)
}

// Downgrade returns a non-owning handle tracking the value's existence.
func (a LightArc[T]) Downgrade() WeakLightArc[T] {
	if a.inner.weak.Value.AddAcqRel(1) > maxRefCount {
		panic("syncx: LightArc weak count overflow")
	}

	return WeakLightArc[T]{inner: a.inner}
}

// StrongCount returns the current strong reference count. The value is a
// snapshot; under concurrent clones and drops it is already stale when
// returned.
func (a LightArc[T]) StrongCount() int64 {
	return a.inner.strong.Value.LoadAcquire()
}

// WeakCount returns the current weak reference count, including the
// implicit weak held by the strong set while it is nonempty.
func (a LightArc[T]) WeakCount() int64 {
	return a.inner.weak.Value.LoadAcquire()
}

// Upgrade attempts to recover a strong handle from a weak one.
//
// It increments the strong count only if it is still nonzero, retrying
// with backoff when another goroutine moves the counter concurrently.
// Returns ErrUpgradeFailed once the value has been released; it never
// returns a handle to a cleared value.
func (w WeakLightArc[T]) Upgrade() (LightArc[T], error) {
	inner := w.inner
	backoff := Backoff{}
	for {
		n := inner.strong.Value.LoadAcquire()
		if n == 0 {
			return LightArc[T]{}, ErrUpgradeFailed
		}

		if inner.strong.Value.CompareAndSwapAcqRel(n, n+1) {
			return LightArc[T]{inner: inner}, nil
		}

		backoff.Spin()
	}
}

// Drop releases this weak handle. The handle is dead afterwards;
// dropping it again panics.
func (w *WeakLightArc[T]) Drop() {
	inner := w.inner
	if inner == nil {
		panic("syncx: Drop of dead WeakLightArc handle")
	}
	w.inner = nil

	inner.weak.Value.AddAcqRel(-1)
}
