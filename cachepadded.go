// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// CacheLinePad occupies one full cache line.
//
// Place it between groups of hot fields to keep independently updated
// data on separate cache lines. Updating an atomic value invalidates the
// whole line it lives on, so two counters sharing a line ping-pong the
// line between cores even though they are logically unrelated.
type CacheLinePad struct{ _ [CacheLineSize]byte }

// CachePadded wraps a value so that it does not share a cache line with
// neighbouring data.
//
// A full pad precedes and follows the value, so any two CachePadded
// instances placed next to each other (in an array, a slice, or adjacent
// struct fields) keep their values at least CacheLineSize bytes apart.
// Go provides no per-type alignment control, so the guarantee is this
// distance, not an aligned start address.
//
// CachePadded adds no synchronization of its own; wrap an atomic type
// when concurrent access is required:
//
//	type counters struct {
//	    hits   syncx.CachePadded[atomix.Int64]
//	    misses syncx.CachePadded[atomix.Int64]
//	}
type CachePadded[T any] struct {
	_ CacheLinePad
	// Value is the wrapped value. Synchronization, if any, belongs to T.
	Value T
	_ CacheLinePad
}

// NewCachePadded returns a CachePadded wrapping value.
func NewCachePadded[T any](value T) *CachePadded[T] {
	return &CachePadded[T]{Value: value}
}
