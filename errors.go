// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates a bounded queue has no free slot.
//
// ErrFull is a control flow signal, not a failure. The producer should
// retry later (with backoff), drop the element, or switch to a blocking
// fallback. It wraps [iox.ErrWouldBlock] for ecosystem consistency, so
// both errors.Is(err, ErrFull) and IsWouldBlock(err) report it.
var ErrFull = fmt.Errorf("syncx: queue full: %w", iox.ErrWouldBlock)

// ErrEmpty indicates a queue has no element available.
//
// ErrEmpty is a control flow signal, not a failure. The consumer should
// retry later (with backoff) or park on another mechanism. It wraps
// [iox.ErrWouldBlock] for ecosystem consistency.
var ErrEmpty = fmt.Errorf("syncx: queue empty: %w", iox.ErrWouldBlock)

// ErrUpgradeFailed indicates a WeakLightArc outlived the value: the last
// strong reference was dropped, so the weak handle can no longer be
// upgraded.
//
// Unlike ErrFull and ErrEmpty this condition is permanent for the given
// handle; retrying cannot succeed.
var ErrUpgradeFailed = errors.New("syncx: value already released")

// IsWouldBlock reports whether err indicates the operation would block
// (queue full or empty). Delegates to [iox.IsWouldBlock] for wrapped
// error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
