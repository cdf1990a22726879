// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64 && !ppc64 && !ppc64le

package syncx

// CacheLineSize is the assumed cache line length in bytes.
// 64 is the common line length on architectures without prefetcher
// pairing or oversized lines.
const CacheLineSize = 64
