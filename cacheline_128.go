// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64 || ppc64 || ppc64le

package syncx

// CacheLineSize is the assumed cache line length in bytes.
//
// Modern Intel spatial prefetchers pull pairs of 64-byte lines, arm64
// big cores and ppc64 use 128-byte lines, so 128 is the safe padding
// granularity on these architectures.
const CacheLineSize = 128
