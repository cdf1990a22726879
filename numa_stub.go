// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package syncx

// currentNumaNode is a stub for platforms without a NUMA topology query.
func currentNumaNode() int {
	return 0
}
