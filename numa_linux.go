// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package syncx

import "golang.org/x/sys/unix"

// currentNumaNode queries the kernel for the node of the current CPU.
func currentNumaNode() int {
	_, node, err := unix.Getcpu()
	if err != nil || node < 0 {
		return 0
	}
	return node
}
