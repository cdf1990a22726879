// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// MaxNumaNodes is the largest NUMA node count supported by PerNode.
// Machines with more nodes than this are not supported.
const MaxNumaNodes = 64

// CurrentNumaNode returns the NUMA node the calling goroutine's thread is
// currently running on.
//
// The result is advisory: without thread pinning the scheduler may
// migrate the thread to another node at any point after the query.
// Returns 0 on platforms without NUMA topology information.
func CurrentNumaNode() int {
	return currentNumaNode()
}

// PerNode holds one value per NUMA node, indexed by node ID.
//
// Use it to keep node-local state (an allocation pool per node, a
// VecQueue per node) so that threads mostly touch memory of their own
// node:
//
//	var pools syncx.PerNode[*syncx.VecQueue[*Buffer]]
//
//	q := pools.Get(syncx.CurrentNumaNode())
//
// PerNode itself adds no synchronization; the per-node values carry
// their own, if any.
type PerNode[T any] struct {
	nodes [MaxNumaNodes]T
}

// Get returns a pointer to the value for the given node.
// Panics if node is negative or exceeds MaxNumaNodes.
func (p *PerNode[T]) Get(node int) *T {
	if node < 0 || node >= MaxNumaNodes {
		panic("syncx: NUMA node out of range")
	}
	return &p.nodes[node]
}

// All returns the values of all supported nodes, indexed by node ID.
func (p *PerNode[T]) All() []T {
	return p.nodes[:]
}
