// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// vacantKey marks an unoccupied NumberKeyMap slot. The key space is
// uint minus this single sentinel value.
const vacantKey = ^uint(0)

// probeLimit bounds the open-addressing probe distance. The map grows
// rather than probe further, which keeps reads near miss-free.
const probeLimit = 8

type numberKeySlot[V any] struct {
	key   uint
	value V
}

// NumberKeyMap is a compact open-addressing map specialized for uint
// keys, tuned for workloads that are 99+% reads.
//
// Slots are probed directly from key & mask for at most probeLimit
// steps; when an insert cannot find a free slot within that distance the
// map grows instead, so successful lookups almost always hit their first
// slot. The key ^uint(0) is reserved as the vacancy marker.
//
// NumberKeyMap provides no internal synchronization. Guard it externally
// (e.g. an RWMutex with the read path taken for Get) when shared across
// goroutines.
type NumberKeyMap[V any] struct {
	slots []numberKeySlot[V]
	mask  uint
	len   int
}

// NewNumberKeyMap creates a map with capacity for at least capacity
// entries. Capacity rounds up to the next power of 2.
func NewNumberKeyMap[V any](capacity int) *NumberKeyMap[V] {
	if capacity < 1 {
		capacity = 1
	}

	n := uint(roundToPow2(capacity))
	m := &NumberKeyMap[V]{
		slots: make([]numberKeySlot[V], n),
		mask:  n - 1,
	}
	for i := range m.slots {
		m.slots[i].key = vacantKey
	}

	return m
}

// Len returns the number of entries in the map.
func (m *NumberKeyMap[V]) Len() int {
	return m.len
}

// Cap returns the current slot count.
func (m *NumberKeyMap[V]) Cap() int {
	return len(m.slots)
}

// GetRef returns a pointer to the value stored for key, or nil if the
// key is absent. The pointer is invalidated by the next Insert (the map
// may grow and move slots).
func (m *NumberKeyMap[V]) GetRef(key uint) *V {
	idx := key & m.mask
	for i := uint(0); i < probeLimit; i++ {
		slot := &m.slots[(idx+i)&m.mask]
		if slot.key == key {
			return &slot.value
		}
	}

	return nil
}

// Get returns the value stored for key and whether it was present.
func (m *NumberKeyMap[V]) Get(key uint) (V, bool) {
	if ref := m.GetRef(key); ref != nil {
		return *ref, true
	}

	var zero V
	return zero, false
}

// Insert stores value for key. Returns false without modifying the map
// if the key is already present. The map grows as needed; only the
// vacancy sentinel ^uint(0) is rejected (panic).
func (m *NumberKeyMap[V]) Insert(key uint, value V) bool {
	if key == vacantKey {
		panic("syncx: NumberKeyMap key ^uint(0) is reserved")
	}

	for {
		if done, ok := m.tryInsert(key, value); done {
			if ok {
				m.len++
			}
			return ok
		}
		m.grow()
	}
}

// tryInsert attempts an insert within the probe bound.
// done is false when no free slot exists in the probed region.
func (m *NumberKeyMap[V]) tryInsert(key uint, value V) (done, ok bool) {
	idx := key & m.mask
	var free *numberKeySlot[V]
	for i := uint(0); i < probeLimit; i++ {
		slot := &m.slots[(idx+i)&m.mask]
		if slot.key == key {
			return true, false
		}
		if free == nil && slot.key == vacantKey {
			free = slot
		}
	}

	if free == nil {
		return false, false
	}

	free.key = key
	free.value = value
	return true, true
}

// Remove deletes key and returns its value and whether it was present.
func (m *NumberKeyMap[V]) Remove(key uint) (V, bool) {
	idx := key & m.mask
	for i := uint(0); i < probeLimit; i++ {
		slot := &m.slots[(idx+i)&m.mask]
		if slot.key == key {
			value := slot.value
			var zero V
			slot.value = zero
			slot.key = vacantKey
			m.len--
			return value, true
		}
	}

	var zero V
	return zero, false
}

// Range calls f for each entry until f returns false. Insert and Remove
// must not be called from f.
func (m *NumberKeyMap[V]) Range(f func(key uint, value *V) bool) {
	for i := range m.slots {
		slot := &m.slots[i]
		if slot.key == vacantKey {
			continue
		}
		if !f(slot.key, &slot.value) {
			return
		}
	}
}

// grow doubles the slot array until every existing entry fits inside its
// probe bound in the new layout.
func (m *NumberKeyMap[V]) grow() {
	oldSlots := m.slots

	n := uint(len(oldSlots))
retry:
	n *= 2
	m.slots = make([]numberKeySlot[V], n)
	m.mask = n - 1
	for i := range m.slots {
		m.slots[i].key = vacantKey
	}

	for i := range oldSlots {
		slot := &oldSlots[i]
		if slot.key == vacantKey {
			continue
		}
		if done, _ := m.tryInsert(slot.key, slot.value); !done {
			goto retry
		}
	}
}
