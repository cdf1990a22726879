// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package syncx_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/syncx"
)

func ExampleArrayQueue() {
	q := syncx.NewArrayQueue[string](4)

	for _, s := range []string{"a", "b", "c"} {
		if err := q.Enqueue(&s); err != nil {
			fmt.Println("enqueue:", err)
		}
	}

	for {
		s, err := q.Dequeue()
		if errors.Is(err, syncx.ErrEmpty) {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// a
	// b
	// c
}

func ExampleVecQueue() {
	q := syncx.NewVecQueueSize[int](2)

	// Pushing past the segment capacity never fails; fresh segments are
	// linked on demand.
	for i := range 5 {
		if err := q.Enqueue(&i); err != nil {
			fmt.Println("enqueue:", err)
		}
	}

	for {
		v, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 0
	// 1
	// 2
	// 3
	// 4
}

func ExampleLightArc() {
	type session struct{ id int }

	a := syncx.NewLightArcDrop(session{id: 1}, func(s *session) {
		fmt.Println("released session", s.id)
	})

	b := a.Clone()
	fmt.Println("strong handles:", a.StrongCount())

	b.Drop()
	a.Drop()

	// Output:
	// strong handles: 2
	// released session 1
}

func ExampleWeakLightArc_Upgrade() {
	a := syncx.NewLightArc("payload")
	w := a.Downgrade()

	if b, err := w.Upgrade(); err == nil {
		fmt.Println("alive:", *b.Get())
		b.Drop()
	}

	a.Drop()

	if _, err := w.Upgrade(); errors.Is(err, syncx.ErrUpgradeFailed) {
		fmt.Println("released")
	}
	w.Drop()

	// Output:
	// alive: payload
	// released
}

func ExampleBackoff() {
	q := syncx.NewArrayQueue[int](2)

	backoff := syncx.Backoff{}
	v := 1
	for q.Enqueue(&v) != nil {
		if backoff.Snooze() {
			// Contention outlasted the backoff: switch to a blocking
			// fallback instead of burning the core.
			break
		}
	}
	fmt.Println("enqueued")

	// Output:
	// enqueued
}
