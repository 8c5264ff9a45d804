// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

import "code.hybscloud.com/spin"

// TryPop removes and returns the next reference, if one is available.
// TryPop must be called only from the consumer goroutine.
//
// The acquire load pairs with the producer's release store (see Push),
// establishing happens-before for everything the producer wrote, through
// ref, before pushing it.
func (q *Queue[T]) TryPop() (*T, bool) {
	idx := indexOf(q.head, q.mask)
	s := &q.ring[idx]

	ref := s.ref.LoadAcquire()
	if ref == nil {
		return nil, false
	}
	s.ref.StoreRelaxed(nil)
	q.head++

	q.sincePublish++
	if q.sincePublish >= q.publishInterval {
		q.publish()
		q.sincePublish = 0
	}

	return ref, true
}

// Empty reports whether the slot at the consumer's current position is
// empty. This is advisory: a producer may make the queue non-empty
// immediately after Empty returns true. It is precise enough to gate a
// spin/park decision, which is its only intended use.
func (q *Queue[T]) Empty() bool {
	idx := indexOf(q.head, q.mask)
	return q.ring[idx].ref.LoadAcquire() == nil
}

// publish copies the consumer's position to hpub so producers can see
// progress, and — every time the consumer has advanced a full revolution
// since the last rebase — subtracts capacity from the producer sequence,
// the consumer's own position, and hpub together, to keep all three from
// approaching integer overflow.
//
// The rebase is index-preserving: indexOf(i) == indexOf(i - capacity)
// because capacity is a power of two and stride is odd, so shifting the
// shared coordinate space down by a multiple of capacity never changes
// which physical slot any in-flight sequence number maps to.
func (q *Queue[T]) publish() {
	h := q.head
	if h-q.rebasedAt >= q.capacity {
		delta := q.capacity
		for {
			old := q.tail.LoadRelaxed()
			if q.tail.CompareAndSwapRelaxed(old, old-delta) {
				break
			}
		}
		h -= delta
		q.head = h
		q.rebasedAt = h
	}
	q.hpub.StoreRelaxed(h)
}

// wake implements the producer side of the park/wake handshake: a
// sequentially consistent load of the park cell, and — only if it reads
// 1 — a sequentially consistent store of 0 followed by a single futex
// wake. If two producers race here, both observing 1, both stores and
// both wakes are idempotent: there is exactly one consumer to wake, so
// the redundant wake call is wasted work, not a correctness problem.
func (q *Queue[T]) wake() {
	if q.parkCell.Read() == 1 {
		q.parkCell.Write(0)
		q.parkCell.WakeOne()
	}
}

// PopOrPark blocks until a reference is available and returns it.
// PopOrPark must be called only from the consumer goroutine.
//
// It first spins up to spinLimit times (configured via WithSpinLimit),
// pausing the pipeline between attempts via spin.Wait. If nothing arrives
// during the spin phase, it publishes its intent to park, re-checks once
// more (closing the first half of the sleeping-barber race — see
// PushAndWake), and then parks on the futex. Spurious wakeups are
// tolerated: the loop simply re-evaluates.
func (q *Queue[T]) PopOrPark() *T {
	sw := spin.Wait{}
	for {
		for i := 0; i < q.spinLimit; i++ {
			if ref, ok := q.TryPop(); ok {
				return ref
			}
			sw.Once()
		}

		q.sleeps++
		q.parkCell.Write(1)
		if ref, ok := q.TryPop(); ok {
			q.parkCell.Write(0)
			return ref
		}
		q.parkCell.WaitIfEqual(1)
		q.parkCell.Write(0)
	}
}
