// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

// Push reserves the next slot and deposits ref into it. It is wait-free:
// a single fetch-and-add reserves the position, and a release store
// deposits the reference. It never retries and never blocks.
//
// While the queue is comfortably below LowWater (the common case), Push
// takes the fast path and performs no cross-core read beyond the
// fetch-and-add itself — the filling flag lets it skip the admission
// check entirely. Once the producer sequence crosses HighWater, Push
// switches to the draining path, which re-checks admission against the
// consumer's published sequence on every call until the gap falls back
// below LowWater.
//
// Push returns ErrFull, without any side effect, if the draining path's
// admission check refuses the reservation. Push never wakes the consumer;
// use PushAndWake for that.
func (q *Queue[T]) Push(ref *T) error {
	if q.filling.LoadRelaxed() {
		pos := q.tail.AddAcqRel(1) - 1
		idx := indexOf(pos, q.mask)
		q.ring[idx].ref.StoreRelease(ref)
		if pos+1 > highWater(q.capacity) {
			q.filling.StoreRelaxed(false)
		}
		return nil
	}

	tail := q.tail.LoadRelaxed()
	hp := q.hpub.LoadRelaxed()
	if tail-hp > highWater(q.capacity) {
		return ErrFull
	}

	pos := q.tail.AddAcqRel(1) - 1
	idx := indexOf(pos, q.mask)
	q.ring[idx].ref.StoreRelease(ref)

	if pos+1-hp < lowWater(q.capacity) {
		q.filling.StoreRelaxed(true)
	}
	return nil
}

// PushAndWake is Push followed by the park/wake handshake: if the
// consumer has published its intent to sleep, PushAndWake clears that
// intent and wakes it. This is race-free against a concurrently parking
// consumer: PopOrPark stores 1 to the park cell before its final TryPop,
// and PushAndWake loads the cell after its release store, both sequentially
// consistent, so either that TryPop sees the item or PushAndWake sees 1 and
// wakes the consumer.
//
// PushAndWake costs at most one additional sequentially consistent load,
// and — only when the consumer was actually parked — one store and one
// futex wake syscall.
func (q *Queue[T]) PushAndWake(ref *T) error {
	if err := q.Push(ref); err != nil {
		return err
	}
	q.wake()
	return nil
}
