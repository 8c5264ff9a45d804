// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"

	"github.com/ykawada/parkq/internal/park"
)

// slot is one cell of the ring. A nil reference means the slot is empty;
// this is the only synchronization medium for the payload handoff between
// a producer and the consumer. Because positions are scattered across
// physical slots by indexOf's stride (not stored contiguously), no
// per-slot padding is needed to keep adjacent logical positions on
// distinct cache lines.
type slot[T any] struct {
	ref atomix.Pointer[T]
}

// Queue is a bounded, multi-producer/single-consumer queue of references
// to externally owned objects of type T.
//
// Any number of goroutines up to the maxProducers bound passed to New may
// call Push/PushAndWake concurrently. Exactly one goroutine, designated by
// convention as "the consumer", may call TryPop/PopOrPark/Empty/Close; the
// queue does not detect violations of this contract.
type Queue[T any] struct {
	_        cpu.CacheLinePad
	tail     atomix.Uint64 // producer sequence (T)
	_        cpu.CacheLinePad
	hpub     atomix.Uint64 // published consumer sequence (H_pub)
	_        cpu.CacheLinePad
	filling  atomix.Bool // hysteresis flag: true skips the admission check
	_        cpu.CacheLinePad
	parkCell park.Cell
	_        cpu.CacheLinePad
	ring     []slot[T]
	mask     uint64
	capacity uint64

	maxProducers    int
	spinLimit       int
	publishInterval uint64

	// Consumer-private: read and written only by the single consumer
	// goroutine. Never touched by producers.
	head         uint64
	sincePublish uint64
	rebasedAt    uint64
	sleeps       uint64
}

// New creates a Queue with the given capacity (rounded up is not
// performed — capacity must already be a power of two) and a bound on the
// number of concurrent producers.
//
// capacity must satisfy highWater(capacity) < criticalWater(capacity,
// maxProducers); roughly, capacity must exceed 4*maxProducers. New returns
// an error rather than panicking, per this queue's construction-failure
// contract: misconfiguration is the caller's mistake to fix, not a crash.
func New[T any](capacity, maxProducers int, opts ...Option) (*Queue[T], error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("parkq: capacity must be a power of two, got %d", capacity)
	}
	if maxProducers <= 0 {
		return nil, fmt.Errorf("parkq: maxProducers must be >= 1, got %d", maxProducers)
	}

	c := uint64(capacity)
	if uint64(maxProducers) >= c || highWater(c) >= criticalWater(c, maxProducers) {
		return nil, fmt.Errorf(
			"parkq: capacity %d too small for %d producers (need highWater < criticalWater; roughly capacity > 4*maxProducers)",
			capacity, maxProducers,
		)
	}

	cfg := config{
		spinLimit:       defaultSpinLimit,
		publishInterval: defaultPublishInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.publishInterval == 0 {
		return nil, fmt.Errorf("parkq: publish interval must be >= 1")
	}

	q := &Queue[T]{
		ring:            make([]slot[T], capacity),
		mask:            c - 1,
		capacity:        c,
		maxProducers:    maxProducers,
		spinLimit:       cfg.spinLimit,
		publishInterval: cfg.publishInterval,
	}
	// The queue starts empty, comfortably below LowWater: producers begin
	// on the fast path.
	q.filling.StoreRelaxed(true)

	return q, nil
}

// Cap returns the queue's fixed capacity.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// SleepCount returns the number of times PopOrPark has run out of its spin
// budget and entered the park phase. This includes times the final re-check
// found an item and returned without blocking on the futex. It is unsynchronized with the payload path and intended
// for observability only; treat it as approximate when read concurrently
// with PopOrPark.
func (q *Queue[T]) SleepCount() uint64 {
	return q.sleeps
}

// Close drains any references still resident in the ring, in consumer
// order, invoking dispose on each. If dispose is nil, Close is a no-op and
// resident references are left for the garbage collector — the same
// default this queue family has always had.
//
// Close must be called from the consumer goroutine, after all producers
// have stopped pushing; it does not itself prevent concurrent Push calls.
func (q *Queue[T]) Close(dispose func(*T)) {
	if dispose == nil {
		return
	}
	for {
		ref, ok := q.TryPop()
		if !ok {
			return
		}
		dispose(ref)
	}
}
