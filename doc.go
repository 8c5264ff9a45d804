// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parkq provides a bounded, multi-producer/single-consumer queue of
// object references with a futex-backed park/wake protocol.
//
// # Quick Start
//
//	q, err := parkq.New[Event](1024, 8) // capacity 1024, up to 8 producers
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// producers (any number up to the bound passed to New)
//	go func() {
//	    ev := &Event{}
//	    if err := q.PushAndWake(ev); err != nil {
//	        // back-pressure: retry, drop, or apply backoff.
//	    }
//	}()
//
//	// the single consumer
//	for {
//	    ev := q.PopOrPark()
//	    handle(ev)
//	}
//
// # Fast path
//
// Push is wait-free: a single fetch-and-add reserves a position and a release
// store deposits the reference. PushAndWake adds a bounded-cost check that
// decides whether to wake the consumer. No producer ever blocks; a full queue
// is reported via ErrFull.
//
// PopOrPark is the only operation that may suspend the calling goroutine,
// and only when the queue has been observed empty for SpinLimit iterations.
// It is driven entirely by the single consumer goroutine designated at
// construction; calling it (or TryPop) from more than one goroutine
// concurrently is undefined behavior — parkq does not detect this.
//
// # Ordering
//
// Two pushes from the same producer are observed by the consumer in program
// order. There is no ordering guarantee across different producers: items
// from distinct producers may interleave arbitrarily. parkq never
// duplicates or drops an accepted reference.
//
// # Back-pressure
//
// Push refuses with ErrFull once the live window between the producer and
// consumer sequence numbers grows past a threshold sized to the configured
// producer bound, so that no in-flight reservation can ever lap the
// consumer. This is not a hard queue-full signal in the naive sense — see
// the thresholds documented in capacity.go for the exact hysteresis band.
//
// # Graceful shutdown
//
// Close optionally drains and disposes of any references left resident in
// the ring. Without a dispose callback, resident references are left for
// the garbage collector exactly as the rest of this queue family does.
//
// # Race detection
//
// Go's race detector tracks explicit synchronization (mutexes, channels,
// WaitGroups) but not the happens-before relationships this queue
// establishes purely through acquire/release atomics on independent
// variables. The test suite skips the concurrency tests that would produce
// false positives under -race, gated by a package-internal build-tagged
// constant (race_test.go / race_off_test.go).
package parkq
