// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package park

import (
	"sync"
	"sync/atomic"
)

// Non-Linux hosts have no futex syscall exposed the same way; fall back
// to a single process-wide condition variable keyed on nothing more than
// "some cell changed". This is coarser than the Linux path — a wake on
// one queue's cell can spuriously wake a waiter parked on another queue's
// cell — but WaitIfEqual's contract already requires tolerating spurious
// wakeups, so correctness is preserved; only the "at most one wasted
// wakeup" cost bound is relaxed off Linux.
var (
	fallbackMu   sync.Mutex
	fallbackCond = sync.NewCond(&fallbackMu)
)

func futexWaitIfEqual(addr *uint32, expected uint32) {
	fallbackMu.Lock()
	if atomic.LoadUint32(addr) == expected {
		fallbackCond.Wait()
	}
	fallbackMu.Unlock()
}

func futexWakeOne(addr *uint32) {
	fallbackMu.Lock()
	fallbackCond.Broadcast()
	fallbackMu.Unlock()
}
