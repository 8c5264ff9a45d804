// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package park

import "sync/atomic"

// Cell is a single parkable synchronization word.
//
// Value 0 means awake/indifferent; 1 means the consumer intends to sleep
// or is sleeping. Producers transition 1->0 and wake at most one waiter.
//
// The zero value is a ready-to-use Cell in state 0.
//
// Cell's state is a bare uint32, not a wrapped atomic type: the Linux
// backend hands its address directly to the futex(2) syscall, which
// requires the raw address of a plain 32-bit word in memory. Go's atomic
// wrapper types (and code.hybscloud.com/atomix's) do not expose the
// address of their underlying word, so this is the one place in this
// module that reaches for sync/atomic directly instead of atomix — a
// kernel ABI constraint, not a library gap.
type Cell struct {
	state uint32
}

// Read loads the cell's value with sequentially consistent ordering, as
// required on both sides of the park/wake handshake (see the package doc
// on the caller side, parkq's pop.go and push.go).
func (c *Cell) Read() uint32 {
	return atomic.LoadUint32(&c.state)
}

// Write stores v into the cell with sequentially consistent ordering.
func (c *Cell) Write(v uint32) {
	atomic.StoreUint32(&c.state, v)
}

// WaitIfEqual blocks the calling goroutine if the cell's value equals
// expected. It returns immediately if the value already differs; otherwise
// it returns once WakeOne is called, or spuriously. A Write alone does not
// wake a blocked waiter. Callers must re-check their own condition after
// it returns rather than trust the return alone.
func (c *Cell) WaitIfEqual(expected uint32) {
	futexWaitIfEqual(&c.state, expected)
}

// WakeOne wakes at most one goroutine parked in WaitIfEqual on this cell on
// Linux. The fallback on other hosts wakes every goroutine parked in
// WaitIfEqual on any cell.
func (c *Cell) WakeOne() {
	futexWakeOne(&c.state)
}
