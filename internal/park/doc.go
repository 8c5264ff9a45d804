// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package park provides a kernel-backed parking cell: an integer-valued
// synchronization word with wait-if-equal and wake-one semantics, mapped
// onto the host's futex-equivalent facility.
//
// On Linux this is the futex(2) syscall (futex_linux.go). Elsewhere it
// falls back to one process-wide condition variable shared by all cells
// (futex_other.go), at the cost of a single shared lock and of wakeups that
// reach every parked waiter, which then re-check their own condition.
//
// Cell carries no memory ordering of its own beyond sequential
// consistency on Read/Write; callers needing weaker orderings (relaxed
// admission reads, etc.) use their own atomics alongside a Cell, not
// through it.
package park
