// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package park

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// futexWaitIfEqual issues FUTEX_WAIT against addr. The kernel atomically
// checks addr == expected before committing to sleep, which is what
// closes the second half of the sleeping-barber race: if the value has
// already changed, the call returns immediately instead of blocking.
//
// Errors are deliberately ignored. EAGAIN means the value had already
// changed (nothing to wait for); EINTR means a spurious interruption; in
// both cases the caller's loop re-checks its own condition, exactly as
// the futex contract requires tolerating spurious wakeups.
func futexWaitIfEqual(addr *uint32, expected uint32) {
	_, _, _ = unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(unix.FUTEX_WAIT),
		uintptr(expected),
		0, 0, 0,
	)
}

// futexWakeOne issues FUTEX_WAKE for at most one waiter on addr.
func futexWakeOne(addr *uint32) {
	_, _, _ = unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(unix.FUTEX_WAKE),
		1, 0, 0, 0,
	)
}
