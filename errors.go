// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

import "code.hybscloud.com/iox"

// ErrFull indicates Push could not complete because the live window
// between the producer and consumer sequence numbers has reached the
// admission threshold.
//
// ErrFull is a control-flow signal, not a failure. The caller should
// retry, drop the reference, or apply its own backpressure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrFull = iox.ErrWouldBlock

// IsFull reports whether err indicates Push-side back-pressure.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsFull(err error) bool {
	return iox.IsWouldBlock(err)
}
