// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package parkq_test

// raceEnabled gates tests whose happens-before relies on acquire/release
// atomics on independent variables rather than on synchronization
// primitives the race detector tracks; those tests produce false positives
// under -race and are skipped when this is true.
const raceEnabled = true
