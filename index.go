// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

// stride is the index-mapping step: idx(i) = (i*stride) & mask.
//
// stride must be odd (so it is coprime to the power-of-two capacity,
// making the mapping a bijection on [0, capacity)) and large enough that
// stride*sizeof(pointer) exceeds one 64-byte cache line, so that two
// consecutive logical positions never land on the same line once capacity
// is at least 32 (in an 8- or 16-slot ring the stride wraps to 1 or 7
// slots). 9 is the smallest value satisfying both: it is odd, and
// 9*8 = 72 > 64.
const stride = 9

// indexOf maps a monotone sequence number to a physical ring index.
//
// Because capacity is always a power of two and stride is odd,
// gcd(stride, capacity) == 1, so indexOf is a bijection on [0, capacity)
// for any full revolution of i. It is also invariant under subtracting a
// multiple of capacity from i, which is what makes the consumer's periodic
// rebase of the producer sequence (see pop.go) transparent to where items
// land.
func indexOf(i, mask uint64) uint64 {
	return (i * stride) & mask
}
