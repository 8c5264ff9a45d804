// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

// The capacity controller admits pushes based on three thresholds over the
// gap between the producer sequence (tail) and the published consumer
// sequence (hpub):
//
//	LowWater      = Capacity / 4
//	HighWater     = Capacity - Capacity/4   (3*Capacity/4)
//	CriticalWater = Capacity - maxProducers
//
// HighWater must stay strictly below CriticalWater: producers only
// re-check admission once the gap exceeds HighWater, and hpub may be stale
// by up to maxProducers in-flight pushes (publication happens every
// publishInterval pops, not on every pop). The margin between HighWater
// and CriticalWater absorbs that staleness so the live window can never
// exceed Capacity even if every producer races past a just-lifted bound.

func lowWater(capacity uint64) uint64 {
	return capacity / 4
}

func highWater(capacity uint64) uint64 {
	return capacity - capacity/4
}

func criticalWater(capacity uint64, maxProducers int) uint64 {
	return capacity - uint64(maxProducers)
}
