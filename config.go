// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq

// Default tuning constants, used when the corresponding Option is not
// passed to New.
const (
	// defaultSpinLimit is the number of spin iterations PopOrPark performs
	// before parking on the futex.
	defaultSpinLimit = 4096

	// defaultPublishInterval is the number of pops between publications of
	// the consumer's sequence number to producers.
	defaultPublishInterval = 256
)

// config holds the optional tuning parameters configured via Option.
type config struct {
	spinLimit       int
	publishInterval uint64
}

// Option configures optional construction-time tuning parameters for New.
//
// There is exactly one queue algorithm here, so options tune constants
// rather than select among implementations.
type Option func(*config)

// WithSpinLimit overrides the number of spin iterations PopOrPark performs
// before parking on the futex. The default is 4096.
func WithSpinLimit(n int) Option {
	return func(c *config) { c.spinLimit = n }
}

// WithPublishInterval overrides the number of pops between publications of
// the consumer's sequence number to producers. The default is 256.
//
// Smaller values give producers a fresher view of consumer progress (less
// spurious ErrFull near the admission threshold) at the cost of more
// frequent cross-core writes from the consumer. Larger values amortize
// that cost but widen the margin the capacity controller must reserve.
func WithPublishInterval(k uint64) Option {
	return func(c *config) { c.publishInterval = k }
}
