package wavecollapse

import "fmt"

// Option configures a Model at construction via functional arguments. An
// invalid Option is recorded internally and surfaced as ErrOptionViolation
// when NewModel is called.
type Option func(*modelConfig)

// modelConfig holds the tunables gathered from Options before NewModel
// builds the Model itself.
type modelConfig struct {
	periodic                bool
	startBias               float64
	startX                  float64
	startY                  float64
	maxSnapshots            int
	snapshotIntervalPercent float64

	err error
}

// defaultConfig returns the modelConfig NewModel starts from before
// applying the caller's Options: non-periodic, no spatial bias, a modest
// bounded snapshot history.
func defaultConfig() modelConfig {
	return modelConfig{
		periodic:                false,
		startBias:               0,
		startX:                  0.5,
		startY:                  0.5,
		maxSnapshots:            64,
		snapshotIntervalPercent: 0.01,
	}
}

// WithPeriodic makes the grid wrap at its edges instead of treating
// out-of-bounds neighbors as absent.
func WithPeriodic(periodic bool) Option {
	return func(c *modelConfig) {
		c.periodic = periodic
	}
}

// WithSpatialBias biases observation order toward (startX, startY) —
// fractions of the grid's width and height in [0,1] — by bias per unit
// distance. A bias of 0 disables the effect.
func WithSpatialBias(bias, startX, startY float64) Option {
	return func(c *modelConfig) {
		if bias < 0 {
			c.err = fmt.Errorf("%w: spatial bias cannot be negative (%g)", ErrOptionViolation, bias)
			return
		}
		if startX < 0 || startX > 1 || startY < 0 || startY > 1 {
			c.err = fmt.Errorf("%w: spatial bias origin must be within [0,1], got (%g,%g)", ErrOptionViolation, startX, startY)
			return
		}
		c.startBias = bias
		c.startX = startX
		c.startY = startY
	}
}

// WithSnapshotPolicy bounds the revert history to maxSnapshots entries and
// rate-limits new snapshots to once per intervalPercent of additional fill
// progress. maxSnapshots == 0 disables revert entirely, turning every
// contradiction into a terminal Fail.
func WithSnapshotPolicy(maxSnapshots int, intervalPercent float64) Option {
	return func(c *modelConfig) {
		if maxSnapshots < 0 {
			c.err = fmt.Errorf("%w: max snapshots cannot be negative (%d)", ErrOptionViolation, maxSnapshots)
			return
		}
		if intervalPercent < 0 || intervalPercent > 1 {
			c.err = fmt.Errorf("%w: snapshot interval percent must be within [0,1] (%g)", ErrOptionViolation, intervalPercent)
			return
		}
		c.maxSnapshots = maxSnapshots
		c.snapshotIntervalPercent = intervalPercent
	}
}
