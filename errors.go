package wavecollapse

import "errors"

// Sentinel errors returned by NewModel and the functional Options. All of
// them indicate a programmer-supplied construction contract violation; the
// engine itself recognizes exactly one semantic error at runtime
// (contradiction), which is never raised this way — see IterationResult.
var (
	// ErrInvalidDimensions indicates width or height is not positive.
	ErrInvalidDimensions = errors.New("wavecollapse: width and height must be > 0")

	// ErrInvalidPatternCount indicates t_count is not positive.
	ErrInvalidPatternCount = errors.New("wavecollapse: t_count must be > 0")

	// ErrWeightCountMismatch indicates len(weights) != t_count.
	ErrWeightCountMismatch = errors.New("wavecollapse: len(weights) must equal t_count")

	// ErrNegativeWeight indicates a pattern weight below zero.
	ErrNegativeWeight = errors.New("wavecollapse: pattern weights must be non-negative")

	// ErrAdjacencyLengthMismatch indicates prop_offsets or prop_lengths
	// does not have exactly 4*t_count entries.
	ErrAdjacencyLengthMismatch = errors.New("wavecollapse: prop_offsets/prop_lengths must have length 4*t_count")

	// ErrAdjacencyOutOfRange indicates an (offset, length) pair indexes
	// outside prop_data, or prop_data itself contains an out-of-range
	// pattern id.
	ErrAdjacencyOutOfRange = errors.New("wavecollapse: adjacency table indexes out of range")

	// ErrOptionViolation is returned when a functional Option is given an
	// invalid value (negative bias, out-of-[0,1] start coordinates,
	// negative max snapshots, or an interval outside [0,1]).
	ErrOptionViolation = errors.New("wavecollapse: invalid option supplied")
)
