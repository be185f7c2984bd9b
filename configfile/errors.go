package configfile

import "errors"

// Sentinel errors returned by Scenario.Validate and Scenario.Compile.
var (
	// ErrNoPatterns is returned when a scenario declares zero patterns.
	ErrNoPatterns = errors.New("configfile: scenario has no patterns")

	// ErrNegativeWeight is returned when a pattern's weight is negative.
	ErrNegativeWeight = errors.New("configfile: pattern weight cannot be negative")

	// ErrUnknownPattern is returned when an adjacency entry names a
	// pattern (as owner or as a neighbor) not present in Patterns.
	ErrUnknownPattern = errors.New("configfile: adjacency references unknown pattern")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("configfile: width and height must be positive")
)
