// Package configfile loads a human-authored YAML scenario — grid size,
// pattern names and weights, per-direction adjacency — and lowers it to
// the flat construction arrays wavecollapse.NewModel expects. This is the
// engine's "pattern vocabulary and adjacency table" collaborator for
// scenarios authored by hand rather than derived from a sample image.
package configfile

import "fmt"

// PatternSpec names one pattern and its relative selection weight.
type PatternSpec struct {
	Name   string  `yaml:"name" json:"name"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// DirectionNeighbors lists, per cardinal direction, the names of patterns
// allowed to appear as that neighbor. An omitted direction means "no
// neighbor permitted in that direction" rather than "unconstrained".
type DirectionNeighbors struct {
	West  []string `yaml:"west" json:"west"`
	South []string `yaml:"south" json:"south"`
	East  []string `yaml:"east" json:"east"`
	North []string `yaml:"north" json:"north"`
}

// Scenario is a named, validated bundle describing a grid to generate:
// its size, its pattern vocabulary, and the adjacency rules between
// patterns. Adjacency is keyed by pattern name.
type Scenario struct {
	Name      string                        `yaml:"name" json:"name"`
	Width     int                           `yaml:"width" json:"width"`
	Height    int                           `yaml:"height" json:"height"`
	Periodic  bool                          `yaml:"periodic" json:"periodic"`
	StartBias float64                       `yaml:"start_bias" json:"start_bias"`
	StartX    float64                       `yaml:"start_x" json:"start_x"`
	StartY    float64                       `yaml:"start_y" json:"start_y"`
	Patterns  []PatternSpec                 `yaml:"patterns" json:"patterns"`
	Adjacency map[string]DirectionNeighbors `yaml:"adjacency" json:"adjacency"`
}

// directionOrder fixes the prop array layout to wavecollapse's
// direction-major convention: West, South, East, North, in that index
// order (matching wavecollapse.Direction's iota values).
var directionOrder = []string{"west", "south", "east", "north"}

// Validate checks a Scenario's internal consistency without touching the
// engine: a non-empty pattern set, non-negative weights, positive
// dimensions, and adjacency entries that only name declared patterns.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if len(s.Patterns) == 0 {
		return ErrNoPatterns
	}

	known := make(map[string]bool, len(s.Patterns))
	for _, p := range s.Patterns {
		if p.Weight < 0 {
			return fmt.Errorf("%w: pattern %q has weight %g", ErrNegativeWeight, p.Name, p.Weight)
		}
		known[p.Name] = true
	}

	for owner, dirs := range s.Adjacency {
		if !known[owner] {
			return fmt.Errorf("%w: %q", ErrUnknownPattern, owner)
		}
		for _, names := range [][]string{dirs.West, dirs.South, dirs.East, dirs.North} {
			for _, n := range names {
				if !known[n] {
					return fmt.Errorf("%w: %q (neighbor of %q)", ErrUnknownPattern, n, owner)
				}
			}
		}
	}
	return nil
}
