package wavecollapse

import "fmt"

// Propagator stores, for each (pattern, direction) pair, the set of
// patterns allowed to appear as that neighbor, plus the raw count of that
// set. It is built once from three flat adjacency arrays and never mutated
// afterwards.
type Propagator struct {
	tCount  int
	lengths []int           // length 4*tCount, compatible_count(t,d)
	masks   []PatternBitset // length 4*tCount, indexed by lookupIndex(t,d)
}

// NewPropagator builds a Propagator from the flat adjacency description:
// for direction d and pattern t, data[offsets[d*tCount+t] : +lengths[d*tCount+t]]
// lists the pattern ids allowed as the neighbor of t in direction d.
//
// Returns ErrAdjacencyLengthMismatch if offsets/lengths don't have exactly
// 4*tCount entries, or ErrAdjacencyOutOfRange if any (offset,length) slice
// falls outside data or contains a pattern id outside [0, tCount).
func NewPropagator(tCount int, data, offsets, lengths []int) (*Propagator, error) {
	want := numDirections * tCount
	if len(offsets) != want || len(lengths) != want {
		return nil, fmt.Errorf("NewPropagator: %w: got offsets=%d lengths=%d, want %d",
			ErrAdjacencyLengthMismatch, len(offsets), len(lengths), want)
	}

	p := &Propagator{
		tCount:  tCount,
		lengths: append([]int(nil), lengths...),
		masks:   make([]PatternBitset, want),
	}

	for lookup := 0; lookup < want; lookup++ {
		start := offsets[lookup]
		n := lengths[lookup]
		if n < 0 || start < 0 || start+n > len(data) {
			return nil, fmt.Errorf("wavecollapse: NewPropagator: %w: lookup=%d start=%d len=%d data_len=%d",
				ErrAdjacencyOutOfRange, lookup, start, n, len(data))
		}

		mask := NewPatternBitset(tCount)
		for _, id := range data[start : start+n] {
			if id < 0 || id >= tCount {
				return nil, fmt.Errorf("wavecollapse: NewPropagator: %w: pattern id %d out of range [0,%d)",
					ErrAdjacencyOutOfRange, id, tCount)
			}
			mask.Set(id)
		}
		p.masks[lookup] = mask
	}

	return p, nil
}

// lookupIndex computes the flat (direction, pattern) row used by masks and
// lengths: direction-major, pattern minor, matching spec.md's propagator
// layout (§4.2) and the Compatible tensor's per-lane pattern indexing.
func (p *Propagator) lookupIndex(t int, d Direction) int {
	return int(d)*p.tCount + t
}

// CompatibleCount returns the raw allowed-neighbor count for (t, d), used
// to (re)initialize the Compatible tensor.
func (p *Propagator) CompatibleCount(t int, d Direction) int {
	return p.lengths[p.lookupIndex(t, d)]
}

// ForEachCompatiblePattern calls visit(t') once for every pattern t'
// allowed as the neighbor of t in direction d, in ascending index order.
func (p *Propagator) ForEachCompatiblePattern(t int, d Direction, visit func(tPrime int)) {
	p.masks[p.lookupIndex(t, d)].ForEach(visit)
}
