package wavecollapse

// Compatible is the compatibility tensor C[i,t,d]: the number of patterns
// still candidate in the neighbor of cell i in direction d that are
// compatible with pattern t appearing at i. Storage is direction-major —
// one contiguous lane per direction, each lane holding nCells*tCount
// cell-major counts — so Reset can fill a lane by copying one
// pattern-sized template across every cell, and the propagation inner loop
// touches one contiguous span per direction.
type Compatible struct {
	data   []uint16
	nCells int
	tCount int
}

// NewCompatible allocates and initializes C from propagator, equivalent to
// calling Reset on a zeroed tensor.
func NewCompatible(nCells, tCount int, propagator *Propagator) *Compatible {
	c := &Compatible{
		data:   make([]uint16, numDirections*nCells*tCount),
		nCells: nCells,
		tCount: tCount,
	}
	c.Reset(propagator)
	return c
}

// index computes the flat offset for (cell i, pattern t, direction d) under
// the direction-major / cell-major / pattern-minor layout.
func (c *Compatible) index(i, t int, d Direction) int {
	return int(d)*c.nCells*c.tCount + i*c.tCount + t
}

// Get returns C[i,t,d]. Exposed for cross-validation (spec.md P3), not on
// the solver's hot path.
func (c *Compatible) Get(i, t int, d Direction) int {
	return int(c.data[c.index(i, t, d)])
}

// Decrement saturates C[i,t,d] at zero and returns the new count. This is
// the hottest inner-loop operation in propagation and is kept branch-minimal.
func (c *Compatible) Decrement(i, t int, d Direction) int {
	idx := c.index(i, t, d)
	v := c.data[idx]
	if v > 0 {
		v--
		c.data[idx] = v
	}
	return int(v)
}

// Reset reinitializes every C[i,t,d] to propagator.CompatibleCount(t,d), one
// direction lane at a time: for each direction it builds a tCount-long
// template of compatible counts and copies it across every cell in that
// lane, maximizing memory-copy throughput over a scalar triple loop.
func (c *Compatible) Reset(propagator *Propagator) {
	template := make([]uint16, c.tCount)
	for d := Direction(0); d < numDirections; d++ {
		for t := 0; t < c.tCount; t++ {
			template[t] = uint16(propagator.CompatibleCount(t, d))
		}
		laneStart := int(d) * c.nCells * c.tCount
		for i := 0; i < c.nCells; i++ {
			copy(c.data[laneStart+i*c.tCount:laneStart+(i+1)*c.tCount], template)
		}
	}
}
