package wavecollapse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfc "github.com/rotorforge/wavecollapse"
)

func uniformPropagator(t *testing.T, tCount, perDirection int) *wfc.Propagator {
	t.Helper()

	var data, offsets, lengths []int
	for d := 0; d < 4; d++ {
		for p := 0; p < tCount; p++ {
			offsets = append(offsets, len(data))
			n := perDirection
			if n > tCount {
				n = tCount
			}
			for k := 0; k < n; k++ {
				data = append(data, k)
			}
			lengths = append(lengths, n)
		}
	}
	prop, err := wfc.NewPropagator(tCount, data, offsets, lengths)
	require.NoError(t, err)
	return prop
}

func TestCompatible_ResetMatchesPropagatorCounts(t *testing.T) {
	t.Parallel()

	prop := uniformPropagator(t, 4, 2)
	c := wfc.NewCompatible(3, 4, prop)

	for i := 0; i < 3; i++ {
		for tt := 0; tt < 4; tt++ {
			for d := wfc.West; d <= wfc.North; d++ {
				assert.Equal(t, prop.CompatibleCount(tt, d), c.Get(i, tt, d))
			}
		}
	}
}

func TestCompatible_DecrementSaturatesAtZero(t *testing.T) {
	t.Parallel()

	prop := uniformPropagator(t, 2, 1)
	c := wfc.NewCompatible(1, 2, prop)

	require.Equal(t, 1, c.Get(0, 0, wfc.West))
	assert.Equal(t, 0, c.Decrement(0, 0, wfc.West))
	assert.Equal(t, 0, c.Decrement(0, 0, wfc.West), "further decrements must not go negative")
	assert.Equal(t, 0, c.Get(0, 0, wfc.West))
}

func TestCompatible_DirectionsAreIndependent(t *testing.T) {
	t.Parallel()

	prop := uniformPropagator(t, 2, 2)
	c := wfc.NewCompatible(1, 2, prop)

	c.Decrement(0, 0, wfc.West)
	assert.NotEqual(t, c.Get(0, 0, wfc.West), c.Get(0, 0, wfc.East), "decrementing one direction must not affect others")
}
