package wavecollapse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfc "github.com/rotorforge/wavecollapse"
)

// buildLineAdjacency returns the flat (data, offsets, lengths) arrays for a
// tCount-pattern system where each pattern t is only compatible with itself
// in every direction, except pattern 0 which also tolerates pattern 1 to its
// East (and symmetrically pattern 1 tolerates 0 to its West).
func buildLineAdjacency(tCount int) (data, offsets, lengths []int) {
	lists := make([][]int, 4*tCount)
	for d := 0; d < 4; d++ {
		for t := 0; t < tCount; t++ {
			lists[d*tCount+t] = []int{t}
		}
	}
	lists[int(wfc.East)*tCount+0] = append(lists[int(wfc.East)*tCount+0], 1)
	lists[int(wfc.West)*tCount+1] = append(lists[int(wfc.West)*tCount+1], 0)

	offsets = make([]int, 4*tCount)
	lengths = make([]int, 4*tCount)
	for lookup, l := range lists {
		offsets[lookup] = len(data)
		lengths[lookup] = len(l)
		data = append(data, l...)
	}
	return data, offsets, lengths
}

func TestNewPropagator_ValidBuild(t *testing.T) {
	t.Parallel()

	data, offsets, lengths := buildLineAdjacency(3)
	p, err := wfc.NewPropagator(3, data, offsets, lengths)
	require.NoError(t, err)

	assert.Equal(t, 2, p.CompatibleCount(0, wfc.East))
	assert.Equal(t, 1, p.CompatibleCount(0, wfc.West))
	assert.Equal(t, 2, p.CompatibleCount(1, wfc.West))

	var got []int
	p.ForEachCompatiblePattern(0, wfc.East, func(tPrime int) {
		got = append(got, tPrime)
	})
	assert.Equal(t, []int{0, 1}, got)
}

func TestNewPropagator_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := wfc.NewPropagator(2, nil, []int{0, 0}, []int{0, 0})
	assert.True(t, errors.Is(err, wfc.ErrAdjacencyLengthMismatch))
}

func TestNewPropagator_OutOfRangePatternID(t *testing.T) {
	t.Parallel()

	offsets := make([]int, 4*2)
	lengths := make([]int, 4*2)
	lengths[0] = 1
	_, err := wfc.NewPropagator(2, []int{5}, offsets, lengths)
	assert.True(t, errors.Is(err, wfc.ErrAdjacencyOutOfRange))
}

func TestNewPropagator_OutOfRangeSlice(t *testing.T) {
	t.Parallel()

	offsets := make([]int, 4*2)
	lengths := make([]int, 4*2)
	offsets[0] = 3
	lengths[0] = 2
	_, err := wfc.NewPropagator(2, []int{0, 1}, offsets, lengths)
	assert.True(t, errors.Is(err, wfc.ErrAdjacencyOutOfRange))
}
