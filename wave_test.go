package wavecollapse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfc "github.com/rotorforge/wavecollapse"
)

func TestWave_NewWaveAllCandidates(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(3, 5)
	for i := 0; i < 3; i++ {
		for tt := 0; tt < 5; tt++ {
			assert.True(t, w.IsCandidate(i, tt), "cell %d pattern %d should start candidate", i, tt)
		}
	}
}

func TestWave_EliminateCandidate(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(2, 4)
	w.EliminateCandidate(0, 2)
	assert.False(t, w.IsCandidate(0, 2))
	assert.True(t, w.IsCandidate(0, 1))
	assert.True(t, w.IsCandidate(1, 2), "elimination must be per-cell")
}

func TestWave_FillMasksTrailingBits(t *testing.T) {
	t.Parallel()

	// tCount = 70 spans two words per cell; Fill(true) must not set bits
	// [70, 128) since they address patterns that don't exist.
	w := wfc.NewWave(1, 70)
	bytes := w.Bytes()
	require.Len(t, bytes, 2)
	assert.Equal(t, uint64(0), bytes[1]>>(70-64), "bits beyond tCount must be clear")
}

func TestWave_CloneAndSetBytesRoundtrip(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(2, 8)
	w.EliminateCandidate(1, 3)
	snap := w.CloneBytes()

	w.EliminateCandidate(1, 4)
	assert.False(t, w.IsCandidate(1, 4))

	w.SetBytes(snap)
	assert.True(t, w.IsCandidate(1, 4), "SetBytes must restore prior state")
	assert.False(t, w.IsCandidate(1, 3))
}

func TestWave_FindRemainingPattern(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(1, 4)
	for tt := 0; tt < 4; tt++ {
		if tt != 2 {
			w.EliminateCandidate(0, tt)
		}
	}
	assert.Equal(t, 2, w.FindRemainingPattern(0))

	w.EliminateCandidate(0, 2)
	assert.Equal(t, -1, w.FindRemainingPattern(0))
}

func TestWave_CollapseToPattern(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(1, 4)
	var banned []int
	w.CollapseToPattern(0, 1, func(tt int) {
		banned = append(banned, tt)
	})
	assert.Equal(t, []int{0, 2, 3}, banned)
}

func TestWave_GetRandomPattern_WeightedDraw(t *testing.T) {
	t.Parallel()

	w := wfc.NewWave(1, 3)
	tracker := wfc.NewEntropyTracker(1, 3, []float64{1, 1, 1})

	// u=0 should pick the lowest-index candidate.
	assert.Equal(t, 0, w.GetRandomPattern(0, 0, tracker))
	// u just under 1 should land on the last candidate.
	assert.Equal(t, 2, w.GetRandomPattern(0, 0.999999, tracker))
}
