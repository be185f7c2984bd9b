package wavecollapse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	wfc "github.com/rotorforge/wavecollapse"
)

func TestEntropyTracker_InitialState(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(2, 3, []float64{1, 2, 3})
	for i := 0; i < 2; i++ {
		assert.Equal(t, 3, tr.CandidateCount(i))
		assert.Equal(t, 6.0, tr.TotalWeight(i))
		assert.False(t, tr.PatternDetermined(i))
		assert.False(t, tr.HasNoPossiblePatterns(i))
	}
}

func TestEntropyTracker_BanPatternUpdatesCounts(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(1, 3, []float64{1, 1, 1})
	tr.BanPattern(0, 0)
	assert.Equal(t, 2, tr.CandidateCount(0))
	assert.Equal(t, 2.0, tr.TotalWeight(0))

	tr.BanPattern(0, 1)
	assert.Equal(t, 1, tr.CandidateCount(0))
	assert.True(t, tr.PatternDetermined(0))
	assert.Equal(t, 0.0, tr.Entropy(0), "a determined cell has zero entropy")

	tr.BanPattern(0, 2)
	assert.True(t, tr.HasNoPossiblePatterns(0))
}

func TestEntropyTracker_EntropyDecreasesAsCandidatesShrink(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(1, 4, []float64{1, 1, 1, 1})
	before := tr.Entropy(0)
	tr.BanPattern(0, 0)
	after := tr.Entropy(0)
	assert.Less(t, after, before)
	assert.False(t, math.IsNaN(after))
}

func TestEntropyTracker_ResetRestoresInitialState(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(1, 3, []float64{1, 2, 3})
	initial := tr.Entropy(0)

	tr.BanPattern(0, 0)
	tr.BanPattern(0, 1)
	assert.NotEqual(t, initial, tr.Entropy(0))

	tr.Reset()
	assert.Equal(t, 3, tr.CandidateCount(0))
	assert.Equal(t, initial, tr.Entropy(0))
}

func TestEntropyTracker_ZeroWeightPatternCountedButAddsNoWeight(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(1, 2, []float64{0, 5})
	assert.Equal(t, 5.0, tr.TotalWeight(0))
	assert.Equal(t, 2, tr.CandidateCount(0))
}
