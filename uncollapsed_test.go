package wavecollapse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wfc "github.com/rotorforge/wavecollapse"
)

func TestUncollapsedIndex_StartsFull(t *testing.T) {
	t.Parallel()

	u := wfc.NewUncollapsedIndex(4)
	assert.Equal(t, 4, u.Count())
	assert.Equal(t, []int{0, 1, 2, 3}, u.Slice())
}

func TestUncollapsedIndex_RefreshCompactsDeterminedCells(t *testing.T) {
	t.Parallel()

	tr := wfc.NewEntropyTracker(4, 2, []float64{1, 1})
	u := wfc.NewUncollapsedIndex(4)

	tr.BanPattern(1, 0)
	tr.BanPattern(3, 1)

	u.Refresh(tr)
	assert.Equal(t, 2, u.Count())
	assert.ElementsMatch(t, []int{0, 2}, u.Slice())
}

func TestUncollapsedIndex_RestoreAndClonePrefix(t *testing.T) {
	t.Parallel()

	u := wfc.NewUncollapsedIndex(5)
	u.RestorePrefix([]int{4, 2})
	assert.Equal(t, 2, u.Count())
	assert.Equal(t, []int{4, 2}, u.Slice())

	clone := u.ClonePrefix()
	u.RestorePrefix([]int{0})
	assert.Equal(t, []int{4, 2}, clone, "ClonePrefix must not alias live storage")
}
