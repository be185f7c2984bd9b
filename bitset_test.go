package wavecollapse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wfc "github.com/rotorforge/wavecollapse"
)

func TestPatternBitset_SetAndTest(t *testing.T) {
	t.Parallel()

	b := wfc.NewPatternBitset(70)
	assert.False(t, b.Test(0))
	assert.False(t, b.Test(69))

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(69)

	assert.True(t, b.Test(0))
	assert.True(t, b.Test(63))
	assert.True(t, b.Test(64))
	assert.True(t, b.Test(69))
	assert.False(t, b.Test(1))
	assert.False(t, b.Test(65))
}

func TestPatternBitset_PopCount(t *testing.T) {
	t.Parallel()

	b := wfc.NewPatternBitset(10)
	assert.Equal(t, 0, b.PopCount())

	for _, id := range []int{0, 2, 4, 9} {
		b.Set(id)
	}
	assert.Equal(t, 4, b.PopCount())
}

func TestPatternBitset_ForEach(t *testing.T) {
	t.Parallel()

	b := wfc.NewPatternBitset(130)
	want := []int{1, 64, 65, 129}
	for _, id := range want {
		b.Set(id)
	}

	var got []int
	b.ForEach(func(t int) {
		got = append(got, t)
	})

	assert.Equal(t, want, got, "ForEach must visit set bits in ascending order")
}
