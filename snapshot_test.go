package wavecollapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRing_PushPopOrder(t *testing.T) {
	t.Parallel()

	r := NewSnapshotRing(3)
	r.Push(Snapshot{targetCell: 1})
	r.Push(Snapshot{targetCell: 2})
	r.Push(Snapshot{targetCell: 3})

	require.Equal(t, 3, r.Len())

	s, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, s.targetCell, "Pop must return the most recently pushed snapshot")
}

func TestSnapshotRing_EvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	r := NewSnapshotRing(2)
	r.Push(Snapshot{targetCell: 1})
	r.Push(Snapshot{targetCell: 2})
	r.Push(Snapshot{targetCell: 3})

	require.Equal(t, 2, r.Len())

	first, _ := r.Pop()
	second, _ := r.Pop()
	assert.Equal(t, 3, first.targetCell)
	assert.Equal(t, 2, second.targetCell, "the oldest entry (targetCell 1) must have been evicted")

	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestSnapshotRing_ZeroCapacityDropsPushes(t *testing.T) {
	t.Parallel()

	r := NewSnapshotRing(0)
	r.Push(Snapshot{targetCell: 1})
	assert.Equal(t, 0, r.Len())
	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestSnapshotRing_Clear(t *testing.T) {
	t.Parallel()

	r := NewSnapshotRing(4)
	r.Push(Snapshot{targetCell: 1})
	r.Clear()
	assert.Equal(t, 0, r.Len())
}
