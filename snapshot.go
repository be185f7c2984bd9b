package wavecollapse

// Snapshot is the minimal state needed to undo one collapse: the wave
// bitset at the moment of collapse, the uncollapsed-index prefix, which
// cell was collapsed and which pattern was tried (so revert can ban it
// before retrying), and the snapshot rate-limit progress marker as it
// stood before this snapshot was taken (restored by revert).
type Snapshot struct {
	waveBytes         []uint64
	uncollapsedPrefix []int
	targetCell        int
	triedPattern      int
	progress          float64
}

// SnapshotRing is a bounded history of Snapshots: Push evicts the oldest
// entry once the ring is at capacity, and Pop always returns the most
// recently pushed entry, so history behaves as a capped stack.
type SnapshotRing struct {
	entries  []Snapshot
	capacity int
}

// NewSnapshotRing builds an empty ring that holds at most capacity
// snapshots. A non-positive capacity disables history entirely.
func NewSnapshotRing(capacity int) *SnapshotRing {
	if capacity < 0 {
		capacity = 0
	}
	return &SnapshotRing{
		entries:  make([]Snapshot, 0, capacity),
		capacity: capacity,
	}
}

// Push appends s, evicting the oldest entry first if at capacity. A
// zero-capacity ring silently drops every push.
func (r *SnapshotRing) Push(s Snapshot) {
	if r.capacity == 0 {
		return
	}
	if len(r.entries) == r.capacity {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, s)
}

// Pop removes and returns the most recently pushed Snapshot. ok is false
// when history is empty.
func (r *SnapshotRing) Pop() (s Snapshot, ok bool) {
	if len(r.entries) == 0 {
		return Snapshot{}, false
	}
	last := len(r.entries) - 1
	s = r.entries[last]
	r.entries = r.entries[:last]
	return s, true
}

// Len returns the number of snapshots currently held.
func (r *SnapshotRing) Len() int {
	return len(r.entries)
}

// Clear discards all held snapshots.
func (r *SnapshotRing) Clear() {
	r.entries = r.entries[:0]
}
