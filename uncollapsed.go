package wavecollapse

// UncollapsedIndex is a compacting array of cell indices: the first count
// entries are exactly the cells with more than one remaining candidate.
// Order within the prefix carries no semantic meaning beyond being stable
// between refreshes.
type UncollapsedIndex struct {
	indices []int
	count   int
}

// NewUncollapsedIndex seeds the index with every cell in [0, nCells)
// marked uncollapsed.
func NewUncollapsedIndex(nCells int) *UncollapsedIndex {
	u := &UncollapsedIndex{indices: make([]int, nCells)}
	u.Reset(nCells)
	return u
}

// Reset reinitializes the prefix to every cell in [0, nCells).
func (u *UncollapsedIndex) Reset(nCells int) {
	for i := 0; i < nCells; i++ {
		u.indices[i] = i
	}
	u.count = nCells
}

// Slice returns the live uncollapsed prefix, read-only by convention.
func (u *UncollapsedIndex) Slice() []int {
	return u.indices[:u.count]
}

// Count returns the number of uncollapsed cells.
func (u *UncollapsedIndex) Count() int {
	return u.count
}

// Refresh compacts the prefix in place, keeping only cells for which
// tracker reports more than one remaining candidate.
func (u *UncollapsedIndex) Refresh(tracker *EntropyTracker) {
	j := 0
	for i := 0; i < u.count; i++ {
		idx := u.indices[i]
		if tracker.CandidateCount(idx) > 1 {
			u.indices[j] = idx
			j++
		}
	}
	u.count = j
}

// RestorePrefix replaces the current prefix with a previously captured one
// (used by Model.Revert to restore the snapshot's uncollapsed list).
func (u *UncollapsedIndex) RestorePrefix(prefix []int) {
	copy(u.indices, prefix)
	u.count = len(prefix)
}

// ClonePrefix returns a copy of the live prefix, suitable for storing in a
// Snapshot.
func (u *UncollapsedIndex) ClonePrefix() []int {
	out := make([]int, u.count)
	copy(out, u.indices[:u.count])
	return out
}
