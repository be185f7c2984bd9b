package wavecollapse

import "math/bits"

// Wave is the per-cell bitset of still-candidate patterns, B in spec.md §3.
// All cells share one contiguous []uint64 buffer, word-packed low-bit-first,
// wordsPerCell words per cell, so the buffer is both row-major across cells
// and word-packed across patterns within a cell — this is what lets
// Propagator's masks and a single cell's slice of B be ANDed word-for-word.
//
// Wave reimplements the same bit arithmetic as PatternBitset directly on
// this shared buffer rather than holding one PatternBitset per cell: a
// PatternBitset per cell would be a separate allocation per cell, breaking
// the single-contiguous-buffer requirement (spec.md §3, I2) and the cheap
// whole-buffer snapshot/restore in Model.Revert.
type Wave struct {
	data          []uint64
	tCount        int
	wordsPerCell  int
	nCells        int
	lastWordMask  uint64 // mask for valid bits in the last word of a cell
	hasRemainder  bool   // true when tCount is not a multiple of 64
}

// NewWave allocates a Wave for nCells cells over tCount patterns, with every
// cell initialized to "all patterns candidate" (Fill(true)).
func NewWave(nCells, tCount int) *Wave {
	wpc := wordsForPatterns(tCount)
	w := &Wave{
		data:         make([]uint64, nCells*wpc),
		tCount:       tCount,
		wordsPerCell: wpc,
		nCells:       nCells,
	}
	if rem := tCount % 64; rem != 0 {
		w.hasRemainder = true
		w.lastWordMask = (uint64(1) << uint(rem)) - 1
	} else {
		w.lastWordMask = ^uint64(0)
	}
	w.Fill(true)
	return w
}

// wordIndex returns the index into data of the word holding pattern t of
// cell i.
func (w *Wave) wordIndex(i, t int) int {
	return i*w.wordsPerCell + (t >> 6)
}

// IsCandidate reports whether pattern t is still a candidate for cell i.
func (w *Wave) IsCandidate(i, t int) bool {
	if t < 0 || t >= w.tCount {
		return false
	}
	return w.data[w.wordIndex(i, t)]&(1<<uint(t&63)) != 0
}

// EliminateCandidate clears pattern t's candidacy bit for cell i
// unconditionally; callers must check IsCandidate first if a no-op on an
// already-eliminated pattern must be distinguished from the transition.
func (w *Wave) EliminateCandidate(i, t int) {
	w.data[w.wordIndex(i, t)] &^= 1 << uint(t&63)
}

// Fill sets every cell's bitset to "all patterns candidate" (value true) or
// "no patterns candidate" (value false), masking off positions >= tCount in
// the final word of each cell so invariant I2 holds.
func (w *Wave) Fill(value bool) {
	if !value {
		for i := range w.data {
			w.data[i] = 0
		}
		return
	}

	for i := range w.data {
		w.data[i] = ^uint64(0)
	}
	if w.hasRemainder {
		for c := 0; c < w.nCells; c++ {
			lastWord := (c+1)*w.wordsPerCell - 1
			w.data[lastWord] &= w.lastWordMask
		}
	}
}

// CloneBytes returns a copy of the full wave buffer, suitable for storing in
// a Snapshot.
func (w *Wave) CloneBytes() []uint64 {
	out := make([]uint64, len(w.data))
	copy(out, w.data)
	return out
}

// SetBytes overwrites the wave buffer from a previously captured CloneBytes
// result. The slice must have the same length as the current buffer.
func (w *Wave) SetBytes(data []uint64) {
	copy(w.data, data)
}

// Bytes exposes the live wave buffer as a read-only view.
func (w *Wave) Bytes() []uint64 {
	return w.data
}

// FindRemainingPattern returns the lowest-index candidate pattern for cell
// i, or -1 if none remain.
func (w *Wave) FindRemainingPattern(i int) int {
	start := i * w.wordsPerCell
	for wi := 0; wi < w.wordsPerCell; wi++ {
		word := w.data[start+wi]
		if word != 0 {
			bit := bits.TrailingZeros64(word)
			return wi<<6 + bit
		}
	}
	return -1
}

// GetRandomPattern performs a weighted draw among cell i's current
// candidates: compute x = u * S_i (S_i from tracker), then walk candidates
// in ascending index order subtracting each pattern's weight, returning the
// first pattern for which x <= 0. If floating point residue exhausts the
// loop without a hit, the lowest candidate is returned. u must be in [0,1).
func (w *Wave) GetRandomPattern(i int, u float64, tracker *EntropyTracker) int {
	x := u * tracker.TotalWeight(i)
	start := i * w.wordsPerCell

	for wi := 0; wi < w.wordsPerCell; wi++ {
		word := w.data[start+wi]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			t := wi<<6 + bit
			if t < w.tCount {
				x -= tracker.PatternWeight(t)
				if x <= 0 {
					return t
				}
			}
			word &= word - 1
		}
	}

	return w.FindRemainingPattern(i)
}

// CollapseToPattern calls onBan(t) once for every pattern t that is
// currently a candidate for cell i except chosen, in ascending index order.
// It does not itself mutate the wave; the caller bans each emitted pattern
// so the derived structures (tracker, dirty set, propagation stack) stay
// coupled to the mutation.
func (w *Wave) CollapseToPattern(i, chosen int, onBan func(t int)) {
	chosenWord := chosen >> 6
	chosenBit := uint(chosen & 63)
	start := i * w.wordsPerCell

	for wi := 0; wi < w.wordsPerCell; wi++ {
		word := w.data[start+wi]
		if word == 0 {
			continue
		}
		toBan := word
		if wi == chosenWord {
			toBan &^= 1 << chosenBit
		}
		for toBan != 0 {
			bit := bits.TrailingZeros64(toBan)
			t := wi<<6 + bit
			if t < w.tCount {
				onBan(t)
			}
			toBan &= toBan - 1
		}
	}
}
