package wavecollapse

import "math/bits"

// wordsForPatterns returns the number of 64-bit words needed to hold a
// bitset over [0, t) patterns, low-bit-first.
func wordsForPatterns(t int) int {
	return (t + 63) / 64
}

// PatternBitset is a fixed-size, word-packed set over pattern identifiers
// [0, T). Bit t of word (t/64) holds membership of pattern t, low-bit-first.
// It is used by Propagator to store each (direction, pattern) neighbor mask;
// Wave reimplements the identical bit arithmetic directly over its own
// contiguous multi-cell buffer instead of delegating to PatternBitset, since
// the spec requires one shared allocation across all cells (see bitset
// layout note in wave.go).
type PatternBitset struct {
	words []uint64
	t     int
}

// NewPatternBitset allocates a zeroed bitset over t patterns.
func NewPatternBitset(t int) PatternBitset {
	return PatternBitset{words: make([]uint64, wordsForPatterns(t)), t: t}
}

// Set marks pattern idx as a member. Indexes outside [0, T) are ignored.
func (b *PatternBitset) Set(idx int) {
	if idx < 0 || idx >= b.t {
		return
	}
	b.words[idx>>6] |= 1 << uint(idx&63)
}

// Test reports whether pattern idx is a member.
func (b PatternBitset) Test(idx int) bool {
	if idx < 0 || idx >= b.t {
		return false
	}
	return b.words[idx>>6]&(1<<uint(idx&63)) != 0
}

// PopCount returns the number of member patterns.
func (b PatternBitset) PopCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Words exposes the underlying word slice, low-bit-first, read-only by
// convention (callers must not mutate it through this reference).
func (b PatternBitset) Words() []uint64 {
	return b.words
}

// ForEach calls visit(t) once for every member pattern, in ascending index
// order, via a trailing-zero scan of each word.
func (b PatternBitset) ForEach(visit func(t int)) {
	for wordIdx, word := range b.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			idx := wordIdx<<6 + bit
			if idx < b.t {
				visit(idx)
			}
			word &= word - 1
		}
	}
}
