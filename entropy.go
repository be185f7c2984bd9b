package wavecollapse

import "math"

// entropyFloor is the minimum weight sum below which entropy is clamped to
// zero to avoid dividing by (or taking the log of) a near-zero value.
const entropyFloor = 1e-9

// EntropyTracker maintains, per cell, the running candidate count n_i, the
// weight sum S_i, the log-weight sum L_i, and the cached Shannon entropy
// H_i = ln(S_i) - L_i/S_i of the weighted candidate distribution. Keeping
// S_i and L_i incremental turns each ban into O(1) work instead of an O(T)
// rescan.
type EntropyTracker struct {
	nCells int
	tCount int

	count []int32   // n_i
	sum   []float64 // S_i
	logSum []float64 // L_i
	entropy []float64 // H_i

	patternWeight    []float64 // w_t, immutable after construction
	patternLogWeight []float64 // w_t * ln(w_t), 0 when w_t == 0

	initCount   int32
	initSum     float64
	initLogSum  float64
	initEntropy float64
}

// NewEntropyTracker builds a tracker for nCells cells over tCount patterns
// with the given per-pattern weights (len(weights) == tCount), and seeds
// every cell at its initial (all-candidates) distribution.
func NewEntropyTracker(nCells, tCount int, weights []float64) *EntropyTracker {
	logWeights := make([]float64, tCount)
	var sum, logSum float64
	for t, w := range weights {
		sum += w
		if w > 0 {
			logWeights[t] = w * math.Log(w)
		}
		logSum += logWeights[t]
	}

	var initEntropy float64
	if sum > 0 {
		initEntropy = math.Log(sum) - logSum/sum
	}

	tr := &EntropyTracker{
		nCells:           nCells,
		tCount:           tCount,
		count:            make([]int32, nCells),
		sum:              make([]float64, nCells),
		logSum:           make([]float64, nCells),
		entropy:          make([]float64, nCells),
		patternWeight:    append([]float64(nil), weights...),
		patternLogWeight: logWeights,
		initCount:        int32(tCount),
		initSum:          sum,
		initLogSum:       logSum,
		initEntropy:      initEntropy,
	}
	tr.Reset()
	return tr
}

// BanPattern records that pattern t has just been eliminated from cell i's
// candidate set, updating n_i, S_i, L_i, and H_i per spec.md §4.5.
func (tr *EntropyTracker) BanPattern(i, t int) {
	tr.count[i]--

	w := tr.patternWeight[t]
	lw := tr.patternLogWeight[t]

	newSum := tr.sum[i] - w
	if newSum < 0 {
		newSum = 0
	}
	tr.sum[i] = newSum
	tr.logSum[i] -= lw

	if tr.count[i] <= 1 || newSum < entropyFloor {
		tr.entropy[i] = 0
		return
	}

	h := math.Log(newSum) - tr.logSum[i]/newSum
	if h < 0 {
		h = 0
	}
	tr.entropy[i] = h
}

// PatternDetermined reports whether cell i has exactly one candidate left.
func (tr *EntropyTracker) PatternDetermined(i int) bool {
	return tr.count[i] == 1
}

// HasNoPossiblePatterns reports the contradiction condition: cell i has no
// candidates left.
func (tr *EntropyTracker) HasNoPossiblePatterns(i int) bool {
	return tr.count[i] == 0
}

// CandidateCount returns n_i.
func (tr *EntropyTracker) CandidateCount(i int) int {
	return int(tr.count[i])
}

// Entropy returns H_i.
func (tr *EntropyTracker) Entropy(i int) float64 {
	return tr.entropy[i]
}

// TotalWeight returns S_i.
func (tr *EntropyTracker) TotalWeight(i int) float64 {
	return tr.sum[i]
}

// PatternWeight returns the immutable weight w_t of pattern t.
func (tr *EntropyTracker) PatternWeight(t int) float64 {
	return tr.patternWeight[t]
}

// Reset restores every cell to the initial (tCount, S0, L0, H0) computed at
// construction, without recomputing from the weights.
func (tr *EntropyTracker) Reset() {
	for i := 0; i < tr.nCells; i++ {
		tr.count[i] = tr.initCount
		tr.sum[i] = tr.initSum
		tr.logSum[i] = tr.initLogSum
		tr.entropy[i] = tr.initEntropy
	}
}

// EntropyView exposes the live per-cell entropy cache as a read-only view.
func (tr *EntropyTracker) EntropyView() []float64 {
	return tr.entropy
}
