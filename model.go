package wavecollapse

import "math"

// IterationResult reports what a single step of the solver accomplished.
type IterationResult int

const (
	// Step means one cell was observed and successfully propagated.
	Step IterationResult = iota
	// Success means every cell is determined; generation is complete.
	Success
	// Revert means a contradiction was hit and history rolled it back;
	// the caller should call the iteration again to retry.
	Revert
	// Fail means a contradiction was hit with no history left to undo it.
	Fail
)

func (r IterationResult) String() string {
	switch r {
	case Step:
		return "Step"
	case Success:
		return "Success"
	case Revert:
		return "Revert"
	case Fail:
		return "Fail"
	default:
		return "IterationResult(?)"
	}
}

// banItem pairs a cell with a pattern being eliminated from it, used for
// both the propagation stack and the per-cascade ban queue.
type banItem struct {
	cell    int
	pattern int
}

// Model is the WFC orchestrator: it owns the wave, the compatibility
// tensor, the entropy tracker, and the derived indices, and drives
// observation, propagation, and revert over them. A Model is not safe
// for concurrent use; see doc.go.
type Model struct {
	width  int
	height int
	nCells int
	tCount int

	periodic                bool
	maxSnapshots            int
	snapshotIntervalPercent float64

	wave        *Wave
	compatible  *Compatible
	tracker     *EntropyTracker
	observed    []int32
	dirty       *DirtySet
	uncollapsed *UncollapsedIndex
	bias        *SpatialBias
	propagator  *Propagator
	history     *SnapshotRing

	stack    []banItem
	banQueue []banItem

	generationComplete    bool
	lastSnapshotProgress float64
}

// NewModel validates its inputs, builds the propagator from the flat
// adjacency arrays, and returns a Model ready to iterate. prop_data,
// prop_offsets, and prop_lengths follow Propagator's layout: one
// (offset, length) pair per (pattern, direction), indexed direction-major.
func NewModel(width, height, tCount int, weights []float64, propData, propOffsets, propLengths []int, opts ...Option) (*Model, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if tCount <= 0 {
		return nil, ErrInvalidPatternCount
	}
	if len(weights) != tCount {
		return nil, ErrWeightCountMismatch
	}
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	propagator, err := NewPropagator(tCount, propData, propOffsets, propLengths)
	if err != nil {
		return nil, err
	}

	nCells := width * height
	observed := make([]int32, nCells)
	for i := range observed {
		observed[i] = -1
	}

	m := &Model{
		width:                   width,
		height:                  height,
		nCells:                  nCells,
		tCount:                  tCount,
		periodic:                cfg.periodic,
		maxSnapshots:            cfg.maxSnapshots,
		snapshotIntervalPercent: cfg.snapshotIntervalPercent,
		wave:                    NewWave(nCells, tCount),
		compatible:              NewCompatible(nCells, tCount, propagator),
		tracker:                 NewEntropyTracker(nCells, tCount, weights),
		observed:                observed,
		dirty:                   NewDirtySet(nCells),
		uncollapsed:             NewUncollapsedIndex(nCells),
		bias:                    NewSpatialBias(width, height, cfg.startBias, cfg.startX, cfg.startY),
		propagator:              propagator,
		history:                 NewSnapshotRing(cfg.maxSnapshots),
		stack:                   make([]banItem, 0, nCells),
		banQueue:                make([]banItem, 0, 1024),
	}
	m.Clear()
	return m, nil
}

// ban eliminates pattern t from cell i's candidate set, updating every
// piece of derived state (dirty tracking, entropy, the observed value if
// the cell just became determined) and pushing the elimination onto the
// propagation stack. A no-op if t is already eliminated at i.
func (m *Model) ban(i, t int) {
	if !m.wave.IsCandidate(i, t) {
		return
	}

	m.wave.EliminateCandidate(i, t)
	m.dirty.MarkDirty(i)
	m.tracker.BanPattern(i, t)

	if m.tracker.PatternDetermined(i) {
		m.observed[i] = int32(m.wave.FindRemainingPattern(i))
	}

	m.stack = append(m.stack, banItem{cell: i, pattern: t})
}

// propagate drains the ban stack, cascading each elimination to its
// neighbors in every direction. Returns false on contradiction (some cell
// reached zero candidates), in which case the caller must revert.
func (m *Model) propagate() bool {
	for len(m.stack) > 0 {
		last := len(m.stack) - 1
		item := m.stack[last]
		m.stack = m.stack[:last]

		x, y := item.cell%m.width, item.cell/m.width

		for d := Direction(0); d < numDirections; d++ {
			dx, dy := d.Delta()
			nx, ny, ok := m.wrapCoords(x+dx, y+dy)
			if !ok {
				continue
			}
			neighbor := ny*m.width + nx
			opp := oppositeDirection[d]

			m.propagator.ForEachCompatiblePattern(item.pattern, d, func(t2 int) {
				newCount := m.compatible.Decrement(neighbor, t2, opp)
				if newCount == 0 && m.wave.IsCandidate(neighbor, t2) {
					m.banQueue = append(m.banQueue, banItem{cell: neighbor, pattern: t2})
				}
			})
		}

		if !m.processBanQueue() {
			return false
		}
	}
	return true
}

// processBanQueue drains this cascade's queued bans, banning each still-
// candidate pattern and checking for contradiction as it goes. The queue
// is drained by index advance rather than pop-from-front because ban can
// itself push new propagation work without growing this queue.
func (m *Model) processBanQueue() bool {
	i := 0
	for i < len(m.banQueue) {
		item := m.banQueue[i]
		if m.wave.IsCandidate(item.cell, item.pattern) {
			m.ban(item.cell, item.pattern)
			if m.tracker.HasNoPossiblePatterns(item.cell) {
				m.banQueue = m.banQueue[:0]
				return false
			}
		}
		i++
	}
	m.banQueue = m.banQueue[:0]
	return true
}

// collapseCell commits cell to pattern chosen by banning every other
// candidate at that cell.
func (m *Model) collapseCell(cell, chosen int) {
	toBan := make([]int, 0, 64)
	m.wave.CollapseToPattern(cell, chosen, func(t int) {
		toBan = append(toBan, t)
	})
	for _, t := range toBan {
		m.ban(cell, t)
	}
}

// wrapCoords maps a candidate neighbor coordinate to its actual grid
// coordinate: modular wrap when the model is periodic, or (0, 0, false)
// when it falls outside a non-periodic grid.
func (m *Model) wrapCoords(x, y int) (nx, ny int, ok bool) {
	if m.periodic {
		nx = ((x % m.width) + m.width) % m.width
		ny = ((y % m.height) + m.height) % m.height
		return nx, ny, true
	}
	if x >= 0 && y >= 0 && x < m.width && y < m.height {
		return x, y, true
	}
	return 0, 0, false
}

// findObserveTarget scans the uncollapsed prefix for the cell with the
// lowest score, entropy plus spatial bias plus 1e-6*u. The noise term is
// the same for every cell in one scan, so ties go to the cell that comes
// first in the prefix. Returns ok=false when the prefix is empty.
func (m *Model) findObserveTarget(u float64) (idx int, ok bool) {
	minScore := math.MaxFloat64
	minIdx := -1
	const noiseScale = 1e-6

	for _, i := range m.uncollapsed.Slice() {
		score := m.tracker.Entropy(i) + m.bias.Bias(i) + noiseScale*u
		if score < minScore {
			minScore = score
			minIdx = i
		}
	}
	if minIdx < 0 {
		return 0, false
	}
	return minIdx, true
}

// takeSnapshot records the wave and uncollapsed prefix before collapsing
// (i, chosenT), unless snapshots are disabled or the fill progress hasn't
// advanced past snapshotIntervalPercent since the last one.
func (m *Model) takeSnapshot(i, chosenT int) {
	if m.maxSnapshots == 0 {
		return
	}
	current := m.FilledPercent()
	diff := current - m.lastSnapshotProgress
	if diff < m.snapshotIntervalPercent && m.history.Len() > 0 {
		return
	}

	m.history.Push(Snapshot{
		waveBytes:         m.wave.CloneBytes(),
		uncollapsedPrefix: m.uncollapsed.ClonePrefix(),
		targetCell:        i,
		triedPattern:      chosenT,
		progress:          m.lastSnapshotProgress,
	})
	m.lastSnapshotProgress = current
}

// Revert pops the most recent snapshot and restores the model to it, then
// re-applies the ban that triggered that snapshot so the solver won't
// immediately retry the same failing choice. Returns false when there is
// no history left to revert to.
func (m *Model) Revert() bool {
	s, ok := m.history.Pop()
	if !ok {
		return false
	}

	m.wave.SetBytes(s.waveBytes)
	m.compatible.Reset(m.propagator)
	m.tracker.Reset()
	for i := range m.observed {
		m.observed[i] = -1
	}

	m.rebuildFromWave()
	m.uncollapsed.RestorePrefix(s.uncollapsedPrefix)

	m.banQueue = m.banQueue[:0]
	m.stack = m.stack[:0]
	m.lastSnapshotProgress = s.progress
	m.dirty.MarkAllDirty()

	m.ban(s.targetCell, s.triedPattern)
	return true
}

// rebuildFromWave recomputes compatibility counts, entropy, and observed
// values from a freshly restored wave buffer. Every cell is visited
// unconditionally: an earlier optimization skipped cells with no
// eliminated patterns, but correctness doesn't depend on a cell having
// been touched since restore, only on its candidate set, so this walks
// the whole grid.
func (m *Model) rebuildFromWave() {
	for i := 0; i < m.nCells; i++ {
		for t := 0; t < m.tCount; t++ {
			if !m.wave.IsCandidate(i, t) {
				m.manuallyPropagateBan(i, t)
				m.tracker.BanPattern(i, t)
			}
		}
		if m.tracker.PatternDetermined(i) {
			m.observed[i] = int32(m.wave.FindRemainingPattern(i))
		}
	}
}

// manuallyPropagateBan applies the neighbor-count effect of pattern t
// already being absent at cell i, without touching the propagation stack
// or ban queue. Used only while rebuilding from a restored wave, where the
// elimination itself is already reflected in the wave bytes.
func (m *Model) manuallyPropagateBan(i, t int) {
	x, y := i%m.width, i/m.width

	for d := Direction(0); d < numDirections; d++ {
		dx, dy := d.Delta()
		nx, ny, ok := m.wrapCoords(x+dx, y+dy)
		if !ok {
			continue
		}
		neighbor := ny*m.width + nx
		opp := oppositeDirection[d]

		m.propagator.ForEachCompatiblePattern(t, d, func(t2 int) {
			m.compatible.Decrement(neighbor, t2, opp)
		})
	}
}

// SingleIterationWithSnapshots performs one observe-collapse-propagate
// step, recording a snapshot before the collapse so a contradiction can be
// undone. u is a caller-supplied uniform random value in [0,1), reused
// both as the noise term of the observation score and to weight-sample the
// collapsed pattern.
func (m *Model) SingleIterationWithSnapshots(u float64) IterationResult {
	return m.doIteration(u, true)
}

// SingleIteration performs the same step as SingleIterationWithSnapshots
// but never records a snapshot. Without history, any contradiction is
// terminal: callers wanting pure forward progress should treat Revert (if
// it occurs from snapshots taken in an earlier call) or Fail as a signal
// to restart generation themselves.
func (m *Model) SingleIteration(u float64) IterationResult {
	return m.doIteration(u, false)
}

func (m *Model) doIteration(u float64, snapshot bool) IterationResult {
	target, ok := m.findObserveTarget(u)
	if !ok {
		m.generationComplete = true
		return Success
	}

	if m.tracker.HasNoPossiblePatterns(target) {
		if m.Revert() {
			return Revert
		}
		return Fail
	}

	chosen := m.wave.GetRandomPattern(target, u, m.tracker)
	if snapshot {
		m.takeSnapshot(target, chosen)
	}
	m.collapseCell(target, chosen)

	if m.propagate() {
		m.uncollapsed.Refresh(m.tracker)
		return Step
	}
	if m.Revert() {
		return Revert
	}
	return Fail
}

// Clear resets the model to its freshly constructed state: every pattern a
// candidate in every cell, no history, no dirty cells pending. With a
// single pattern every cell is already determined, so it is observed and
// left out of the uncollapsed index.
func (m *Model) Clear() {
	m.generationComplete = false
	m.wave.Fill(true)
	for i := range m.observed {
		m.observed[i] = -1
	}
	m.history.Clear()
	m.uncollapsed.Reset(m.nCells)
	m.dirty.Clear()
	m.compatible.Reset(m.propagator)
	m.tracker.Reset()
	m.stack = m.stack[:0]
	m.lastSnapshotProgress = 0

	m.uncollapsed.Refresh(m.tracker)
	for i := range m.observed {
		if m.tracker.PatternDetermined(i) {
			m.observed[i] = int32(m.wave.FindRemainingPattern(i))
		}
	}
}

// FilledPercent returns the fraction of cells that are fully determined.
func (m *Model) FilledPercent() float64 {
	collapsed := m.nCells - m.uncollapsed.Count()
	return float64(collapsed) / float64(m.nCells)
}

// GetChanges returns the cells that changed since the last call and
// clears the pending set.
func (m *Model) GetChanges() []int {
	return m.dirty.Flush()
}

// PeekChanges returns the cells that changed since the last GetChanges
// call, without clearing the pending set.
func (m *Model) PeekChanges() []int {
	return m.dirty.Peek()
}

// IsGenerationComplete reports whether the most recent iteration found
// every cell determined.
func (m *Model) IsGenerationComplete() bool {
	return m.generationComplete
}

// GetFilledCount returns the number of fully determined cells.
func (m *Model) GetFilledCount() int {
	return m.nCells - m.uncollapsed.Count()
}

// GetTotalCells returns width*height.
func (m *Model) GetTotalCells() int {
	return m.nCells
}

// WaveView exposes the live wave buffer as a read-only view.
func (m *Model) WaveView() []uint64 {
	return m.wave.Bytes()
}

// ObservedView exposes the per-cell observed pattern (-1 if undetermined)
// as a read-only view.
func (m *Model) ObservedView() []int32 {
	return m.observed
}

// EntropyView exposes the live per-cell entropy cache as a read-only view.
func (m *Model) EntropyView() []float64 {
	return m.tracker.EntropyView()
}
