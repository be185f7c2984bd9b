// Package wavecollapse implements the solver core of a tile/overlap Wave
// Function Collapse engine: a constraint-satisfaction procedure that fills a
// 2D grid with pattern identifiers consistent with a precomputed four
// directional adjacency table.
//
// The engine maintains four interlocking derived structures per cell — a
// candidate bitset (Wave), a per-pattern per-direction compatible-neighbor
// count (Compatible), a running Shannon-entropy cache (EntropyTracker), and
// a compacting list of still-uncollapsed cells (UncollapsedIndex) — and
// keeps them mutually consistent under high-frequency incremental mutation
// (banning a candidate) and occasional rollback (reverting to a snapshot
// taken before a speculative collapse).
//
// # What this package does not do
//
// It never reads a file, decodes an image, draws a pixel, or owns a thread.
// It does not generate random numbers: every call that needs one takes a
// caller-supplied u ∈ [0,1). It is not safe to call into the same *Model
// from more than one goroutine at a time, and it never calls itself
// re-entrantly.
//
// # Usage
//
//	m, err := wavecollapse.NewModel(width, height, tCount, weights,
//		propData, propOffsets, propLengths,
//		wavecollapse.WithPeriodic(true),
//		wavecollapse.WithSnapshotPolicy(64, 0.02))
//	if err != nil {
//		// handle validation error
//	}
//	for {
//		switch m.SingleIterationWithSnapshots(rng.Float64()) {
//		case wavecollapse.Success:
//			// grid fully determined; read m.ObservedView()
//			return
//		case wavecollapse.Fail:
//			// contradiction with no snapshot left to rescue it
//			return
//		}
//	}
//
// See configfile, regions, and httpapi for the host-side collaborators that
// typically sit around this package: deriving a pattern vocabulary and
// adjacency table, post-solve analysis, and a network-exposed driver loop.
package wavecollapse
