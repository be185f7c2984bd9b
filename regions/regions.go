// Package regions groups a solved (or partially solved) grid's observed
// pattern ids into maximal connected same-pattern blocks. It is a
// post-solve analysis step, not part of the engine: it only reads the
// []int32 observed view a wavecollapse.Model exposes.
package regions

// Connectivity selects neighbor connectivity for flood-filling a region:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, adding the four diagonals.
	Conn8
)

// neighborOffsets precomputes the (dx, dy) pairs for each Connectivity.
func (c Connectivity) neighborOffsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Region is one maximal connected block of cells sharing the same
// observed pattern id.
type Region struct {
	PatternID              int
	Cells                  []int
	MinX, MinY, MaxX, MaxY int
}

// FindRegions scans a width×height observed grid row-major and flood-fills
// each unvisited, fully-determined cell into a Region with its same-id
// neighbors, in the order each region's seed cell was first visited.
// Uncollapsed cells (observed == -1) are never a seed and never join a
// region, even when adjacent to one another.
func FindRegions(width, height int, observed []int32, conn Connectivity) []Region {
	if width <= 0 || height <= 0 {
		return nil
	}

	total := width * height
	visited := make([]bool, total)
	offsets := conn.neighborOffsets()
	var result []Region

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start := y*width + x
			if visited[start] || observed[start] < 0 {
				continue
			}
			patternID := int(observed[start])

			queue := []int{start}
			visited[start] = true
			region := Region{PatternID: patternID, MinX: x, MinY: y, MaxX: x, MaxY: y}

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				cx, cy := idx%width, idx/width
				region.Cells = append(region.Cells, idx)
				if cx < region.MinX {
					region.MinX = cx
				}
				if cx > region.MaxX {
					region.MaxX = cx
				}
				if cy < region.MinY {
					region.MinY = cy
				}
				if cy > region.MaxY {
					region.MaxY = cy
				}

				for _, d := range offsets {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					nIdx := ny*width + nx
					if visited[nIdx] || observed[nIdx] != int32(patternID) {
						continue
					}
					visited[nIdx] = true
					queue = append(queue, nIdx)
				}
			}

			result = append(result, region)
		}
	}

	return result
}
