package configfile

import "sort"

// ModelArgs bundles the flat construction inputs wavecollapse.NewModel
// accepts, lowered from a Scenario's named patterns and adjacency.
type ModelArgs struct {
	Width, Height, TCount int
	Weights               []float64
	PropData              []int
	PropOffsets           []int
	PropLengths           []int
	Periodic              bool
	StartBias             float64
	StartX, StartY        float64
}

// Compile validates the scenario and lowers it to ModelArgs: patterns are
// assigned dense indices in declaration order, and each (direction,
// pattern) adjacency list is resolved to sorted, de-duplicated indices
// before being concatenated direction-major into PropData.
func (s *Scenario) Compile() (ModelArgs, error) {
	if err := s.Validate(); err != nil {
		return ModelArgs{}, err
	}

	tCount := len(s.Patterns)
	index := make(map[string]int, tCount)
	weights := make([]float64, tCount)
	for i, p := range s.Patterns {
		index[p.Name] = i
		weights[i] = p.Weight
	}

	var data, offsets, lengths []int
	for _, dirName := range directionOrder {
		for t := 0; t < tCount; t++ {
			names := neighborsFor(s.Adjacency[s.Patterns[t].Name], dirName)
			ids := resolveAndDedupe(names, index)

			offsets = append(offsets, len(data))
			lengths = append(lengths, len(ids))
			data = append(data, ids...)
		}
	}

	return ModelArgs{
		Width:       s.Width,
		Height:      s.Height,
		TCount:      tCount,
		Weights:     weights,
		PropData:    data,
		PropOffsets: offsets,
		PropLengths: lengths,
		Periodic:    s.Periodic,
		StartBias:   s.StartBias,
		StartX:      s.StartX,
		StartY:      s.StartY,
	}, nil
}

// neighborsFor returns the named neighbor list for one direction of a
// DirectionNeighbors value.
func neighborsFor(dirs DirectionNeighbors, dirName string) []string {
	switch dirName {
	case "west":
		return dirs.West
	case "south":
		return dirs.South
	case "east":
		return dirs.East
	case "north":
		return dirs.North
	default:
		return nil
	}
}

// resolveAndDedupe maps pattern names to their dense indices, sorts, and
// removes duplicates, so a human-authored list that repeats or disorders
// entries never causes ForEachCompatiblePattern to visit the same pattern
// twice.
func resolveAndDedupe(names []string, index map[string]int) []int {
	seen := make(map[int]bool, len(names))
	ids := make([]int, 0, len(names))
	for _, n := range names {
		id := index[n]
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
