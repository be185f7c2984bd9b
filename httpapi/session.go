package httpapi

import (
	"math/rand"
	"sync"

	wfc "github.com/rotorforge/wavecollapse"
)

// session pairs one Model with the random-number source spec.md §1 asks
// the host to supply, plus its own watcher hub. A mutex serializes /step
// calls against the model: different sessions run fully independently,
// but §5 forbids concurrent calls into one Model.
type session struct {
	mu    sync.Mutex
	model *wfc.Model
	rng   *rand.Rand
	hub   *hub
}

func newSession(model *wfc.Model, seed int64) *session {
	return &session{
		model: model,
		rng:   rand.New(rand.NewSource(seed)),
		hub:   newHub(),
	}
}

// step draws u from the session's own RNG and advances the model by one
// iteration, broadcasting the result to any subscribed watchers.
func (s *session) step() (wfc.IterationResult, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.rng.Float64()
	result := s.model.SingleIterationWithSnapshots(u)
	changes := s.model.GetChanges()

	s.hub.broadcast(encodeStepEvent(result, changes))
	return result, changes
}

func (s *session) state() (observed []int32, filledPercent float64, complete bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.ObservedView(), s.model.FilledPercent(), s.model.IsGenerationComplete()
}
