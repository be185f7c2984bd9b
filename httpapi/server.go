// Package httpapi exposes wavecollapse.Model as a session-oriented HTTP
// and WebSocket service: callers create a session from a named or inline
// scenario, step it, poll its state, and watch it over a socket.
package httpapi

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rotorforge/wavecollapse/configfile"
)

// Server owns the session registry and the scenario catalog filled through
// RegisterScenario. It is safe for concurrent use.
type Server struct {
	seed int64

	mu        sync.Mutex
	sessions  map[string]*session
	scenarios map[string]*configfile.Scenario

	engine *gin.Engine
}

// NewServer builds a Server with an empty session table and an empty
// scenario catalog, seeded so successive sessions draw independent but
// reproducible random streams from seed, seed+1, seed+2, ...
func NewServer(seed int64) *Server {
	s := &Server{
		seed:      seed,
		sessions:  make(map[string]*session),
		scenarios: make(map[string]*configfile.Scenario),
	}
	s.engine = s.newEngine()
	return s
}

// RegisterScenario adds a named scenario to the catalog so
// POST /v1/scenarios/:name/sessions can find it without an inline body.
func (s *Server) RegisterScenario(name string, scenario *configfile.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios[name] = scenario
}

// Handler returns the http.Handler backing this server's routes.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

func (s *Server) newEngine() *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/v1")
	{
		v1.POST("/scenarios/:name/sessions", s.handleCreateSession)
		v1.POST("/sessions/:id/step", s.handleStep)
		v1.GET("/sessions/:id/state", s.handleState)
		v1.GET("/sessions/:id/watch", s.handleWatch)
		v1.DELETE("/sessions/:id", s.handleDeleteSession)
	}

	return r
}

func (s *Server) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := s.seed
	s.seed++
	return seed
}

func (s *Server) put(sess *session) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id
}

func (s *Server) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Server) scenario(name string) (*configfile.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.scenarios[name]
	return sc, ok
}
