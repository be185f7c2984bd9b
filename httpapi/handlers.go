package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	wfc "github.com/rotorforge/wavecollapse"
	"github.com/rotorforge/wavecollapse/configfile"
)

// createSessionRequest is the optional inline scenario body for
// POST /v1/scenarios/:name/sessions. When present it is compiled in place
// of any catalog entry registered under :name.
type createSessionRequest struct {
	Scenario *configfile.Scenario `json:"scenario"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	name := c.Param("name")

	var req createSessionRequest
	// A missing or empty body is fine: it just means "use the catalog
	// entry". Only a malformed non-empty body is an error.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, err)
			return
		}
	}

	scenario := req.Scenario
	if scenario == nil {
		found, ok := s.scenario(name)
		if !ok {
			writeError(c, ErrUnknownScenario)
			return
		}
		scenario = found
	}

	args, err := scenario.Compile()
	if err != nil {
		writeError(c, err)
		return
	}

	opts := []wfc.Option{wfc.WithPeriodic(args.Periodic)}
	if args.StartBias != 0 || args.StartX != 0 || args.StartY != 0 {
		opts = append(opts, wfc.WithSpatialBias(args.StartBias, args.StartX, args.StartY))
	}

	model, err := wfc.NewModel(args.Width, args.Height, args.TCount, args.Weights,
		args.PropData, args.PropOffsets, args.PropLengths, opts...)
	if err != nil {
		writeError(c, err)
		return
	}

	sess := newSession(model, s.nextSeed())
	id := s.put(sess)

	c.JSON(http.StatusOK, gin.H{"session_id": id})
}

func (s *Server) handleStep(c *gin.Context) {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		writeError(c, ErrSessionNotFound)
		return
	}

	result, changes := sess.step()
	_, filled, _ := sess.state()

	c.JSON(http.StatusOK, gin.H{
		"result":         result.String(),
		"filled_percent": filled,
		"changes":        changes,
	})
}

func (s *Server) handleState(c *gin.Context) {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		writeError(c, ErrSessionNotFound)
		return
	}

	observed, filled, complete := sess.state()
	c.JSON(http.StatusOK, gin.H{
		"observed":       observed,
		"filled_percent": filled,
		"is_complete":    complete,
	})
}

func (s *Server) handleWatch(c *gin.Context) {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		writeError(c, ErrSessionNotFound)
		return
	}
	sess.hub.subscribe(c)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if !s.delete(c.Param("id")) {
		writeError(c, ErrSessionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps a boundary error to its HTTP status: a missing session
// is 404, everything else this package or its collaborators can return is
// a client contract violation and maps to 400.
func writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
