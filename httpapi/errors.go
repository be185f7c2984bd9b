package httpapi

import "errors"

// Sentinel errors for this package's own boundary validation. Model
// construction errors (wavecollapse.Err*) and configfile validation
// errors (configfile.Err*) are mapped alongside these in writeError.
var (
	// ErrUnknownScenario indicates the named scenario isn't registered
	// and no inline scenario body was supplied.
	ErrUnknownScenario = errors.New("httpapi: unknown scenario")

	// ErrSessionNotFound indicates the path's session id has no live
	// session (never created, or already deleted).
	ErrSessionNotFound = errors.New("httpapi: session not found")
)
