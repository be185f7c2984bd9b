package httpapi

import (
	"encoding/json"

	wfc "github.com/rotorforge/wavecollapse"
)

// stepEvent is the payload pushed to every watcher after a /step call.
type stepEvent struct {
	Result  string `json:"result"`
	Changes []int  `json:"changes"`
}

func encodeStepEvent(result wfc.IterationResult, changes []int) []byte {
	b, err := json.Marshal(stepEvent{Result: result.String(), Changes: changes})
	if err != nil {
		// Marshaling a string and an []int cannot fail.
		return []byte(`{"result":"` + result.String() + `"}`)
	}
	return b
}
