package configfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScenario reads and parses a YAML scenario document from path. It
// does not validate the result; call (*Scenario).Validate or Compile for
// that.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configfile: reading %s: %w", path, err)
	}
	return ParseScenario(raw)
}

// ParseScenario parses a YAML scenario document already in memory, for
// callers that source scenarios from somewhere other than the filesystem
// (an embedded asset, a request body).
func ParseScenario(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("configfile: parsing scenario: %w", err)
	}
	return &s, nil
}
