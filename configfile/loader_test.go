package configfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorforge/wavecollapse/configfile"
)

const sampleYAML = `
name: checker
width: 4
height: 4
periodic: true
patterns:
  - name: black
    weight: 1
  - name: white
    weight: 1
adjacency:
  black:
    east: [white]
    west: [white]
  white:
    east: [black]
    west: [black]
`

func TestParseScenario_RoundTripsFields(t *testing.T) {
	t.Parallel()

	s, err := configfile.ParseScenario([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "checker", s.Name)
	assert.Equal(t, 4, s.Width)
	assert.True(t, s.Periodic)
	require.Len(t, s.Patterns, 2)
	assert.Equal(t, "black", s.Patterns[0].Name)
	assert.NoError(t, s.Validate())
}

func TestLoadScenario_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "checker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := configfile.LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "checker", s.Name)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := configfile.LoadScenario("/nonexistent/path/scenario.yaml")
	assert.Error(t, err)
}
