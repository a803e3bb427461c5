package partls

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobCheckpointResumeRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")

	saved := FitState{
		Iteration: 7,
		Alpha:     []float64{0.25, 0.75, 1},
		Beta:      []float64{2.5, -1.5},
		T:         0.125,
		Objective: 3.75,
	}
	require.NoError(t, GobCheckpoint(path)(saved))

	def := FitState{Iteration: 0, Objective: math.Inf(1)}
	loaded, err := GobResume(path)(def)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestGobResumeMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gob")

	def := FitState{
		Iteration: 0,
		Alpha:     []float64{0.5, 0.5},
		Beta:      []float64{1},
		Objective: math.Inf(1),
	}
	got, err := GobResume(path)(def)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestGobCheckpointOverwritesPreviousState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")
	sink := GobCheckpoint(path)

	require.NoError(t, sink(FitState{Iteration: 1, Alpha: []float64{1}, Beta: []float64{0}, Objective: 9}))
	require.NoError(t, sink(FitState{Iteration: 2, Alpha: []float64{1}, Beta: []float64{3}, Objective: 4}))

	got, err := GobResume(path)(FitState{})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Iteration)
	assert.Equal(t, 4.0, got.Objective)
}
