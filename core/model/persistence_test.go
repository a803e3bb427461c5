package model

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name   string
	Values []float64
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.gob")

	in := snapshot{Name: "fit-state", Values: []float64{0.5, 1.5, -2}}
	require.NoError(t, Save(&in, path))

	var out snapshot
	require.NoError(t, Load(&out, path))
	assert.Equal(t, in, out)
}

func TestSaveToWriterLoadFromReader(t *testing.T) {
	in := snapshot{Name: "buffered", Values: []float64{3, 4}}

	var buf bytes.Buffer
	require.NoError(t, SaveToWriter(&in, &buf))

	var out snapshot
	require.NoError(t, LoadFromReader(&out, &buf))
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	var out snapshot
	err := Load(&out, filepath.Join(t.TempDir(), "absent.gob"))
	require.Error(t, err)
}
