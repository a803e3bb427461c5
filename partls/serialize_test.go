package partls

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestExportImportParamsRoundtrip(t *testing.T) {
	X, y, P := twoGroupData(40)

	reg := NewRegression(P, WithIterations(10), WithSeed(7))
	require.NoError(t, reg.Fit(X, y))

	var buf bytes.Buffer
	require.NoError(t, reg.ExportParams(&buf))

	restored := NewRegression(nil)
	require.NoError(t, restored.ImportParams(&buf))

	assert.True(t, restored.IsFitted())
	assert.Equal(t, reg.Intercept, restored.Intercept)
	assert.Equal(t, reg.Objective, restored.Objective)
	assert.True(t, mat.Equal(reg.Alpha, restored.Alpha))
	assert.True(t, mat.Equal(reg.Beta, restored.Beta))
	assert.True(t, mat.Equal(reg.P, restored.P))

	// The restored model predicts identically.
	want, err := reg.Predict(X)
	require.NoError(t, err)
	got, err := restored.Predict(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}

func TestExportParamsRequiresFit(t *testing.T) {
	_, _, P := twoGroupData(4)
	reg := NewRegression(P)

	var buf bytes.Buffer
	err := reg.ExportParams(&buf)
	require.Error(t, err)
}

func TestExportParamsFile(t *testing.T) {
	X, y, P := twoGroupData(30)
	path := filepath.Join(t.TempDir(), "model.json")

	reg := NewRegression(P, WithIterations(5))
	require.NoError(t, reg.Fit(X, y))
	require.NoError(t, reg.ExportParamsFile(path))

	restored := NewRegression(nil)
	require.NoError(t, restored.ImportParamsFile(path))
	assert.Equal(t, reg.Intercept, restored.Intercept)
}

func TestImportParamsRejectsMalformedEnvelope(t *testing.T) {
	cases := map[string]string{
		"truncated json":  `{"format_version": "1.0"`,
		"zero dimensions": `{"format_version": "1.0", "n_attributes": 0, "n_partitions": 0}`,
		"alpha size":      `{"format_version": "1.0", "n_attributes": 3, "n_partitions": 1, "alpha": [1], "beta": [1], "partition": [1, 1, 1]}`,
		"beta size":       `{"format_version": "1.0", "n_attributes": 2, "n_partitions": 2, "alpha": [1, 1], "beta": [1], "partition": [1, 0, 0, 1]}`,
		"partition size":  `{"format_version": "1.0", "n_attributes": 2, "n_partitions": 2, "alpha": [1, 1], "beta": [1, 1], "partition": [1, 0]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			reg := NewRegression(nil)
			err := reg.ImportParams(bytes.NewBufferString(payload))
			require.Error(t, err)
			assert.False(t, reg.IsFitted())
		})
	}
}
