package partls

import (
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/core/model"
)

// FitState is the per-iteration snapshot exchanged with the checkpoint and
// resume boundary. Alpha and Beta have the public lengths M and K; for the
// NNLS variant T carries the recovered intercept β[K+1]·α[M+1]. The type is
// gob- and JSON-serializable.
type FitState struct {
	Iteration int       `json:"iteration"`
	Alpha     []float64 `json:"alpha"`
	Beta      []float64 `json:"beta"`
	T         float64   `json:"t"`
	Objective float64   `json:"objective"`
}

// CheckpointFunc receives the fit state after every completed iteration.
// A returned error aborts the fit.
type CheckpointFunc func(state FitState) error

// ResumeFunc is consulted once at the start of a fit with the default initial
// state and returns the state to start from. IdentityResume makes the fit
// start fresh; a source returning a previously checkpointed state continues
// that run.
type ResumeFunc func(def FitState) (FitState, error)

// NopCheckpoint discards the state.
func NopCheckpoint(FitState) error { return nil }

// IdentityResume returns the default state unchanged.
func IdentityResume(def FitState) (FitState, error) { return def, nil }

// GobCheckpoint returns a checkpoint sink that gob-encodes each state to
// path, overwriting the previous iteration's snapshot.
func GobCheckpoint(path string) CheckpointFunc {
	return func(state FitState) error {
		return model.Save(&state, path)
	}
}

// vecSlice copies the contents of v into a fresh slice, so checkpoint states
// never alias optimizer-owned vectors.
func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// headSlice copies the first n entries of v.
func headSlice(v *mat.VecDense, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// GobResume returns a resume source that loads a state previously written by
// GobCheckpoint. When path does not exist the default state is returned, so
// the first run of a checkpointed fit needs no special casing.
func GobResume(path string) ResumeFunc {
	return func(def FitState) (FitState, error) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return def, nil
		}
		var state FitState
		if err := model.Load(&state, path); err != nil {
			return def, err
		}
		return state, nil
	}
}
