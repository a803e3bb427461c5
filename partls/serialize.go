package partls

import (
	"encoding/json"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
)

// modelParams is the JSON envelope of a fitted model.
type modelParams struct {
	FormatVersion string    `json:"format_version"`
	NAttributes   int       `json:"n_attributes"`
	NPartitions   int       `json:"n_partitions"`
	Alpha         []float64 `json:"alpha"`
	Beta          []float64 `json:"beta"`
	Intercept     float64   `json:"intercept"`
	Objective     float64   `json:"objective"`
	Partition     []float64 `json:"partition"` // row-major M×K
}

const paramsFormatVersion = "1.0"

// ExportParams writes the fitted parameters as JSON.
func (r *Regression) ExportParams(w io.Writer) error {
	if !r.state.IsFitted() {
		return errors.NewNotFittedError("Regression", "ExportParams")
	}

	m, k := r.P.Dims()
	params := modelParams{
		FormatVersion: paramsFormatVersion,
		NAttributes:   m,
		NPartitions:   k,
		Alpha:         vecSlice(r.Alpha),
		Beta:          vecSlice(r.Beta),
		Intercept:     r.Intercept,
		Objective:     r.Objective,
		Partition:     append([]float64(nil), r.P.RawMatrix().Data...),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&params); err != nil {
		return errors.Wrap(err, "failed to encode model params")
	}
	return nil
}

// ExportParamsFile writes the fitted parameters as JSON to filename.
func (r *Regression) ExportParamsFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()
	return r.ExportParams(file)
}

// ImportParams loads fitted parameters previously written by ExportParams.
// The partition matrix is restored from the envelope and the model is marked
// fitted.
func (r *Regression) ImportParams(rd io.Reader) error {
	var params modelParams
	if err := json.NewDecoder(rd).Decode(&params); err != nil {
		return errors.Wrap(err, "failed to decode model params")
	}
	if params.NAttributes <= 0 || params.NPartitions <= 0 {
		return errors.NewValidationError("params", "non-positive dimensions", params)
	}
	if len(params.Alpha) != params.NAttributes {
		return errors.NewDimensionError("Regression.ImportParams", params.NAttributes, len(params.Alpha), 1)
	}
	if len(params.Beta) != params.NPartitions {
		return errors.NewDimensionError("Regression.ImportParams", params.NPartitions, len(params.Beta), 1)
	}
	if len(params.Partition) != params.NAttributes*params.NPartitions {
		return errors.NewValidationError("partition", "size does not match dimensions", len(params.Partition))
	}

	r.P = mat.NewDense(params.NAttributes, params.NPartitions, params.Partition)
	r.Alpha = mat.NewVecDense(params.NAttributes, params.Alpha)
	r.Beta = mat.NewVecDense(params.NPartitions, params.Beta)
	r.Intercept = params.Intercept
	r.Objective = params.Objective

	r.state.SetDimensions(0, params.NAttributes, params.NPartitions)
	r.state.SetFitted()
	return nil
}

// ImportParamsFile loads fitted parameters from a JSON file.
func (r *Regression) ImportParamsFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()
	return r.ImportParams(file)
}
