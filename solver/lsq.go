// Package solver provides the default numeric backends for partls fits:
// QR/LQ-based least squares, projected-gradient nonnegative least squares and
// a projected-gradient solver for the simplex-constrained half-steps. All
// backends are deterministic for a given input.
package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
)

// LSQ solves ordinary least-squares problems by orthogonal factorization:
// QR for tall systems, LQ (minimum-norm solution) for wide ones.
type LSQ struct{}

// NewLSQ creates the default least-squares backend.
func NewLSQ() *LSQ {
	return &LSQ{}
}

// SolveLSQ returns the x minimizing ‖A·x − b‖². For underdetermined systems
// the minimum-norm solution is returned.
func (s *LSQ) SolveLSQ(A mat.Matrix, b *mat.VecDense) (*mat.VecDense, error) {
	r, c := A.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("LSQ.SolveLSQ", "empty design", errors.ErrEmptyData)
	}
	if b.Len() != r {
		return nil, errors.NewDimensionError("LSQ.SolveLSQ", r, b.Len(), 0)
	}

	x := mat.NewVecDense(c, nil)
	if r >= c {
		var qr mat.QR
		qr.Factorize(A)
		if err := qr.SolveVecTo(x, false, b); err != nil {
			return nil, errors.NewModelError("LSQ.SolveLSQ", "QR solve failed", err)
		}
		return x, nil
	}

	var lq mat.LQ
	lq.Factorize(A)
	if err := lq.SolveVecTo(x, false, b); err != nil {
		return nil, errors.NewModelError("LSQ.SolveLSQ", "LQ solve failed", err)
	}
	return x, nil
}
