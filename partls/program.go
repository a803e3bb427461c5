package partls

import (
	"gonum.org/v1/gonum/mat"
)

// Program is the encoded fitting problem consumed by a ConvexSolver: decision
// variables α (nonnegative, Pᵀα = 1), β and t, with objective
//
//	‖X·(P⊙α)·β + t − y‖² + η·(‖β‖² + t²)
//
// The alternating loop derives one Subproblem per half-step from it.
type Program struct {
	X   mat.Matrix
	Y   *mat.VecDense
	P   *mat.Dense
	Eta float64

	groups [][]int
}

// NewProgram encodes X, y, P and the regularization weight η into a program
// handle.
func NewProgram(X mat.Matrix, y *mat.VecDense, P *mat.Dense, eta float64) *Program {
	return &Program{X: X, Y: y, P: P, Eta: eta, groups: partitionGroups(P)}
}

// Subproblem is one half-step quadratic program of the alternating scheme:
//
//	minimize ‖A·x + t − y‖² + EtaX·‖x‖² + EtaT·t²
//
// subject to x ≥ 0 and per-group Σx = 1 when Groups is non-nil, and
// unconstrained otherwise.
type Subproblem struct {
	A      *mat.Dense
	Y      *mat.VecDense
	Groups [][]int
	EtaX   float64
	EtaT   float64
}

// AlphaStep builds the α/t half-step with β held fixed: the design column for
// attribute m is X[:,m] scaled by its partition's current β value. The ridge
// term on β is constant under fixed β, so only t is regularized.
func (p *Program) AlphaStep(beta *mat.VecDense) *Subproblem {
	return &Subproblem{
		A:      scaleColumns(p.X, attributeScales(p.P, beta)),
		Y:      p.Y,
		Groups: p.groups,
		EtaT:   p.Eta,
	}
}

// BetaStep builds the β/t half-step with α held fixed: the design is
// X·(P⊙α), unconstrained, with the ridge weight applied to β and t.
func (p *Program) BetaStep(alpha *mat.VecDense) *Subproblem {
	return &Subproblem{
		A:    groupedDesign(p.X, alpha, p.P),
		Y:    p.Y,
		EtaX: p.Eta,
		EtaT: p.Eta,
	}
}

// Objective evaluates the full regularized objective at (α, β, t).
func (p *Program) Objective(alpha, beta *mat.VecDense, t float64) float64 {
	b := groupedDesign(p.X, alpha, p.P)
	n, _ := b.Dims()
	var loss float64
	for i := 0; i < n; i++ {
		var pred float64
		for j := 0; j < beta.Len(); j++ {
			pred += b.At(i, j) * beta.AtVec(j)
		}
		d := pred + t - p.Y.AtVec(i)
		loss += d * d
	}
	var reg float64
	for j := 0; j < beta.Len(); j++ {
		reg += beta.AtVec(j) * beta.AtVec(j)
	}
	return loss + p.Eta*(reg+t*t)
}

// ConvexSolver is the capability boundary of the convex variant: build one
// constrained quadratic half-step, solve it, and report the optimal free
// block and intercept. Any failure or non-convergence status is returned
// as-is; the fit loop performs no retry.
type ConvexSolver interface {
	Solve(sub *Subproblem) (x *mat.VecDense, t float64, err error)
}

// SolverFactory produces a fresh ConvexSolver for one fit.
type SolverFactory func() ConvexSolver

// NNLSBackend is the capability boundary for the nonnegative least-squares
// half-step: solve min ‖A·x − b‖² subject to x ≥ 0.
type NNLSBackend interface {
	SolveNNLS(A mat.Matrix, b *mat.VecDense) (*mat.VecDense, error)
}

// LSQBackend is the capability boundary for the ordinary least-squares
// half-step: solve min ‖A·x − b‖².
type LSQBackend interface {
	SolveLSQ(A mat.Matrix, b *mat.VecDense) (*mat.VecDense, error)
}
