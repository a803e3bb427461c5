package partls

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/solver"
)

// projectedGradientSolver adapts the solver package's projected-gradient and
// normal-equation routines to the ConvexSolver boundary. It is the factory
// default; callers with an external QP solver inject their own.
type projectedGradientSolver struct {
	constrained *solver.Constrained
}

func (s *projectedGradientSolver) Solve(sub *Subproblem) (*mat.VecDense, float64, error) {
	if sub.Groups != nil {
		return s.constrained.Solve(sub.A, sub.Y, sub.Groups, sub.EtaT)
	}
	return solver.RidgeLS(sub.A, sub.Y, sub.EtaX)
}

// DefaultSolverFactory produces the built-in projected-gradient convex
// solver.
func DefaultSolverFactory() ConvexSolver {
	return &projectedGradientSolver{constrained: solver.NewConstrained()}
}
