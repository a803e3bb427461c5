package partls

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/core/parallel"
)

// HomogeneousCoords appends a constant attribute of ones to X and assigns it
// a fresh singleton partition, so the intercept can be fitted as an ordinary
// nonnegative-weighted term α[M+1]·β[K+1] by the same machinery as the real
// partitions. Returns Xo (N×(M+1)) and Po ((M+1)×(K+1)).
func HomogeneousCoords(X mat.Matrix, P *mat.Dense) (Xo, Po *mat.Dense) {
	n, m := X.Dims()
	_, k := P.Dims()

	Xo = mat.NewDense(n, m+1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < m; j++ {
				Xo.Set(i, j, X.At(i, j))
			}
			Xo.Set(i, m, 1)
		}
	})

	Po = mat.NewDense(m+1, k+1, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			Po.Set(i, j, P.At(i, j))
		}
	}
	Po.Set(m, k, 1)

	return Xo, Po
}
