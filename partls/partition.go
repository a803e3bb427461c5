package partls

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/core/parallel"
)

// Row count above which scaled-design construction is parallelized.
const parallelThreshold = 1000

// partitionSums returns sums[k] = Σ_m P[m,k]·α[m], the weighted mass of each
// partition under the current α.
func partitionSums(alpha *mat.VecDense, P *mat.Dense) []float64 {
	m, k := P.Dims()
	sums := make([]float64, k)
	for j := 0; j < k; j++ {
		for i := 0; i < m; i++ {
			sums[j] += P.At(i, j) * alpha.AtVec(i)
		}
	}
	return sums
}

// partitionGroups returns, for each partition, the indices of its member
// attributes. Membership is P[m,k] == 1; rows that are not one-hot are taken
// as they come.
func partitionGroups(P *mat.Dense) [][]int {
	m, k := P.Dims()
	groups := make([][]int, k)
	for j := 0; j < k; j++ {
		for i := 0; i < m; i++ {
			if P.At(i, j) == 1 {
				groups[j] = append(groups[j], i)
			}
		}
	}
	return groups
}

// Repair redistributes unit mass across any partition whose weighted sum
// collapsed to zero: every member of such a partition is set to 1/c, where c
// is the partition's member count. All other entries of alpha are left
// untouched. alpha is modified in place and returned.
//
// A partition with no members assigns the (divided-by-zero) fallback weight
// to nobody, so its sum stays zero.
func Repair(alpha *mat.VecDense, P *mat.Dense) *mat.VecDense {
	m, k := P.Dims()
	sums := partitionSums(alpha, P)
	for j := 0; j < k; j++ {
		if sums[j] != 0 {
			continue
		}
		count := 0
		for i := 0; i < m; i++ {
			if P.At(i, j) == 1 {
				count++
			}
		}
		w := 1 / float64(count)
		for i := 0; i < m; i++ {
			if P.At(i, j) == 1 {
				alpha.SetVec(i, w)
			}
		}
	}
	return alpha
}

// attributeScales returns s[m] = Σ_k P[m,k]·β[k]: the β value of attribute
// m's partition, collapsed from P's one-hot row.
func attributeScales(P *mat.Dense, beta *mat.VecDense) *mat.VecDense {
	m, k := P.Dims()
	s := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		var v float64
		for j := 0; j < k; j++ {
			v += P.At(i, j) * beta.AtVec(j)
		}
		s.SetVec(i, v)
	}
	return s
}

// scaleColumns returns a copy of X with column m scaled by s[m].
func scaleColumns(X mat.Matrix, s *mat.VecDense) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, j, X.At(i, j)*s.AtVec(j))
			}
		}
	})
	return out
}

// groupedDesign returns B = X·(P⊙α), the N×K design of the β half-step:
// column k aggregates the α-weighted attributes of partition k.
func groupedDesign(X mat.Matrix, alpha *mat.VecDense, P *mat.Dense) *mat.Dense {
	scaled := scaleColumns(X, alpha)
	r, _ := X.Dims()
	_, k := P.Dims()
	out := mat.NewDense(r, k, nil)
	out.Mul(scaled, P)
	return out
}
