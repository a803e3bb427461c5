// Package partls fits partitioned least squares regression models: linear
// models whose attributes are grouped into partitions, each attribute
// carrying a nonnegative weight α that sums to one within its partition and
// each partition a signed coefficient β. The decomposition makes the fitted
// model directly interpretable: β tells how much a group matters and with
// which sign, α how the group's mass is distributed over its attributes.
//
// The model
//
//	y ≈ X·(P⊙α)·β + t
//
// is fitted by alternating block-coordinate descent with a fixed iteration
// budget. Two variants are available: VariantNNLS reduces each α half-step to
// nonnegative least squares on a homogeneous-coordinate transform of the
// problem, and VariantConvex delegates both half-steps to an injected convex
// solver and supports ridge regularization. Numeric backends, checkpoint
// sinks and resume sources are all injected capabilities, so long fits can be
// interrupted and continued and backends can be swapped for deterministic
// fakes in tests.
//
// # Quick start
//
//	P := mat.NewDense(3, 2, []float64{
//		1, 0,
//		1, 0,
//		0, 1,
//	})
//	reg := partls.NewRegression(P, partls.WithIterations(50), partls.WithSeed(42))
//	if err := reg.Fit(X, y); err != nil {
//		log.Fatal(err)
//	}
//	yhat, _ := reg.Predict(X)
package partls
