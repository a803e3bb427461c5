package partls

// Option is a function that configures a Regression.
type Option func(*Regression)

// WithVariant selects the fitting algorithm. The fitted attributes have the
// same shape for every variant.
func WithVariant(v Variant) Option {
	return func(r *Regression) {
		r.variant = v
	}
}

// WithIterations sets the fixed iteration budget of the alternating loop.
// There is no internal convergence test; the loop always runs the full budget.
func WithIterations(n int) Option {
	return func(r *Regression) {
		r.nIter = n
	}
}

// WithRegularization sets the ridge weight η on β and t. The NNLS variant
// does not support a ridge term; a nonzero η is warned about and ignored
// there.
func WithRegularization(eta float64) Option {
	return func(r *Regression) {
		r.eta = eta
	}
}

// WithSeed sets the seed of the randomized initialization, making fits
// reproducible.
func WithSeed(seed int64) Option {
	return func(r *Regression) {
		r.seed = seed
	}
}

// WithFakeRun makes Fit return immediately with no computation and no side
// effects, for validating call wiring.
func WithFakeRun(fake bool) Option {
	return func(r *Regression) {
		r.fakeRun = fake
	}
}

// WithSolverFactory injects the convex-solver capability used by the convex
// variant. A fresh solver is produced per fit.
func WithSolverFactory(factory SolverFactory) Option {
	return func(r *Regression) {
		r.factory = factory
	}
}

// WithNNLSBackend injects the nonnegative least-squares capability used by
// the NNLS variant's α half-step.
func WithNNLSBackend(backend NNLSBackend) Option {
	return func(r *Regression) {
		r.nnls = backend
	}
}

// WithLSQBackend injects the ordinary least-squares capability used by the
// NNLS variant's β half-step.
func WithLSQBackend(backend LSQBackend) Option {
	return func(r *Regression) {
		r.lsq = backend
	}
}

// WithCheckpoint injects the checkpoint sink invoked after every iteration.
func WithCheckpoint(sink CheckpointFunc) Option {
	return func(r *Regression) {
		r.checkpoint = sink
	}
}

// WithResume injects the resume source consulted at the start of a fit.
func WithResume(source ResumeFunc) Option {
	return func(r *Regression) {
		r.resume = source
	}
}
