package log

// Standard attribute keys for partitioned least squares fit operations.
// Using these keys keeps structured logs filterable across the optimizer,
// the numeric backends and the checkpoint boundary.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "Regression".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// VariantKey names the fitting algorithm in use.
	// Standard values: "alt_convex", "alt_nnls".
	VariantKey = "ml.variant"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "partls", "solver", "metrics"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) in the design matrix.
	SamplesKey = "data.samples"

	// AttributesKey is the number of attributes (columns) in the design matrix.
	AttributesKey = "data.attributes"

	// PartitionsKey is the number of attribute groups in the partition matrix.
	PartitionsKey = "data.partitions"
)

// Fit progress.
const (
	// IterationKey is the current outer iteration of the alternating loop.
	IterationKey = "fit.iteration"

	// ObjectiveKey is the objective value at the end of an iteration.
	ObjectiveKey = "fit.objective"

	// SeedKey is the seed of the random initialization.
	SeedKey = "fit.seed"

	// DurationMsKey is the wall-clock duration of an operation in milliseconds.
	DurationMsKey = "duration.ms"
)
