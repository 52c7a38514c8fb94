// This file defines standard attribute keys for the fitting pipeline.
// Using these keys keeps log output filterable across packages.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type.
	// Examples: "RSHDMRGPR", "GPR", "MinMaxScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "evaluate", "transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "hdmr", "gpr", "dataset"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Fit progress and hyperparameters.
const (
	// CycleKey is the zero-based index of the current refinement cycle.
	CycleKey = "hdmr.cycle"

	// CombinationsKey is the number of component functions being fit.
	CombinationsKey = "hdmr.combinations"

	// OrderKey is the HDMR order (dimensionality of each component).
	OrderKey = "hdmr.order"

	// AlphaKey is the current regression noise level.
	AlphaKey = "gpr.alpha"

	// LengthScaleKey is the current RBF kernel length-scale.
	LengthScaleKey = "gpr.length_scale"

	// RMSEKey is a root-mean-square error value.
	RMSEKey = "metric.rmse"
)
