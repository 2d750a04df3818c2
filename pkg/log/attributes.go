// Package log defines standard attribute keys for feature-mapping operations.
//
// Using these keys consistently enables structured analysis of fit/transform
// workflows: which mapper ran, how much data it saw, and what it produced.
// The keys follow a hierarchical naming convention (e.g. "data.samples",
// "mapper.features") for filtering in log pipelines.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "Mapper", "OneHotEncoder", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "extract_y"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "mapper", "preprocessing", "pipeline"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of configured feature specs.
	FeaturesKey = "mapper.features"

	// OutputColumnsKey indicates the total width of the combined output.
	OutputColumnsKey = "mapper.output_columns"

	// SparseKey indicates whether the combined output is sparse.
	SparseKey = "mapper.sparse"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "COLUMN_NOT_FOUND"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
const (
	OperationFit          = "fit"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationExtractY     = "extract_y"

	ErrorNotFitted      = "NOT_FITTED"
	ErrorDimension      = "DIMENSION_MISMATCH"
	ErrorColumnNotFound = "COLUMN_NOT_FOUND"
	ErrorEmptyData      = "EMPTY_DATA"
)
