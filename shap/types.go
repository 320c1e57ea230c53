// Package shap: public types re-exported from the lower layers so callers
// of this package rarely need to import coalition/mask/linalg directly.
package shap

import (
	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/katalvlaran-labs/shapkit/mask"
)

// Table is the background/masked-row capability (spec §9 "MaskableTable").
type Table = mask.Table

// PredictContext is the typed, opaque configuration forwarded verbatim to
// PredictFunc (spec §9).
type PredictContext = mask.PredictContext

// Prediction is one PredictFunc call's output.
type Prediction = mask.Prediction

// PredictFunc is the external, black-box model adapter (spec §6).
type PredictFunc = mask.PredictFunc

// NewMatrixTable builds the homogeneous, numeric-fast-path background/x
// table (spec §6 "a homogeneous numeric matrix").
var NewMatrixTable = mask.NewMatrixTable

// NewRowTable builds the heterogeneous, per-column background/x table
// (spec §6 "a heterogeneous table").
var NewRowTable = mask.NewRowTable

// Result is ExplainOne's return value (spec §6 driver contract).
type Result struct {
	// Beta is the p×K attribution matrix; each column sums to v1[k]-v0[k].
	Beta linalg.Matrix

	// Sigma is the p×K per-entry standard error (all zero for the exact
	// strategy).
	Sigma linalg.Matrix

	// NIter is the number of sampling iterations run (1 for the exact
	// strategy).
	NIter int

	// Converged reports whether the stopping criterion (spec §4.7) was
	// satisfied before MaxIter was reached.
	Converged bool

	// Strategy reports which branch of spec §4.6 was taken.
	Strategy Strategy
}
