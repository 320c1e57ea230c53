// SPDX-License-Identifier: MIT
// Package shap: sentinel error set (spec §7).
//
// ERROR PRIORITY: InvalidShape -> InvalidPredictionKind ->
// PredictionShapeMismatch -> SingularSystem -> Cancelled are fatal and
// abort the explanation. NonConverged is informational: ExplainOne never
// returns it as an error, it surfaces as Result.Converged == false.
package shap

import (
	"errors"

	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/katalvlaran-labs/shapkit/mask"
)

var (
	// ErrInvalidShape indicates x is not length p, or background columns
	// are misaligned with x. Re-exported from mask for caller convenience.
	ErrInvalidShape = mask.ErrInvalidShape

	// ErrInvalidPredictionKind indicates f returned non-numeric output.
	ErrInvalidPredictionKind = mask.ErrInvalidPredictionKind

	// ErrPredictionShapeMismatch indicates f's output row/column count did
	// not match expectation.
	ErrPredictionShapeMismatch = mask.ErrPredictionShapeMismatch

	// ErrSingularSystem indicates the constrained solve found a singular
	// system (1ᵗA⁺1 = 0) — a precomputation bug, not a data issue (spec §7).
	// Re-exported from linalg (ErrSingularConstraint), which is what the
	// solver returns.
	ErrSingularSystem = linalg.ErrSingularConstraint

	// ErrNonConverged documents the informational stopping condition spec
	// §7 describes; ExplainOne never returns it, callers inspect
	// Result.Converged instead.
	ErrNonConverged = errors.New("shap: max_iter reached without satisfying tol")

	// ErrCancelled indicates ctx was cancelled or timed out at an
	// iteration boundary (SPEC_FULL §6.2).
	ErrCancelled = errors.New("shap: cancelled")

	// ErrInvalidOptions indicates Options failed validation: HybridDegree
	// outside [0, p), or, when Exact is not set, M < 2, Tol <= 0 or
	// MaxIter < 1.
	ErrInvalidOptions = errors.New("shap: invalid options")
)
