// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All algorithms in this package MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors in
// private helpers; public entry points never panic on caller data.
package linalg

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed to an operation.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingularConstraint indicates the constrained solver's denominator
	// (1ᵗ A⁺ 1) vanished, which signals a precomputation bug rather than a
	// data issue (spec: SingularSystem).
	ErrSingularConstraint = errors.New("linalg: singular constrained system")
)
