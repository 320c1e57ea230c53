// SPDX-License-Identifier: MIT
// Package mask: sentinel error set.
package mask

import "errors"

var (
	// ErrInvalidShape indicates x is not 1×p, Z is not m×p, or the
	// background's column count does not match x's.
	ErrInvalidShape = errors.New("mask: invalid shape")

	// ErrInvalidPredictionKind indicates the prediction function returned a
	// malformed (not row-major Rows*Cols sized) value.
	ErrInvalidPredictionKind = errors.New("mask: prediction returned non-numeric or malformed output")

	// ErrPredictionShapeMismatch indicates the prediction function's row
	// count did not match the number of masked rows requested.
	ErrPredictionShapeMismatch = errors.New("mask: prediction row/column count mismatch")

	// ErrNilTable indicates a nil Table was passed where one was required.
	ErrNilTable = errors.New("mask: nil table")

	// ErrIndexOutOfBounds indicates an out-of-range row/column access.
	ErrIndexOutOfBounds = errors.New("mask: index out of bounds")
)
