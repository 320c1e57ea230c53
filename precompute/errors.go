// SPDX-License-Identifier: MIT
// Package precompute: sentinel error set.
package precompute

import "errors"

var (
	// ErrInvalidP indicates p (feature count) is less than 2; p=1 has no
	// non-degenerate coalition and must be handled by the caller directly.
	ErrInvalidP = errors.New("precompute: p must be >= 2")

	// ErrInvalidDegree indicates hybrid degree d is negative or >= p.
	ErrInvalidDegree = errors.New("precompute: degree must be in [0, p)")

	// ErrBackgroundColumnMismatch indicates the background's column count
	// does not equal p.
	ErrBackgroundColumnMismatch = errors.New("precompute: background columns must equal p")
)
