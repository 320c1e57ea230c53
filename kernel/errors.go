// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
package kernel

import "errors"

var (
	// ErrInvalidP indicates p (feature count) is less than 1 (Weights) or
	// less than 2 (FullRange).
	ErrInvalidP = errors.New("kernel: p must be >= 1 (>= 2 for FullRange)")

	// ErrInvalidSize indicates a requested subset size is outside [1, p-1].
	ErrInvalidSize = errors.New("kernel: subset size must be in [1, p-1]")

	// ErrEmptySizeSet indicates the requested index set S was empty.
	ErrEmptySizeSet = errors.New("kernel: size set is empty")
)
