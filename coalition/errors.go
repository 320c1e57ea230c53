// SPDX-License-Identifier: MIT
// Package coalition: sentinel error set.
package coalition

import "errors"

var (
	// ErrInvalidP indicates p (feature count) is less than 1.
	ErrInvalidP = errors.New("coalition: p must be >= 1")

	// ErrInvalidDegree indicates hybrid degree d is negative or >= p.
	ErrInvalidDegree = errors.New("coalition: degree must be in [0, p)")

	// ErrInvalidM indicates a requested sample count m is < 1, or (when
	// paired sampling is requested) cannot be rounded to an even count
	// without becoming 0.
	ErrInvalidM = errors.New("coalition: m must be >= 1")

	// ErrNoSampleableSizes indicates hybrid degree d leaves no middle
	// layer to sample from (the caller should use the exact path instead).
	ErrNoSampleableSizes = errors.New("coalition: no sampleable sizes remain")

	// ErrNilRNG indicates a nil *rand.Rand was passed where determinism
	// requires an explicit, caller-owned source (spec §5).
	ErrNilRNG = errors.New("coalition: rng must not be nil")
)
