// Package precompute: Build assembles the Precomputed cache for a given
// (p, hybrid degree, background) combination, independent of x, f, or any
// particular iteration's sampled layer (spec §4.5).
package precompute

import (
	"github.com/katalvlaran-labs/shapkit/coalition"
	"github.com/katalvlaran-labs/shapkit/kernel"
	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/katalvlaran-labs/shapkit/mask"
)

// Precomputed holds everything C6 (the driver) reuses across the exact
// pass and every sampling iteration of one explanation.
type Precomputed struct {
	P      int
	Degree int

	// FullWeights are the normalized Kernel SHAP weights ω_s over the full
	// range S = {1,...,p-1} (spec §4.5).
	FullWeights map[int]float64

	// Exact is the exhaustively enumerated small/large layer for Degree.
	Exact *coalition.Layer

	// AExact is Exact's contribution to the spec §3 "A matrix".
	AExact linalg.Matrix

	// FullyExact is true when Degree >= ⌊P/2⌋, i.e. Exact already covers
	// every non-degenerate coalition and no sampling is needed.
	FullyExact bool

	// Background and BackgroundWeights are carried through unmodified;
	// every masker call in the driver's loop reads them directly rather
	// than through a materialized per-iteration stack (see doc.go).
	Background        mask.Table
	BackgroundWeights []float64
}

// Build validates inputs and assembles a Precomputed cache.
//
// Stage 1 (Validate): p >= 2, degree in [0, p), background column count.
// Stage 2 (Kernel weights): full-range ω_s via kernel.FullRange.
// Stage 3 (Exact layer): enumerate via coalition.ExactLayer, fold into A_exact.
//
// Complexity: O(m_ex·p²) time, O(m_ex·p + p²) memory, dominated by
// ExactLayer's enumeration and its A() fold.
func Build(p, degree int, bg mask.Table, bgWeights []float64) (*Precomputed, error) {
	if p < 2 {
		return nil, ErrInvalidP
	}
	if degree < 0 || degree >= p {
		return nil, ErrInvalidDegree
	}
	if bg == nil || bg.Cols() != p {
		return nil, ErrBackgroundColumnMismatch
	}

	fullWeights, err := kernel.FullRange(p)
	if err != nil {
		return nil, err
	}

	exact, err := coalition.ExactLayer(p, degree, fullWeights)
	if err != nil {
		return nil, err
	}

	aExact, err := exact.A()
	if err != nil {
		return nil, err
	}

	return &Precomputed{
		P:                 p,
		Degree:            degree,
		FullWeights:       fullWeights,
		Exact:             exact,
		AExact:            aExact,
		FullyExact:        degree >= p/2,
		Background:        bg,
		BackgroundWeights: bgWeights,
	}, nil
}
