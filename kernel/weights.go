// Package kernel: Weights computes the normalized Kernel SHAP subset-size
// weight distribution over a caller-chosen index set of coalition sizes.
package kernel

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// LogBinomial returns log(C(p, s)), the log-binomial-coefficient spec §4.2
// asks implementations to use to avoid overflow for large p.
// Complexity: O(1) (gonum's combin uses log-gamma internally).
func LogBinomial(p, s int) float64 {
	return combin.LogGeneralizedBinomial(float64(p), float64(s))
}

// Binomial returns C(p, s) as a float64. The value is computed as an int
// by gonum's combin.Binomial and then converted, so it is exact only while
// C(p, s) fits in an int and is never +Inf; callers computing ratios of
// binomials should prefer the log-space path in Weights rather than this
// function directly.
// Complexity: O(1).
func Binomial(p, s int) float64 {
	return float64(combin.Binomial(p, s))
}

// logUnnormalizedWeight returns log(ω'_s) = log(p-1) − logC(p,s) − log(s) − log(p-s).
func logUnnormalizedWeight(p, s int) float64 {
	return math.Log(float64(p-1)) - LogBinomial(p, s) - math.Log(float64(s)) - math.Log(float64(p-s))
}

// Weights computes normalized Kernel SHAP weights ω_s for each size in
// sizes, a subset of {1,...,p-1}. The returned map's values sum to 1.
//
// Stage 1 (Validate): p >= 1, sizes non-empty and each in [1, p-1] (so
// for p=1, where no non-degenerate size exists, every size is rejected).
// Stage 2 (Compute): per-size log-weight via logUnnormalizedWeight.
// Stage 3 (Normalize): log-sum-exp for numerical stability, then exponentiate.
//
// Complexity: O(len(sizes)) calls into gonum's log-gamma-based binomial.
func Weights(p int, sizes []int) (map[int]float64, error) {
	if p < 1 {
		return nil, ErrInvalidP
	}
	if len(sizes) == 0 {
		return nil, ErrEmptySizeSet
	}
	for _, s := range sizes {
		if s < 1 || s > p-1 {
			return nil, ErrInvalidSize
		}
	}

	logW := make(map[int]float64, len(sizes))
	maxLog := math.Inf(-1)
	for _, s := range sizes {
		lw := logUnnormalizedWeight(p, s)
		logW[s] = lw
		if lw > maxLog {
			maxLog = lw
		}
	}

	// Stage 3: log-sum-exp normalization.
	var sumExp float64
	for _, lw := range logW {
		sumExp += math.Exp(lw - maxLog)
	}
	logTotal := maxLog + math.Log(sumExp)

	out := make(map[int]float64, len(sizes))
	for _, s := range sizes {
		out[s] = math.Exp(logW[s] - logTotal)
	}

	return out, nil
}

// FullRange computes normalized weights over the complete size set
// S = {1, ..., p-1}, the "full-range normalization" spec §4.3 refers to
// when rescaling exact-layer mass in hybrid mode.
func FullRange(p int) (map[int]float64, error) {
	if p < 2 {
		return nil, ErrInvalidP
	}
	sizes := make([]int, 0, p-1)
	for s := 1; s <= p-1; s++ {
		sizes = append(sizes, s)
	}

	return Weights(p, sizes)
}

// SizesSorted returns the keys of a size→weight map in ascending order,
// useful for deterministic iteration (map iteration order is not stable).
func SizesSorted(w map[int]float64) []int {
	out := make([]int, 0, len(w))
	for s := range w {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}
