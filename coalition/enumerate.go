// Package coalition: ExactLayer exhaustively enumerates the small-|S| and
// large-|S| coalition sizes of spec §4.3 ("Exact enumeration"), using
// gonum's stat/combin.Combinations to walk each size's index sets instead
// of a hand-rolled recursive subset generator.
package coalition

import "gonum.org/v1/gonum/stat/combin"

// ExactSizes returns the coalition sizes enumerated exactly for hybrid
// degree d over p features: {1,...,d} ∪ {p-d,...,p-1}, or the full range
// {1,...,p-1} once d reaches ⌊p/2⌋ (spec §4.3's "fully exact" case, which
// counts each size once rather than twice).
// Complexity: O(d) time and memory.
func ExactSizes(p, d int) ([]int, bool) {
	fullyExact := d >= p/2
	if fullyExact {
		sizes := make([]int, 0, p-1)
		for s := 1; s <= p-1; s++ {
			sizes = append(sizes, s)
		}

		return sizes, true
	}

	sizes := make([]int, 0, 2*d)
	for s := 1; s <= d; s++ {
		sizes = append(sizes, s)
	}
	for s := p - d; s <= p-1; s++ {
		sizes = append(sizes, s)
	}

	return sizes, false
}

// ExactLayer exhaustively enumerates all indicator rows of the sizes
// ExactSizes(p, d) returns. Each row of size s gets weight ω_s/C(p,s),
// where ω_s comes from fullWeights (the normalized Kernel SHAP weights
// over the full range {1,...,p-1} — spec §4.3: the same normalization
// applies whether or not the layer turns out to be fully exact, since in
// the fully-exact case "the enumerated sizes" and "the full range"
// coincide).
//
// Stage 1 (Validate): p and d in range.
// Stage 2 (Enumerate): for each size s, walk combin.Combinations(p, s).
// Stage 3 (Weight): assign ω_s/C(p,s) to every row of size s.
//
// Complexity: O(m_ex·p) time and memory, m_ex per spec §3's count formula.
func ExactLayer(p, d int, fullWeights map[int]float64) (*Layer, error) {
	if p < 1 {
		return nil, ErrInvalidP
	}
	if d < 0 || d >= p {
		return nil, ErrInvalidDegree
	}
	if p == 1 {
		// No non-degenerate coalition exists; caller handles p=1 directly.
		return &Layer{P: p}, nil
	}

	sizes, _ := ExactSizes(p, d)

	layer := &Layer{P: p}
	for _, s := range sizes {
		omega, ok := fullWeights[s]
		if !ok {
			continue
		}
		count := combin.Binomial(p, s)
		if count <= 0 {
			continue
		}
		rowWeight := omega / float64(count)

		combos := combin.Combinations(p, s)
		for _, idxSet := range combos {
			z := make([]float64, p)
			for _, idx := range idxSet {
				z[idx] = 1.0
			}
			layer.Z = append(layer.Z, z)
			layer.Weights = append(layer.Weights, rowWeight)
		}
	}

	return layer, nil
}
