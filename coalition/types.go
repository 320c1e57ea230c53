// Package coalition: Layer is the shared representation of a batch of
// coalition indicator rows plus their per-row contribution weight.
package coalition

import "github.com/katalvlaran-labs/shapkit/linalg"

// Layer holds m indicator rows of length p and their per-row weights.
// Z[i] is the indicator row for sample i; Weights[i] is the weight used
// identically for the A-matrix and b-vector contributions of that row
// (spec §3 invariant 2).
type Layer struct {
	P       int
	Z       [][]float64
	Weights []float64
}

// M returns the number of rows in the layer.
func (l *Layer) M() int {
	if l == nil {
		return 0
	}

	return len(l.Z)
}

// A assembles Σ_i Weights[i]·Z[i]·Z[i]ᵗ, the layer's contribution to the
// spec §3 "A matrix".
// Complexity: O(m·p²) time, O(p²) memory.
func (l *Layer) A() (linalg.Matrix, error) {
	dst, err := linalg.NewDense(l.P, l.P)
	if err != nil {
		return nil, err
	}
	for i, z := range l.Z {
		if err := linalg.OuterAdd(dst, z, l.Weights[i]); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// TotalWeight returns Σ_i Weights[i], the layer's total kernel mass.
func (l *Layer) TotalWeight() float64 {
	var sum float64
	for _, w := range l.Weights {
		sum += w
	}

	return sum
}
