// Package linalg: Pinv computes the Moore–Penrose pseudoinverse of a real
// matrix via singular value decomposition, following spec §4.1.
//
// This is the one capability the teacher library (katalvlaran/lvlath,
// hand-rolled Doolittle LU / Jacobi eigen, square matrices only) does not
// provide: a numerically robust pseudoinverse for a general, possibly
// rank-deficient p×p symmetric PSD matrix. gonum's mat.SVD is used instead,
// the same module already depended on elsewhere in this lineage for dense
// vector math.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the default singular-value cutoff: √(machine epsilon),
// matching spec §4.1 ("default tol = √ε_machine").
var DefaultTol = math.Sqrt(2.220446049250313e-16)

// Pinv returns the Moore–Penrose pseudoinverse of m.
//
// Stage 1 (Decompose): full SVD, m = U·Σ·Vᵗ.
// Stage 2 (Threshold): keep singular value σ_i when σ_i > max(tol·σ_max, 0).
// Stage 3 (Assemble): A⁺ = V·Σ⁺·Uᵗ, where Σ⁺ inverts the kept singular
// values and zeroes the rest.
//
// If no singular value passes the threshold, Pinv returns the zero matrix
// of transposed shape, per spec §4.1.
//
// Complexity: O(min(r,c)·r·c) time (gonum's SVD), O(r·c) memory.
func Pinv(m Matrix, tol float64) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf("Pinv", err)
	}
	if tol < 0 {
		tol = DefaultTol
	}

	dm, err := ToDense(m)
	if err != nil {
		return nil, opErrorf("Pinv", err)
	}

	rows, cols := m.Rows(), m.Cols()

	var svd mat.SVD
	ok := svd.Factorize(dm.raw, mat.SVDFull)
	if !ok {
		return nil, opErrorf("Pinv", ErrSingularConstraint)
	}

	values := svd.Values(nil)
	sigmaMax := 0.0
	for _, s := range values {
		if s > sigmaMax {
			sigmaMax = s
		}
	}
	cutoff := math.Max(tol*sigmaMax, 0)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	k := len(values) // min(rows, cols)

	anyKept := false
	sigmaInv := make([]float64, k)
	for i, s := range values {
		if s > cutoff {
			sigmaInv[i] = 1.0 / s
			anyKept = true
		}
	}

	res, rerr := NewDense(cols, rows)
	if rerr != nil {
		return nil, opErrorf("Pinv", rerr)
	}
	if !anyKept {
		return res, nil
	}

	// A⁺ = V · Σ⁺ · Uᵗ, computed column-of-U by column-of-V to avoid
	// materializing the (mostly zero) Σ⁺ matrix.
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			var sum float64
			for s := 0; s < k; s++ {
				if sigmaInv[s] == 0 {
					continue
				}
				sum += v.At(i, s) * sigmaInv[s] * u.At(j, s)
			}
			res.raw.Set(i, j, sum)
		}
	}

	return res, nil
}
