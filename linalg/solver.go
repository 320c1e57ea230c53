// Package linalg: ConstrainedSolve implements the single-equality-constrained
// weighted-least-squares solve of spec §4.1:
//
//	β = A⁺·(b − s·1_p),   s = (1ᵗ A⁺ b − c) / (1ᵗ A⁺ 1)
//
// broadcast across the K columns of b. This is the Lagrange-multiplier
// closed form for minimizing ‖A^(1/2)(β−β₀)‖² subject to 1ᵗβ = c.
package linalg

// ConstrainedSolve solves for β given symmetric A (p×p), b (p×K), and the
// per-column equality constraint c (length K, one target per output
// column): Σ_j β[j,k] = c[k].
//
// Stage 1 (Invert): A⁺ via Pinv.
// Stage 2 (Project): AinvOnes = A⁺·1_p, AinvB = A⁺·b.
// Stage 3 (Correct): per-column scalar s[k] enforcing the constraint.
// Stage 4 (Assemble): β[i,k] = AinvB[i,k] − s[k]·AinvOnes[i].
//
// Returns ErrSingularConstraint if 1ᵗA⁺1 is zero (spec: SingularSystem —
// "should not occur with correct weights; signals a precomputation bug").
// Complexity: O(p³) dominated by the SVD inside Pinv.
func ConstrainedSolve(a, b Matrix, c []float64, tol float64) (Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}
	p := a.Rows()
	if a.Cols() != p {
		return nil, opErrorf("ConstrainedSolve", ErrNonSquare)
	}
	if b.Rows() != p {
		return nil, opErrorf("ConstrainedSolve", ErrDimensionMismatch)
	}
	k := b.Cols()
	if len(c) != k {
		return nil, opErrorf("ConstrainedSolve", ErrDimensionMismatch)
	}

	// Stage 1: pseudoinverse.
	ainvM, err := Pinv(a, tol)
	if err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}
	ainv, err := ToDense(ainvM)
	if err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}

	// Stage 2: projections. AinvOnes[i] = Σ_j A⁺[i,j]; AinvB = A⁺·b.
	ainvOnes := make([]float64, p)
	for i := 0; i < p; i++ {
		var sum float64
		for j := 0; j < p; j++ {
			sum += ainv.raw.At(i, j)
		}
		ainvOnes[i] = sum
	}

	ainvBM, err := Mul(ainv, b)
	if err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}
	ainvB, err := ToDense(ainvBM)
	if err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}

	var denom float64
	for i := 0; i < p; i++ {
		denom += ainvOnes[i]
	}
	if denom == 0 {
		return nil, opErrorf("ConstrainedSolve", ErrSingularConstraint)
	}

	// Stage 3: per-column correction s[k].
	s := make([]float64, k)
	for col := 0; col < k; col++ {
		var sumCol float64
		for i := 0; i < p; i++ {
			sumCol += ainvB.raw.At(i, col)
		}
		s[col] = (sumCol - c[col]) / denom
	}

	// Stage 4: assemble β.
	beta, err := NewDense(p, k)
	if err != nil {
		return nil, opErrorf("ConstrainedSolve", err)
	}
	for i := 0; i < p; i++ {
		for col := 0; col < k; col++ {
			beta.raw.Set(i, col, ainvB.raw.At(i, col)-s[col]*ainvOnes[i])
		}
	}

	return beta, nil
}
