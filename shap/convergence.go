// Package shap: convergence.go implements spec §4.7 — the per-entry
// standard error of the running β̄ estimator and the relative-standard-
// error stopping criterion spec §4.6 step (f) evaluates.
package shap

import (
	"math"

	"github.com/katalvlaran-labs/shapkit/linalg"
	"gonum.org/v1/gonum/stat"
)

// deltaStability floors the relative-standard-error denominator to avoid
// dividing by a near-zero β entry (spec §4.6: "e.g. 10⁻⁸").
const deltaStability = 1e-8

// stdErr computes, for every (j,k), the standard error of the mean over
// the per-iteration history (spec §4.7):
//
//	σ̂_jk = sqrt( (1/(n(n-1))) Σ_i (β_i[j,k] - β̄[j,k])² )
//
// using gonum's stat.MeanStdDev for the sample standard deviation (which
// already applies Bessel's correction, dividing by n-1) and dividing by
// √n to turn it into the standard error of the mean.
//
// Complexity: O(n·p·K) time, O(n) memory (one column slice reused).
func stdErr(history []linalg.Matrix, p, k int) (linalg.Matrix, error) {
	n := len(history)
	sigma, err := linalg.NewDense(p, k)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return sigma, nil
	}

	xs := make([]float64, n)
	for j := 0; j < p; j++ {
		for col := 0; col < k; col++ {
			for i, b := range history {
				v, aerr := b.At(j, col)
				if aerr != nil {
					return nil, aerr
				}
				xs[i] = v
			}
			_, sd := stat.MeanStdDev(xs, nil)
			_ = sigma.Set(j, col, sd/math.Sqrt(float64(n)))
		}
	}

	return sigma, nil
}

// convCrit evaluates spec §4.6/§4.7's stopping criterion: the maximum,
// over all (j,k), of the relative standard error |σ[j,k]| / (|β[j,k]| +
// deltaStability). Converged is true when this maximum is below tol.
//
// Complexity: O(p·K) time.
func convCrit(sigma, beta linalg.Matrix, tol float64) (bool, float64, error) {
	p, k := beta.Rows(), beta.Cols()
	var maxRel float64
	for j := 0; j < p; j++ {
		for col := 0; col < k; col++ {
			s, err := sigma.At(j, col)
			if err != nil {
				return false, 0, err
			}
			b, err := beta.At(j, col)
			if err != nil {
				return false, 0, err
			}
			rel := math.Abs(s) / (math.Abs(b) + deltaStability)
			if rel > maxRel {
				maxRel = rel
			}
		}
	}

	return maxRel < tol, maxRel, nil
}
