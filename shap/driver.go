// Package shap: driver.go implements ExplainOne (spec §4.6), the single-row
// Kernel SHAP entry point tying together precompute (C5), coalition (C3),
// mask (C4), and linalg (C1) behind the branch selection and iterative loop
// spec §4.6 describes.
package shap

import (
	"context"

	"github.com/katalvlaran-labs/shapkit/coalition"
	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/katalvlaran-labs/shapkit/mask"
	"github.com/katalvlaran-labs/shapkit/precompute"
)

// allZeroRow and allOneRow are the degenerate z=0 / z=1 coalitions whose
// masked-prediction expectations are, by definition, v0 and v1 (spec §3
// "Boundary values").
func allZeroRow(p int) [][]float64 {
	return [][]float64{make([]float64, p)}
}

func allOneRow(p int) [][]float64 {
	z := make([]float64, p)
	for i := range z {
		z[i] = 1
	}

	return [][]float64{z}
}

// weightedContribution folds one layer's rows into its b-vector
// contribution, Σ_i w_i·z_i·(v(z_i) − v0[k]) (spec §3 "b vector(s)"), the
// same skip-if-zero accumulation style as linalg.OuterAdd.
// Complexity: O(m·p·K) time, O(p·K) memory.
func weightedContribution(p, k int, z [][]float64, w []float64, vz, v0 linalg.Matrix) (linalg.Matrix, error) {
	b, err := linalg.NewDense(p, k)
	if err != nil {
		return nil, err
	}
	for i, zi := range z {
		for col := 0; col < k; col++ {
			vzi, err := vz.At(i, col)
			if err != nil {
				return nil, err
			}
			v0k, err := v0.At(0, col)
			if err != nil {
				return nil, err
			}
			diff := w[i] * (vzi - v0k)
			if diff == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				if zi[j] == 0 {
					continue
				}
				cur, err := b.At(j, col)
				if err != nil {
					return nil, err
				}
				if err := b.Set(j, col, cur+diff*zi[j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return b, nil
}

// ExplainOne computes the Kernel SHAP attribution vector for one row x
// against a background distribution and prediction function (spec §4.6).
//
// Branch selection: exact (Options.Exact or HybridDegree >= ⌊p/2⌋), hybrid
// (0 < HybridDegree < ⌊p/2⌋), or pure sampling (HybridDegree == 0). p == 1
// short-circuits: there is no non-degenerate coalition, so β = v1 − v0
// trivially (spec §8 "Single-feature model").
//
// Cancellation is cooperative: ctx is checked before the exact pass and at
// the top of every sampling iteration (SPEC_FULL §6.2); a cancelled or
// expired ctx returns ErrCancelled.
//
// Complexity: two or three masker passes for the boundary (v0, v1) and
// exact-layer evaluations,
// plus O(MaxIter) further masker passes and O(p³) solves for the iterative
// branches.
func ExplainOne(ctx context.Context, x []interface{}, bg Table, bgWeights []float64, f PredictFunc, predCtx PredictContext, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p := len(x)
	if p == 0 || bg == nil || bg.Cols() != p {
		return Result{}, ErrInvalidShape
	}
	if err := opts.validate(p); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, ErrCancelled
	}

	maskOpts := mask.Options{BatchSize: opts.BatchSize}

	v0m, err := mask.Evaluate(x, bg, bgWeights, allZeroRow(p), f, predCtx, maskOpts)
	if err != nil {
		return Result{}, err
	}
	v1m, err := mask.Evaluate(x, bg, bgWeights, allOneRow(p), f, predCtx, maskOpts)
	if err != nil {
		return Result{}, err
	}
	k := v0m.Cols()

	c := make([]float64, k)
	for col := 0; col < k; col++ {
		a0, err := v0m.At(0, col)
		if err != nil {
			return Result{}, err
		}
		a1, err := v1m.At(0, col)
		if err != nil {
			return Result{}, err
		}
		c[col] = a1 - a0
	}

	pinvTol := opts.PinvTol
	if pinvTol < 0 {
		pinvTol = linalg.DefaultTol
	}

	if p == 1 {
		beta, err := linalg.NewDense(1, k)
		if err != nil {
			return Result{}, err
		}
		for col := 0; col < k; col++ {
			if err := beta.Set(0, col, c[col]); err != nil {
				return Result{}, err
			}
		}
		sigma, err := linalg.NewDense(1, k)
		if err != nil {
			return Result{}, err
		}

		return Result{Beta: beta, Sigma: sigma, NIter: 1, Converged: true, Strategy: StrategyExact}, nil
	}

	degree := opts.HybridDegree
	if opts.Exact && degree < p/2 {
		// Exact requires every non-degenerate coalition enumerated; a
		// HybridDegree left at its sampling-oriented default must not
		// leave a middle layer unenumerated (spec §4.6 branch 1).
		degree = p / 2
	}
	fullyExact := opts.Exact || degree >= p/2

	pre, err := precompute.Build(p, degree, bg, bgWeights)
	if err != nil {
		return Result{}, err
	}

	var bExact linalg.Matrix
	if pre.Exact.M() == 0 {
		bExact, err = linalg.NewDense(p, k)
	} else {
		var vzExact linalg.Matrix
		vzExact, err = mask.Evaluate(x, bg, bgWeights, pre.Exact.Z, f, predCtx, maskOpts)
		if err != nil {
			return Result{}, err
		}
		bExact, err = weightedContribution(p, k, pre.Exact.Z, pre.Exact.Weights, vzExact, v0m)
	}
	if err != nil {
		return Result{}, err
	}

	if fullyExact {
		beta, err := linalg.ConstrainedSolve(pre.AExact, bExact, c, pinvTol)
		if err != nil {
			return Result{}, err
		}
		sigma, err := linalg.NewDense(p, k)
		if err != nil {
			return Result{}, err
		}

		return Result{Beta: beta, Sigma: sigma, NIter: 1, Converged: true, Strategy: StrategyExact}, nil
	}

	strategy := StrategyHybrid
	if degree == 0 {
		strategy = StrategySampling
	}

	rng := coalition.RNGFromSeed(opts.Seed)

	var aSum, bSum linalg.Matrix
	aSum, err = linalg.NewDense(p, p)
	if err != nil {
		return Result{}, err
	}
	bSum, err = linalg.NewDense(p, k)
	if err != nil {
		return Result{}, err
	}

	var history []linalg.Matrix
	var beta, sigma linalg.Matrix
	converged := false
	nIter := 0

	for n := 1; n <= opts.MaxIter; n++ {
		if err := ctx.Err(); err != nil {
			return Result{}, ErrCancelled
		}

		layer, err := coalition.Sample(p, degree, opts.M, opts.Paired, pre.FullWeights, rng)
		if err != nil {
			return Result{}, err
		}

		vzN, err := mask.Evaluate(x, bg, bgWeights, layer.Z, f, predCtx, maskOpts)
		if err != nil {
			return Result{}, err
		}
		bN, err := weightedContribution(p, k, layer.Z, layer.Weights, vzN, v0m)
		if err != nil {
			return Result{}, err
		}
		aN, err := layer.A()
		if err != nil {
			return Result{}, err
		}

		aTemp, err := linalg.Add(pre.AExact, aN)
		if err != nil {
			return Result{}, err
		}
		bTemp, err := linalg.Add(bExact, bN)
		if err != nil {
			return Result{}, err
		}

		aSum, err = linalg.Add(aSum, aTemp)
		if err != nil {
			return Result{}, err
		}
		bSum, err = linalg.Add(bSum, bTemp)
		if err != nil {
			return Result{}, err
		}

		betaN, err := linalg.ConstrainedSolve(aTemp, bTemp, c, pinvTol)
		if err != nil {
			return Result{}, err
		}
		history = append(history, betaN)
		nIter = n

		if n < 2 {
			beta = betaN
			sigma, err = linalg.NewDense(p, k)
			if err != nil {
				return Result{}, err
			}

			continue
		}

		aMean, err := linalg.Scale(aSum, 1.0/float64(n))
		if err != nil {
			return Result{}, err
		}
		bMean, err := linalg.Scale(bSum, 1.0/float64(n))
		if err != nil {
			return Result{}, err
		}
		betaBar, err := linalg.ConstrainedSolve(aMean, bMean, c, pinvTol)
		if err != nil {
			return Result{}, err
		}
		sigmaBar, err := stdErr(history, p, k)
		if err != nil {
			return Result{}, err
		}
		ok, _, err := convCrit(sigmaBar, betaBar, opts.Tol)
		if err != nil {
			return Result{}, err
		}

		beta, sigma = betaBar, sigmaBar
		if ok {
			converged = true
			break
		}
	}

	return Result{Beta: beta, Sigma: sigma, NIter: nIter, Converged: converged, Strategy: strategy}, nil
}
