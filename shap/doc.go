// Package shap is the single-row Kernel SHAP driver (spec §4.6, §4.7): it
// chooses the exact, hybrid, or pure-sampling branch, runs the iterative
// exact+sampled estimator to convergence, and reports per-entry standard
// errors alongside the attribution vector.
//
// Example:
//
//	res, err := shap.ExplainOne(ctx, x, bg, nil, predict, shap.PredictContext{},
//	    shap.Options{HybridDegree: 1, M: 64, Paired: true, Tol: 1e-3, MaxIter: 20, Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("converged=%v after %d iterations\n", res.Converged, res.NIter)
package shap
