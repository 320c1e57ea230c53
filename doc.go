// Package shapkit computes Kernel SHAP attributions for a single prediction
// instance against a black-box regression or classification model.
//
// A pure-Go engine that turns a row of feature values, a background
// dataset, and a prediction function into a vector of per-feature
// attributions that sum exactly to f(x) − E[f(bg)]. It brings together:
//
//   - Linear algebra: Moore-Penrose pseudoinverse, constrained WLS solve
//   - Combinatorics: Kernel SHAP subset-size weighting
//   - Sampling: exact enumeration, weighted sampling, antithetic pairing
//   - Masking: background substitution over homogeneous or heterogeneous data
//   - A convergence-driven iterative driver with per-entry standard errors
//
// Seeded sampling reproduces bit-identical β across runs; known-mass
// coalitions are solved exactly while the rest are sampled; the prediction
// function is the only external dependency; homogeneous and heterogeneous
// backgrounds share one masking contract.
//
// Under the hood, everything is organized under six leaf packages:
//
//	linalg/     — pseudoinverse and the constrained weighted-least-squares solver
//	kernel/     — Kernel SHAP subset-size weight distribution
//	coalition/  — exact subset enumeration and paired/weighted sampling
//	mask/       — masked-matrix construction, prediction dispatch, aggregation
//	precompute/ — layer-independent caches shared across a driver's iterations
//	shap/       — the single-row driver: branch selection, iteration, convergence
//
// Quick usage sketch:
//
//	res, err := shap.ExplainOne(ctx, x, bg, nil, predict, shap.PredictContext{},
//	    shap.Options{HybridDegree: 1, M: 64, Paired: true, Tol: 1e-3, MaxIter: 20, Seed: 42})
//
// See the shap package doc for a fuller example.
//
//	go get github.com/katalvlaran-labs/shapkit/shap
package shapkit
