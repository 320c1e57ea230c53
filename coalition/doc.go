// Package coalition builds and samples feature-coalition indicator rows
// for the Kernel SHAP solver (spec §4.3).
//
// A Layer bundles a set of 0/1 indicator rows with the per-row contribution
// weight used identically for both the A matrix and the b vector (spec §3
// invariant 2: "A is the weighted sum of z zᵗ; b uses the same weights
// element-wise"). ExactLayer exhaustively enumerates small/large coalition
// sizes; Sample draws the residual middle-size mass, optionally as
// antithetic (z, ¬z) pairs.
package coalition
