// Package linalg provides the linear-algebra primitives the Kernel SHAP
// solver needs on top of a dense, float64-backed Matrix: a Moore–Penrose
// pseudoinverse via singular value decomposition, and the single-equality-
// constrained weighted-least-squares solve that turns (A, b, constraint)
// into an attribution vector.
//
// Matrix mirrors a small, Rows/Cols/At/Set/Clone capability rather than
// exposing gonum's mat.Matrix directly, so callers never need to import
// gonum themselves; Dense wraps a *mat.Dense for the heavy arithmetic.
package linalg
