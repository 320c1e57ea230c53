// Package linalg: universal operations on Matrix values — element-wise
// addition, subtraction, matrix multiplication, transpose, and scalar
// scaling — backed by gonum BLAS calls on the underlying *mat.Dense.
// All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
package linalg

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opOuter     = "Outer"
)

func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func validateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

func validateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns a new Matrix containing the element-wise sum of a and b.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	da, err := ToDense(a)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	res.raw.Add(da.raw, db.raw)

	return res, nil
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opSub, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}

	da, err := ToDense(a)
	if err != nil {
		return nil, opErrorf(opSub, err)
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, opErrorf(opSub, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, opErrorf(opSub, err)
	}
	res.raw.Sub(da.raw, db.raw)

	return res, nil
}

// Mul returns the matrix product a·b.
// Complexity: O(r·k·c) time via gonum's BLAS dispatch.
func Mul(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	da, err := ToDense(a)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	res.raw.Mul(da.raw, db.raw)

	return res, nil
}

// Transpose returns the transpose of m.
// Complexity: O(r·c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	dm, err := ToDense(m)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	res.raw.Copy(dm.raw.T())

	return res, nil
}

// Scale returns a new Matrix equal to m scaled by k.
// Complexity: O(r·c) time and memory.
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	dm, err := ToDense(m)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	res.raw.Scale(k, dm.raw)

	return res, nil
}

// OuterAdd accumulates w·z·zᵗ into dst (dst += w·z·zᵗ), where z is a 1×p
// row vector represented as a plain []float64. This is the hot inner loop
// of A = Σ ω_i z_i z_iᵗ (spec §3 "A matrix") and is kept allocation-free
// past the initial dst.
// Complexity: O(p²) time, O(1) extra memory.
func OuterAdd(dst *Dense, z []float64, w float64) error {
	if dst == nil {
		return opErrorf(opOuter, ErrNilMatrix)
	}
	p := len(z)
	if dst.Rows() != p || dst.Cols() != p {
		return opErrorf(opOuter, ErrDimensionMismatch)
	}
	for i := 0; i < p; i++ {
		zi := w * z[i]
		if zi == 0 {
			continue
		}
		for j := 0; j < p; j++ {
			dst.raw.Set(i, j, dst.raw.At(i, j)+zi*z[j])
		}
	}

	return nil
}
