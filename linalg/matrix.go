// Package linalg: Dense is a concrete, gonum-backed implementation of the
// Matrix capability, storing elements in a *mat.Dense for BLAS-friendly
// arithmetic while exposing the same small surface the rest of this module
// programs against.
package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix represents a two-dimensional, mutable array of float64 values.
// It is intentionally small: callers never need gonum's richer mat.Matrix
// surface, only bounds-checked element access and cloning.
//
// Complexity notes: all methods are O(1) except Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// matrixErrorf wraps an underlying error with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a gonum-backed Matrix.
type Dense struct {
	raw *mat.Dense
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the backing *mat.Dense.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{raw: mat.NewDense(rows, cols, nil)}, nil
}

// newDenseFrom wraps an existing *mat.Dense without copying. Internal only:
// callers in this package must own the backing matrix exclusively.
func newDenseFrom(raw *mat.Dense) *Dense {
	return &Dense{raw: raw}
}

// Raw exposes the underlying *mat.Dense for gonum interop inside this
// module (SVD, BLAS-backed multiply). Not part of the Matrix capability.
func (m *Dense) Raw() *mat.Dense {
	return m.raw
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	r, _ := m.raw.Dims()

	return r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	_, c := m.raw.Dims()

	return c
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	r, c := m.raw.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, matrixErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.raw.At(row, col), nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	r, c := m.raw.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return matrixErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	m.raw.Set(row, col, v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	var cp mat.Dense
	cp.CloneFrom(m.raw)

	return &Dense{raw: &cp}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.raw))
}

// ToDense converts any Matrix into a *Dense, cloning if necessary.
// Complexity: O(1) when m is already *Dense, O(r*c) otherwise.
func ToDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, aerr := m.At(i, j)
			if aerr != nil {
				return nil, aerr
			}
			_ = d.Set(i, j, v)
		}
	}

	return d, nil
}

// Zeros returns a new rows×cols Dense matrix of zeros.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.raw.Set(i, i, 1.0)
	}

	return d, nil
}

// Ones returns an r×c matrix of all ones.
func Ones(rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.raw.Set(i, j, 1.0)
		}
	}

	return d, nil
}
