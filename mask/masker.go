// Package mask: Evaluate implements the masker/vz evaluator of spec §4.4.
//
// Stage 1: stack x and bg conceptually into (m·n_bg) rows, grouped by
// g[i] = ⌊i/n_bg⌋.
// Stage 2: expand each Z row into n_bg masked rows: z_j=1 keeps x's value,
// z_j=0 substitutes the background's value for that row.
// Stage 3: dispatch the masked table to f.
// Stage 4: aggregate predictions back to one v(z) per Z row, weighted by
// bg weights when present.
//
// Large m·n_bg inputs are processed in row-contiguous Z batches (spec §5,
// §6.3 of SPEC_FULL.md) so peak memory is bounded by BatchSize·n_bg rows
// rather than m·n_bg; batch boundaries never split a group, so aggregation
// is exact per Z row regardless of BatchSize.
package mask

import "github.com/katalvlaran-labs/shapkit/linalg"

// Options configures a single Evaluate call.
type Options struct {
	// BatchSize caps the number of Z rows processed per prediction call.
	// 0 means unbatched (all of Z in one call).
	BatchSize int
}

// Evaluate computes vz, the m×K matrix of masked-prediction expectations,
// for coalition rows z against row x and background bg.
//
// Complexity: O(m·n_bg·p) time and O(BatchSize·n_bg·p) peak memory (or
// O(m·n_bg·p) when BatchSize==0).
func Evaluate(x []interface{}, bg Table, bgWeights []float64, z [][]float64, f PredictFunc, ctx PredictContext, opts Options) (linalg.Matrix, error) {
	if bg == nil {
		return nil, ErrNilTable
	}
	p := len(x)
	if p == 0 || bg.Cols() != p {
		return nil, ErrInvalidShape
	}
	m := len(z)
	nBg := bg.Rows()
	if nBg <= 0 {
		return nil, ErrInvalidShape
	}
	for _, row := range z {
		if len(row) != p {
			return nil, ErrInvalidShape
		}
	}
	if bgWeights != nil && len(bgWeights) != nBg {
		return nil, ErrInvalidShape
	}

	batch := opts.BatchSize
	if batch <= 0 || batch > m {
		batch = m
	}
	if m == 0 {
		return linalg.NewDense(1, 1)
	}

	var vz *linalg.Dense
	var sumW float64
	if bgWeights != nil {
		for _, w := range bgWeights {
			sumW += w
		}
	}

	for start := 0; start < m; start += batch {
		end := start + batch
		if end > m {
			end = m
		}
		zBatch := z[start:end]

		masked, err := maskBatch(x, bg, zBatch, nBg, p)
		if err != nil {
			return nil, err
		}

		pred, err := f(masked, ctx)
		if err != nil {
			return nil, err
		}
		if err := validatePrediction(pred, len(zBatch)*nBg); err != nil {
			return nil, err
		}

		if vz == nil {
			var derr error
			vz, derr = linalg.NewDense(m, pred.Cols)
			if derr != nil {
				return nil, derr
			}
		} else if vz.Cols() != pred.Cols {
			return nil, ErrPredictionShapeMismatch
		}

		for g := 0; g < len(zBatch); g++ {
			for k := 0; k < pred.Cols; k++ {
				var acc float64
				if bgWeights == nil {
					for r := 0; r < nBg; r++ {
						acc += pred.At(g*nBg+r, k)
					}
					acc /= float64(nBg)
				} else {
					for r := 0; r < nBg; r++ {
						acc += bgWeights[r] * pred.At(g*nBg+r, k)
					}
					acc /= sumW
				}
				_ = vz.Set(start+g, k, acc)
			}
		}
	}

	return vz, nil
}

// maskBatch builds the masked table for a contiguous slice of Z rows. When
// bg is the homogeneous *MatrixTable fast path (and x is entirely
// float64-valued), the result is a *MatrixTable; otherwise it is the
// generic *RowTable path. Both yield identical vz (spec §6).
func maskBatch(x []interface{}, bg Table, zBatch [][]float64, nBg, p int) (Table, error) {
	mb := len(zBatch)
	rows := mb * nBg

	if mt, ok := bg.(*MatrixTable); ok {
		if xf, ok := toFloatRow(x); ok {
			data := make([]float64, rows*p)
			for i := 0; i < rows; i++ {
				g, r := i/nBg, i%nBg
				zr := zBatch[g]
				for j := 0; j < p; j++ {
					if zr[j] != 0 {
						data[i*p+j] = xf[j]
					} else {
						v, err := mt.AtFloat(r, j)
						if err != nil {
							return nil, err
						}
						data[i*p+j] = v
					}
				}
			}

			return NewMatrixTable(rows, p, data)
		}
	}

	data := make([]interface{}, rows*p)
	for i := 0; i < rows; i++ {
		g, r := i/nBg, i%nBg
		zr := zBatch[g]
		for j := 0; j < p; j++ {
			if zr[j] != 0 {
				data[i*p+j] = x[j]
			} else {
				v, err := bg.At(r, j)
				if err != nil {
					return nil, err
				}
				data[i*p+j] = v
			}
		}
	}

	return NewRowTable(rows, p, data)
}

// toFloatRow copies x into a new []float64 when it holds only float64
// values; otherwise it returns false.
func toFloatRow(x []interface{}) ([]float64, bool) {
	out := make([]float64, len(x))
	for i, v := range x {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}

	return out, true
}
