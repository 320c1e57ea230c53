// Package mask: the prediction-function boundary (spec §6 "Prediction
// function" and §9 "Keyword-forwarded options to f").
package mask

// PredictContext is a typed configuration record carried by value and
// forwarded verbatim to PredictFunc; shapkit never interprets it. It
// replaces the source's opaque keyword-argument forwarding with an
// explicit, statically-typed value (spec §9).
type PredictContext struct {
	// Params holds arbitrary adapter-specific configuration (e.g. batch
	// size, device placement) that only the caller's PredictFunc
	// understands.
	Params map[string]interface{}
}

// Prediction is the output of one PredictFunc call: Rows*Cols values in
// row-major order, Cols==K prediction outputs per row (K=1 for regression).
type Prediction struct {
	Rows, Cols int
	Data       []float64
}

// At retrieves prediction output k for row i.
func (p Prediction) At(i, k int) float64 {
	return p.Data[i*p.Cols+k]
}

// PredictFunc is the external, black-box model adapter: given a masked
// table and the caller's context, it returns one prediction row per input
// row. Building the adapter for a specific model framework is out of scope
// for this core (spec §1).
type PredictFunc func(x Table, ctx PredictContext) (Prediction, error)

// validatePrediction checks a Prediction against the expected row count,
// returning the sentinel error kinds spec §4.4/§7 name.
func validatePrediction(p Prediction, wantRows int) error {
	if p.Cols <= 0 || len(p.Data) != p.Rows*p.Cols {
		return ErrInvalidPredictionKind
	}
	if p.Rows != wantRows {
		return ErrPredictionShapeMismatch
	}

	return nil
}
