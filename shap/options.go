// Package shap: Options configures a single ExplainOne call (spec §6).
package shap

// Strategy reports which branch of spec §4.6 an explanation ultimately took.
type Strategy int

const (
	// StrategyExact means degree >= ⌊p/2⌋ or Options.Exact was set: one
	// exhaustive pass, no sampling.
	StrategyExact Strategy = iota

	// StrategyHybrid means a non-zero hybrid degree enumerated part of the
	// mass exactly and sampled the rest.
	StrategyHybrid

	// StrategySampling means hybrid degree was 0: pure iterative sampling.
	StrategySampling
)

// String renders the strategy name, mirroring the teacher's enum String()
// conventions (e.g. dtw.MemoryMode).
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyHybrid:
		return "hybrid"
	case StrategySampling:
		return "sampling"
	default:
		return "unknown"
	}
}

// Options configures ExplainOne (spec §6's enumerated option set).
type Options struct {
	// Exact forces the exhaustive branch regardless of HybridDegree.
	Exact bool

	// HybridDegree is the inclusive number of smallest/largest coalition
	// sizes enumerated exactly; 0 means pure sampling.
	HybridDegree int

	// M is the number of coalitions sampled per iteration. Must be >= 2;
	// rounded up to even internally when Paired is set.
	M int

	// Paired enables antithetic (z, ¬z) pair sampling.
	Paired bool

	// Tol is the relative-standard-error convergence threshold (spec §4.7).
	Tol float64

	// MaxIter caps the number of sampling iterations.
	MaxIter int

	// Seed seeds the deterministic RNG driving all sampling in this call.
	Seed int64

	// BatchSize bounds peak masked-row memory per prediction call
	// (SPEC_FULL §6.3); 0 means unbatched.
	BatchSize int

	// PinvTol overrides linalg.Pinv's singular-value cutoff; < 0 uses
	// linalg.DefaultTol.
	PinvTol float64
}

// DefaultOptions returns a reasonable, non-exact hybrid configuration:
// degree 1, m=64 paired samples, tol=1e-3, up to 100 iterations.
func DefaultOptions() Options {
	return Options{
		HybridDegree: 1,
		M:            64,
		Paired:       true,
		Tol:          1e-3,
		MaxIter:      100,
		PinvTol:      -1,
	}
}

// validate checks Options against spec §6's constraints for a given p.
func (o Options) validate(p int) error {
	if o.HybridDegree < 0 || o.HybridDegree >= p {
		return ErrInvalidOptions
	}
	if !o.Exact {
		if o.M < 2 {
			return ErrInvalidOptions
		}
		if o.Tol <= 0 {
			return ErrInvalidOptions
		}
		if o.MaxIter < 1 {
			return ErrInvalidOptions
		}
	}

	return nil
}
