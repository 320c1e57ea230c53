// Package kernel computes the Kernel SHAP subset-size weight distribution
// (spec §4.2): for a feature count p and a chosen set of coalition sizes S,
// the unnormalized weight of size s is
//
//	ω'_s = (p-1) / (C(p,s) · s · (p-s))
//
// normalized to ω_s = ω'_s / Σ_{s∈S} ω'_s. All arithmetic for the binomial
// coefficient runs in log-space via gonum's stat/combin package to avoid
// overflow for large p, exactly as spec §4.2 requires ("use log-binomial").
package kernel
