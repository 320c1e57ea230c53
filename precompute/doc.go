// Package precompute builds and caches the layer-independent structures a
// single-row Kernel SHAP explanation reuses across every iteration (spec
// §4.5): the exact layer's indicator rows and per-row weights, its A_exact
// contribution, the full-range kernel weights, and the (unmaterialized —
// see doc below) background reference every masker call shares.
//
// The source this spec distills from eagerly stacks the background into
// bg_X_exact/bg_X_m tensors sized m·n_bg×p. This package instead keeps a
// single reference to the background table and lets mask.Evaluate compute
// each row's group index on demand (i/n_bg) — the cached quantity spec §4.5
// actually cares about is "the stacked background matrices", and streaming
// them per spec §5/§6.3 means never materializing the stack at all.
package precompute
