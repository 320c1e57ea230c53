// Package mask constructs masked feature matrices by substituting
// background values where a coalition's indicator is 0, dispatches them to
// the external prediction function, and aggregates the result back into a
// per-coalition expectation v(z) (spec §4.4).
//
// Re-architected per spec §9 ("Heterogeneous vs homogeneous X") as a
// polymorphic Table capability: MatrixTable is the homogeneous, column-
// aligned fast path; RowTable is the heterogeneous, per-column path. Both
// produce identical vz for equivalent data.
package mask
