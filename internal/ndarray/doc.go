// Package ndarray implements N-dimensional row-major arrays with
// multi-dimensional slicing.
//
// A slice is described by one Spec per leading dimension: Index, List,
// Range/RangeStep or All. Omitted trailing dimensions are taken whole.
// Slicing produces a View that can be copied out (Materialize, Values) or
// written through (Assign, AssignSlice, AssignArray, Fill). A live View
// makes the next Reshape copy the storage, so callers defer View.Release;
// Extract and Take copy a selection without creating a View.
package ndarray
