// Package seq provides generic sequence helpers: numeric range generation,
// map and for-each over one or several equal-length sequences, fork-join
// parallel variants of those, and sorting, selection and de-duplication
// with user supplied ordering.
//
// None of the functions keep state between calls. The parallel variants
// split their input into contiguous chunks, one goroutine per chunk, and
// block until every chunk has finished.
package seq
