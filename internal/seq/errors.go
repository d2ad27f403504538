package seq

import "errors"

// Sentinel errors returned by the sequence functions.
var (
	// ErrInvalidStep is returned when a range or take is asked to advance by
	// a step that can never reach its end (zero, or negative where only
	// forward steps are allowed).
	ErrInvalidStep = errors.New("seq: invalid step")

	// ErrMismatchedLengths is returned when parallel sequences passed to a
	// multi-sequence function differ in length.
	ErrMismatchedLengths = errors.New("seq: sequences must have the same length")

	// ErrNoSequences is returned when a multi-sequence function gets none.
	ErrNoSequences = errors.New("seq: at least one sequence required")

	// ErrInvalidWorkers is returned when a parallel function is given fewer
	// than one worker.
	ErrInvalidWorkers = errors.New("seq: worker count must be at least 1")

	// ErrIndexOutOfRange is returned by Take when a bound falls outside the
	// input after negative wrapping.
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)
