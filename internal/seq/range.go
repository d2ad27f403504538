package seq

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type a range can be generated over.
type Number interface {
	constraints.Integer | constraints.Float
}

// rangeCount returns how many steps of size step fit between from and to,
// as a float quotient, or a negative value when step points away from to.
// The distance is taken in float64 so narrow integer types cannot overflow.
func rangeCount[N Number](from, to, step N) (float64, error) {
	var zero N
	switch {
	case step == zero:
		return 0, fmt.Errorf("%w: step must not be zero", ErrInvalidStep)
	case step > zero && to < from:
		return -1, nil
	case step < zero && to > from:
		return -1, nil
	}
	return (float64(to) - float64(from)) / float64(step), nil
}

// RangeInclusive generates from, from+step, ... with the last value <= to
// (>= to for a negative step). A step pointing away from to yields an
// empty sequence.
//
//	RangeInclusive(0, 6, 2)       // [0 2 4 6]
//	RangeInclusive(0.0, 1.0, 0.5) // [0 0.5 1]
func RangeInclusive[N Number](from, to, step N) ([]N, error) {
	q, err := rangeCount(from, to, step)
	if err != nil {
		return nil, err
	}
	if q < 0 {
		return []N{}, nil
	}
	n := int(math.Floor(q)) + 1
	out := make([]N, n)
	for i := range out {
		out[i] = from + step*N(i)
	}
	return out, nil
}

// RangeExclusive generates begin, begin+step, ... with every value < end
// (> end for a negative step).
//
//	RangeExclusive(0, 4, 1) // [0 1 2 3]
func RangeExclusive[N Number](begin, end, step N) ([]N, error) {
	q, err := rangeCount(begin, end, step)
	if err != nil {
		return nil, err
	}
	if q <= 0 {
		return []N{}, nil
	}
	n := int(math.Ceil(q))
	out := make([]N, n)
	for i := range out {
		out[i] = begin + step*N(i)
	}
	return out, nil
}

// Take returns in[from], in[from+step], ... up to and including in[to].
// Negative bounds count from the end of in (-1 is the last element).
func Take[T any](in []T, from, to, step int) ([]T, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: take step %d", ErrInvalidStep, step)
	}
	size := len(in)
	if from < 0 {
		from += size
	}
	if to < 0 {
		to += size
	}
	if from < 0 || from >= size || to < 0 || to >= size {
		return nil, fmt.Errorf("%w: take [%d, %d] of %d elements", ErrIndexOutOfRange, from, to, size)
	}
	if to < from {
		return []T{}, nil
	}

	out := make([]T, (to-from)/step+1)
	for i := range out {
		out[i] = in[from+i*step]
	}
	return out, nil
}
