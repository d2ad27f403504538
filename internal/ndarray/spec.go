package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// SpecKind identifies which variant a Spec holds.
type SpecKind int

// Specifier kinds.
const (
	KindAll SpecKind = iota
	KindIndex
	KindList
	KindRange
)

// String returns a human-readable kind name.
func (k SpecKind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindIndex:
		return "index"
	case KindList:
		return "list"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Spec selects positions along one dimension. It is a tagged variant:
// exactly one of Index, List, Range or All. The zero value is All.
//
// Negative indices count from the end of the dimension (-1 is the last
// element) for every kind.
type Spec struct {
	kind  SpecKind
	index int
	list  []int
	begin int
	end   int
	step  int
}

// Index selects a single position. A dimension sliced by Index is
// collapsed out of the result shape.
func Index(i int) Spec {
	return Spec{kind: KindIndex, index: i}
}

// List selects explicit positions in the given order. Duplicates are kept.
func List(indices ...int) Spec {
	list := make([]int, len(indices))
	copy(list, indices)
	return Spec{kind: KindList, list: list}
}

// Range selects begin..end inclusive with step 1.
func Range(begin, end int) Spec {
	return RangeStep(begin, end, 1)
}

// RangeStep selects begin, begin+step, ... up to and including end.
// A negative step walks the dimension backwards.
func RangeStep(begin, end, step int) Spec {
	return Spec{kind: KindRange, begin: begin, end: end, step: step}
}

// All selects the whole dimension.
func All() Spec {
	return Spec{kind: KindAll}
}

// Kind returns the variant held by s.
func (s Spec) Kind() SpecKind {
	return s.kind
}

// String formats the specifier the way it was built, e.g. "Range(1,3,1)".
func (s Spec) String() string {
	switch s.kind {
	case KindIndex:
		return fmt.Sprintf("Index(%d)", s.index)
	case KindList:
		parts := make([]string, len(s.list))
		for i, idx := range s.list {
			parts[i] = strconv.Itoa(idx)
		}
		return "List(" + strings.Join(parts, ",") + ")"
	case KindRange:
		return fmt.Sprintf("Range(%d,%d,%d)", s.begin, s.end, s.step)
	default:
		return "All"
	}
}

// wrap resolves a possibly negative index against a dimension of size n
// and checks that it lands inside [0, n).
func wrap(idx, dim, n int) (int, error) {
	resolved := idx
	if resolved < 0 {
		resolved += n
	}
	if resolved < 0 || resolved >= n {
		return 0, &IndexError{Dim: dim, Index: idx, Size: n}
	}
	return resolved, nil
}

// resolve returns the ordered positions s selects in dimension dim of
// size n, relative to that dimension's local index space.
func (s Spec) resolve(dim, n int) ([]int, error) {
	switch s.kind {
	case KindAll:
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i
		}
		return positions, nil

	case KindIndex:
		p, err := wrap(s.index, dim, n)
		if err != nil {
			return nil, err
		}
		return []int{p}, nil

	case KindList:
		if len(s.list) == 0 {
			return nil, fmt.Errorf("%w: empty list for dimension %d", ErrInvalidSpec, dim)
		}
		positions := make([]int, len(s.list))
		for i, idx := range s.list {
			p, err := wrap(idx, dim, n)
			if err != nil {
				return nil, err
			}
			positions[i] = p
		}
		return positions, nil

	case KindRange:
		if s.step == 0 {
			return nil, fmt.Errorf("%w: zero step for dimension %d", ErrInvalidSpec, dim)
		}
		begin, err := wrap(s.begin, dim, n)
		if err != nil {
			return nil, err
		}
		end, err := wrap(s.end, dim, n)
		if err != nil {
			return nil, err
		}
		count := (end-begin)/s.step + 1
		if (end-begin)*s.step < 0 {
			count = 0
		}
		if count <= 0 {
			return nil, fmt.Errorf("%w: %s selects nothing in dimension %d (size %d)", ErrInvalidSpec, s, dim, n)
		}
		positions := make([]int, count)
		for i := range positions {
			positions[i] = begin + i*s.step
		}
		return positions, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidSpec, s.kind)
	}
}
