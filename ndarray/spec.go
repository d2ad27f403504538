// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Spec selects positions along one dimension: Index, List, Range or All.
type Spec = ndarray.Spec

// SpecKind identifies which variant a Spec holds.
type SpecKind = ndarray.SpecKind

// Specifier kinds.
const (
	KindAll   SpecKind = ndarray.KindAll
	KindIndex SpecKind = ndarray.KindIndex
	KindList  SpecKind = ndarray.KindList
	KindRange SpecKind = ndarray.KindRange
)

// Index selects a single position; the dimension is dropped from the
// result shape.
func Index(i int) Spec { return ndarray.Index(i) }

// List selects explicit positions in the given order.
func List(indices ...int) Spec { return ndarray.List(indices...) }

// Range selects begin..end inclusive.
func Range(begin, end int) Spec { return ndarray.Range(begin, end) }

// RangeStep selects begin, begin+step, ... up to and including end.
func RangeStep(begin, end, step int) Spec { return ndarray.RangeStep(begin, end, step) }

// All selects the whole dimension.
func All() Spec { return ndarray.All() }
