// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Errors returned by array and view operations. Test with errors.Is.
var (
	ErrInvalidShape    = ndarray.ErrInvalidShape
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
	ErrRankMismatch    = ndarray.ErrRankMismatch
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrNotScalar       = ndarray.ErrNotScalar
	ErrSizeMismatch    = ndarray.ErrSizeMismatch
	ErrInvalidSpec     = ndarray.ErrInvalidSpec
	ErrReleased        = ndarray.ErrReleased
)
