// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputShape is matched by every *InputShapeError.
var ErrInputShape = errors.New("series: invalid input shape")

// InputShapeError describes input that cannot be turned into grids: wrong
// rank, unsupported element type, empty or ragged slices, or a slice whose
// shape differs from the first one.
type InputShapeError struct {
	// Slice is the offending time index, or -1 when the whole input is at fault.
	Slice int
	// Reason is a short human-readable description.
	Reason string
	// Err is the underlying cause, if any (e.g. cluster.ErrNonRectangular).
	Err error
}

func (e *InputShapeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInputShape.Error())
	if e.Slice >= 0 {
		fmt.Fprintf(&b, ": slice %d", e.Slice)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *InputShapeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInputShape.
func (e *InputShapeError) Is(target error) bool { return target == ErrInputShape }

// SliceError tags a failure with the time index it happened at.
type SliceError struct {
	Index int
	Err   error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("series: slice %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SliceError) Unwrap() error { return e.Err }

func shapeErrorf(slice int, err error, format string, args ...any) *InputShapeError {
	return &InputShapeError{Slice: slice, Reason: fmt.Sprintf(format, args...), Err: err}
}
