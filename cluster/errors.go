// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("cluster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("cluster: all rows must have the same length")
	// ErrInvalidWidth indicates a non-positive domain width was passed to the aggregator.
	ErrInvalidWidth = errors.New("cluster: domain width must be > 0")
	// ErrUnknownConnectivity indicates a connectivity name that is neither four nor eight.
	ErrUnknownConnectivity = errors.New("cluster: unknown connectivity")
)
