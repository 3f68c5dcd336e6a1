// SPDX-License-Identifier: MIT

package orgmetrics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain indicates a domain with ny <= 0 or nx <= 0.
	ErrInvalidDomain = errors.New("orgmetrics: domain dimensions must be > 0")
	// ErrInvalidAggregate indicates an aggregate with size < 1 or a non-finite centroid.
	ErrInvalidAggregate = errors.New("orgmetrics: invalid aggregate")
	// ErrInvalidOptions indicates a negative or non-finite MinDistance.
	ErrInvalidOptions = errors.New("orgmetrics: invalid options")
)

// metricsErrorf tags err with the operation that detected it.
func metricsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
