package seqmath

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when a statistic is requested over zero
	// elements and therefore has no defined value.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidValue is returned when a length or quality score falls
	// outside its valid domain (length <= 0, quality < 0 or NaN).
	ErrInvalidValue = errors.New("invalid value")
)
