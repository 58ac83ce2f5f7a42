package city

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for an empty city set, non-positive bounds,
	// or any other violation of the List invariants.
	ErrInvalidInput = errors.New("city: invalid input")

	// ErrIndexOutOfRange is returned when a city index is outside [0, n).
	ErrIndexOutOfRange = errors.New("city: index out of range")

	// ErrDuplicateCity is returned when two cities share coordinates.
	// It wraps ErrInvalidInput.
	ErrDuplicateCity = fmt.Errorf("%w: duplicate city coordinates", ErrInvalidInput)

	// ErrMalformedLine is returned by Read for a line that is not a city
	// record. It wraps ErrInvalidInput.
	ErrMalformedLine = fmt.Errorf("%w: malformed city line", ErrInvalidInput)
)
