package reconcile

import "errors"

var (
	// ErrMalformedQuantity indicates a quantity token that is neither a
	// recognized literal nor a base-10 integer.
	ErrMalformedQuantity = errors.New("malformed quantity")

	// ErrMalformedPrice indicates a price string with no digits before the
	// first period.
	ErrMalformedPrice = errors.New("malformed price")

	// ErrInvalidBatchSize indicates a non-positive batch size, which is a
	// caller contract violation rather than bad input data.
	ErrInvalidBatchSize = errors.New("invalid batch size")
)
