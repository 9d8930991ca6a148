// Package errs defines the sentinel errors returned by labelcodec.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ...");
// use errors.Is to test for a specific condition.
package errs

import "errors"

var (
	// ErrEmptyLabels is returned when fitting on an empty label sequence.
	ErrEmptyLabels = errors.New("empty label sequence")
	// ErrUnorderedLabel is returned when a label cannot be ordered consistently, e.g. a float NaN.
	ErrUnorderedLabel = errors.New("label cannot be ordered")
	// ErrNotFitted is returned when a codec is used before any fit.
	ErrNotFitted = errors.New("codec is not fitted")
	// ErrUnknownCode is returned when decoding a code outside the fitted range.
	ErrUnknownCode = errors.New("unknown code")
	// ErrUnknownLabel is returned when transforming a label that was not seen at fit time.
	ErrUnknownLabel = errors.New("unknown label")
	// ErrInvalidOption is returned when a codec option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option")
)
