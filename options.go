package labelcodec

import (
	"fmt"
	"slices"

	"github.com/arloliu/labelcodec/errs"
	"github.com/arloliu/labelcodec/internal/options"
)

// Option configures a Codec at construction.
type Option[T comparable] = options.Option[*Codec[T]]

// WithCapacity pre-sizes the codec's internal storage for n distinct labels.
//
// It is a hint only; the codec grows as needed.
func WithCapacity[T comparable](n int) Option[T] {
	return options.New(func(c *Codec[T]) error {
		if n < 0 {
			return fmt.Errorf("%w: capacity %d is negative", errs.ErrInvalidOption, n)
		}
		c.capacity = n

		return nil
	})
}

// WithClasses creates the codec already fitted on the given labels, as if
// Fit(classes) had been called. Duplicates are allowed and input order is
// irrelevant: codes follow the codec's ordering.
//
// Use it at inference time to rebuild the label space a model was trained on.
func WithClasses[T comparable](classes ...T) Option[T] {
	return options.NoError(func(c *Codec[T]) {
		c.initial = slices.Clone(classes)
		if c.initial == nil {
			c.initial = []T{}
		}
	})
}
