// Package labelcodec converts categorical labels, such as intent or domain names
// in an NLU pipeline, into contiguous integer codes and back.
//
// A Codec is fitted on a sequence of labels: the distinct values are sorted in
// ascending order and assigned the codes 0..k-1, where k is the number of
// distinct values. The mapping is owned by the Codec and lives until the next
// fit replaces it; applications that need several label spaces (for example
// intents and domains) hold one Codec per space.
//
// # Basic Usage
//
//	codec, _ := labelcodec.NewStringCodec()
//
//	codes, _ := codec.Encode([]string{"book_flight", "cancel_flight", "book_flight"})
//	// codes == []int{0, 1, 0}
//
//	labels, _ := codec.Decode([]int{1, 0})
//	// labels == []string{"cancel_flight", "book_flight"}
//
// # Ordering
//
// Codes follow the ascending order of the distinct labels. New orders values
// with cmp.Compare; NewFunc accepts a custom compare function for label types
// that are comparable but not ordered. Values that cannot be ordered
// consistently, such as a float NaN, are rejected at fit time.
//
// # Concurrency
//
// A Codec is not safe for concurrent use while it is being fitted. Once fitted,
// Decode, Transform and the read-only accessors may be called concurrently.
package labelcodec

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/labelcodec/errs"
	"github.com/arloliu/labelcodec/internal/classes"
	"github.com/arloliu/labelcodec/internal/hash"
	"github.com/arloliu/labelcodec/internal/options"
)

// Codec maps labels of type T to integer codes and back.
//
// The zero value has no ordering and cannot be fitted; create a Codec with New,
// NewFunc or NewStringCodec.
type Codec[T comparable] struct {
	compare func(a, b T) int
	classes []T             // Sorted distinct labels; classes[code] is the label of code
	index   map[T]int       // Label → code
	scratch *classes.Set[T] // Reused between fits for deduplication

	capacity int
	initial  []T // Classes from WithClasses, fitted at construction
}

// New creates a Codec for an ordered label type. Codes follow cmp.Compare order.
func New[T cmp.Ordered](opts ...Option[T]) (*Codec[T], error) {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewStringCodec creates a Codec for string labels, the common case for intent and domain names.
func NewStringCodec(opts ...Option[string]) (*Codec[string], error) {
	return New[string](opts...)
}

// NewFunc creates a Codec whose codes follow the order defined by compare.
//
// compare must return a negative number when a < b, zero when a == b and a
// positive number when a > b, and must be consistent with ==: two distinct
// labels comparing equal are reported as unordered at fit time.
func NewFunc[T comparable](compare func(a, b T) int, opts ...Option[T]) (*Codec[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil compare function", errs.ErrInvalidOption)
	}

	c := &Codec[T]{compare: compare}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	c.resetScratch()

	if c.initial != nil {
		initial := c.initial
		c.initial = nil
		if err := c.Fit(initial); err != nil {
			return nil, fmt.Errorf("%w: classes: %w", errs.ErrInvalidOption, err)
		}
	}

	return c, nil
}

// Encode fits the codec on labels and returns the code of every label in input order.
//
// The previous mapping, if any, is replaced. On error the previous mapping is kept.
//
// Returns errs.ErrEmptyLabels when labels is empty and errs.ErrUnorderedLabel
// when a label cannot be ordered consistently.
func (c *Codec[T]) Encode(labels []T) ([]int, error) {
	if err := c.Fit(labels); err != nil {
		return nil, err
	}

	codes := make([]int, len(labels))
	for i, label := range labels {
		codes[i] = c.index[label]
	}

	return codes, nil
}

// Decode returns the label of every code in input order, using the current mapping.
//
// Returns errs.ErrNotFitted when the codec has not been fitted and
// errs.ErrUnknownCode when a code is outside [0, Len()-1].
func (c *Codec[T]) Decode(codes []int) ([]T, error) {
	if !c.IsFitted() {
		return nil, errs.ErrNotFitted
	}

	labels := make([]T, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(c.classes) {
			return nil, fmt.Errorf("%w: code %d at position %d, valid range is [0, %d]",
				errs.ErrUnknownCode, code, i, len(c.classes)-1)
		}
		labels[i] = c.classes[code]
	}

	return labels, nil
}

// Fit replaces the mapping with one built from the distinct values of labels.
// On error the previous mapping is kept.
func (c *Codec[T]) Fit(labels []T) error {
	if len(labels) == 0 {
		return errs.ErrEmptyLabels
	}
	if c.compare == nil {
		return fmt.Errorf("%w: codec has no compare function", errs.ErrInvalidOption)
	}

	c.resetScratch()
	for i, label := range labels {
		if classes.Unordered(label) {
			return fmt.Errorf("%w: label %v at position %d", errs.ErrUnorderedLabel, label, i)
		}
		c.scratch.Add(label)
	}

	sorted := c.scratch.Sorted(c.compare)
	for i := 1; i < len(sorted); i++ {
		if c.compare(sorted[i-1], sorted[i]) >= 0 {
			return fmt.Errorf("%w: labels %v and %v compare equal", errs.ErrUnorderedLabel, sorted[i-1], sorted[i])
		}
	}

	index := make(map[T]int, c.scratch.Count())
	for code, label := range sorted {
		index[label] = code
	}

	c.classes = sorted
	c.index = index

	return nil
}

// Transform returns the code of every label using the current mapping, without refitting.
//
// Returns errs.ErrNotFitted when the codec has not been fitted and
// errs.ErrUnknownLabel when a label was not present at fit time.
func (c *Codec[T]) Transform(labels []T) ([]int, error) {
	if !c.IsFitted() {
		return nil, errs.ErrNotFitted
	}

	codes := make([]int, len(labels))
	for i, label := range labels {
		code, ok := c.index[label]
		if !ok {
			return nil, fmt.Errorf("%w: label %v at position %d", errs.ErrUnknownLabel, label, i)
		}
		codes[i] = code
	}

	return codes, nil
}

// Code returns the code assigned to label.
func (c *Codec[T]) Code(label T) (int, bool) {
	code, ok := c.index[label]
	return code, ok
}

// Label returns the label assigned to code.
func (c *Codec[T]) Label(code int) (T, bool) {
	if code < 0 || code >= len(c.classes) {
		var zero T
		return zero, false
	}

	return c.classes[code], true
}

// Classes returns a copy of the fitted labels in code order, or nil when unfitted.
func (c *Codec[T]) Classes() []T {
	return slices.Clone(c.classes)
}

// Len returns the number of distinct labels in the current mapping.
func (c *Codec[T]) Len() int {
	return len(c.classes)
}

// IsFitted reports whether the codec holds a mapping.
func (c *Codec[T]) IsFitted() bool {
	return c.classes != nil
}

// Fingerprint returns the xxHash64 of the fitted labels in code order, or 0 when unfitted.
//
// Two codecs with the same fingerprint assign the same codes to the same labels,
// which lets a training stage and an inference stage check that they agree on
// the label space. Non-string labels are hashed through their %#v form, so
// label types whose %#v output is not unique per value (pointers, or types with
// a custom GoString) weaken that guarantee.
func (c *Codec[T]) Fingerprint() uint64 {
	if !c.IsFitted() {
		return 0
	}

	keys := make([]string, len(c.classes))
	for i, label := range c.classes {
		keys[i] = labelKey(label)
	}

	return hash.Fingerprint(keys)
}

// Reset returns the codec to the unfitted state.
func (c *Codec[T]) Reset() {
	c.classes = nil
	c.index = nil
	c.resetScratch()
}

func (c *Codec[T]) resetScratch() {
	if c.scratch == nil {
		c.scratch = classes.NewSet[T](c.capacity)
		return
	}
	c.scratch.Reset()
}

func labelKey[T comparable](label T) string {
	if s, ok := any(label).(string); ok {
		return s
	}

	return fmt.Sprintf("%#v", label)
}
