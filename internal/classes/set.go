// Package classes collects the distinct labels of a fit and orders them into a class list.
package classes

import "slices"

// Set tracks distinct label values in first-seen order.
type Set[T comparable] struct {
	seen   map[T]struct{} // Membership for deduplication
	values []T            // Distinct values, first-seen order
}

// NewSet creates a Set pre-sized for capacity distinct values.
func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		seen:   make(map[T]struct{}, capacity),
		values: make([]T, 0, capacity),
	}
}

// Add records v and reports whether it had not been seen before.
func (s *Set[T]) Add(v T) bool {
	if _, exists := s.seen[v]; exists {
		return false
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)

	return true
}

// Count returns the number of distinct values.
func (s *Set[T]) Count() int {
	return len(s.values)
}

// Sorted returns a new slice holding the distinct values in ascending order under compare.
func (s *Set[T]) Sorted(compare func(a, b T) int) []T {
	sorted := slices.Clone(s.values)
	slices.SortFunc(sorted, compare)

	return sorted
}

// Reset clears the Set while keeping its allocated capacity.
func (s *Set[T]) Reset() {
	clear(s.seen)
	s.values = s.values[:0]
}

// Unordered reports whether v cannot take part in a consistent ordering.
// A value that is not equal to itself, such as a float NaN, can be neither
// deduplicated nor sorted.
func Unordered[T comparable](v T) bool {
	return v != v //nolint: gocritic,staticcheck
}
