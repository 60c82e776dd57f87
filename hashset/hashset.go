// Package hashset provides an unordered collection of unique comparable
// values. It is the result type of the set generators in package random.
package hashset

import "golang.org/x/exp/maps"

// Set holds each inserted value at most once. The zero value is not usable;
// construct sets with New. Like a map, a Set is a reference: copies share
// the same underlying storage.
type Set[T comparable] struct {
	inner map[T]struct{}
}

// New returns a set holding the given values.
func New[T comparable](values ...T) Set[T] {
	s := Set[T]{
		inner: make(map[T]struct{}, len(values)),
	}
	for _, v := range values {
		s.inner[v] = struct{}{}
	}
	return s
}

// Add inserts v. Adding a value already present is a no-op.
func (s Set[T]) Add(v T) {
	s.inner[v] = struct{}{}
}

// Delete removes v if present.
func (s Set[T]) Delete(v T) {
	delete(s.inner, v)
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.inner[v]
	return ok
}

// ContainsAll reports whether every given value is in the set.
func (s Set[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if _, ok := s.inner[v]; !ok {
			return false
		}
	}
	return true
}

// Len reports the number of values in the set.
func (s Set[T]) Len() int {
	return len(s.inner)
}

// Equal reports whether s and o hold exactly the same values.
func (s Set[T]) Equal(o Set[T]) bool {
	return s.Len() == o.Len() && s.ContainsAll(o.Slice()...)
}

// Slice returns the values in unspecified order.
func (s Set[T]) Slice() []T {
	return maps.Keys(s.inner)
}
