// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

// A Stream is an unbounded sequence of draws from one generator, unfolding
// from a starting seed in constant memory. It is the one stateful
// construct in the package: Next moves an internal cursor, so a Stream is
// not safe for concurrent use. The generator itself stays pure, and two
// streams built from the same generator and seed yield the same sequence.
type Stream[T any] struct {
	gen  Generator[T]
	seed Seed
}

// Stream returns the infinite sequence of draws from g starting at seed.
func (g Generator[T]) Stream(seed Seed) *Stream[T] {
	return &Stream[T]{gen: g, seed: seed}
}

// Next draws the next value and advances the stream past it.
func (s *Stream[T]) Next() T {
	v, next := s.gen(s.seed)
	s.seed = next
	return v
}

// Take draws the next n values. For n <= 0 it returns an empty slice and
// the stream does not move.
func (s *Stream[T]) Take(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Next())
	}
	return out
}

// Seed reports the seed the next draw will use. Persisting it with Encode
// checkpoints the stream's position; a new Stream from the decoded seed
// resumes exactly there.
func (s *Stream[T]) Seed() Seed {
	return s.seed
}
