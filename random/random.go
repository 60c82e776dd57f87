// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

// A Generator describes how to produce values of type T from a Seed. It is
// a pure function: given equal seeds it returns equal values and equal
// successor seeds, and it keeps no state of its own. Build generators from
// the constructors in this package (Int, Float, Uniform, List, ...) and
// from each other with Map and Then; step them with Step, Sample or
// Stream.
type Generator[T any] func(Seed) (T, Seed)

// Step draws one value, returning it with the seed for the next draw.
// Threading the returned seed into the next call is what moves a sequence
// forward; reusing the input seed replays the same draw.
func (g Generator[T]) Step(seed Seed) (T, Seed) {
	return g(seed)
}

// Sample draws one value and discards the successor seed. Repeated calls
// with the same seed return the same value; use Step to make progress.
func (g Generator[T]) Sample(seed Seed) T {
	v, _ := g(seed)
	return v
}

// RandomSample draws one value from a fresh RandomSeed. It is the only
// nondeterministic way to run a generator.
func (g Generator[T]) RandomSample() T {
	return g.Sample(RandomSeed())
}

// Constant returns a generator that always produces value and consumes no
// randomness: the seed passes through untouched.
func Constant[T any](value T) Generator[T] {
	return func(seed Seed) (T, Seed) {
		return value, seed
	}
}

// Map returns a generator that draws from g and transforms the result
// with f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return func(seed Seed) (B, Seed) {
		a, seed := g(seed)
		return f(a), seed
	}
}

// Map2 returns a generator that draws from ga then gb, in that order, and
// combines the results with f.
func Map2[A, B, C any](ga Generator[A], gb Generator[B], f func(A, B) C) Generator[C] {
	return func(seed Seed) (C, Seed) {
		a, seed := ga(seed)
		b, seed := gb(seed)
		return f(a, b), seed
	}
}

// Map3 is Map2 for three generators, drawn left to right.
func Map3[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) D) Generator[D] {
	return func(seed Seed) (D, Seed) {
		a, seed := ga(seed)
		b, seed := gb(seed)
		c, seed := gc(seed)
		return f(a, b, c), seed
	}
}

// Map4 is Map2 for four generators, drawn left to right.
func Map4[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], f func(A, B, C, D) E) Generator[E] {
	return func(seed Seed) (E, Seed) {
		a, seed := ga(seed)
		b, seed := gb(seed)
		c, seed := gc(seed)
		d, seed := gd(seed)
		return f(a, b, c, d), seed
	}
}

// Map5 is Map2 for five generators, drawn left to right.
func Map5[A, B, C, D, E, F any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], f func(A, B, C, D, E) F) Generator[F] {
	return func(seed Seed) (F, Seed) {
		a, seed := ga(seed)
		b, seed := gb(seed)
		c, seed := gc(seed)
		d, seed := gd(seed)
		e, seed := ge(seed)
		return f(a, b, c, d, e), seed
	}
}

// Tuple2 carries the two results of Pair.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Pair returns a generator that draws from first then second and packs the
// results into a Tuple2.
func Pair[A, B any](first Generator[A], second Generator[B]) Generator[Tuple2[A, B]] {
	return Map2(first, second, func(a A, b B) Tuple2[A, B] {
		return Tuple2[A, B]{First: a, Second: b}
	})
}

// Then returns a generator that draws from g, then draws from whichever
// generator f picks for that value. Use it when the shape of later draws
// depends on an earlier one, the way List draws a size before filling
// elements.
func Then[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return func(seed Seed) (B, Seed) {
		a, seed := g(seed)
		return f(a)(seed)
	}
}

// Lazy returns a generator that builds the real generator only when
// stepped. It exists so self-referential generators (trees, nested lists)
// can close over a variable whose definition is still in progress.
func Lazy[T any](build func() Generator[T]) Generator[T] {
	return func(seed Seed) (T, Seed) {
		return build()(seed)
	}
}
