// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"math"

	"golang.org/x/xerrors"
)

// ErrNoOptions is returned by TryUniform and TryWeighted when given no
// options: with nothing to choose from, no generator can exist.
var ErrNoOptions = xerrors.New("random: no options to choose from")

// Choice pairs a candidate value with the weight deciding how often
// Weighted produces it. Weights are relative and need not sum to anything;
// a negative weight counts as its absolute value.
type Choice[T any] struct {
	Weight float64
	Value  T
}

// Weighted returns a generator that picks one of the options with
// probability proportional to its weight.
func Weighted[T any](first Choice[T], rest ...Choice[T]) Generator[T] {
	options := make([]Choice[T], 0, len(rest)+1)
	options = append(options, first)
	options = append(options, rest...)
	return weighted(options)
}

// TryWeighted is Weighted for a slice whose size is not known statically.
// It fails with ErrNoOptions if options is empty. The slice is copied, so
// later changes to it do not affect the generator.
func TryWeighted[T any](options []Choice[T]) (Generator[T], error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	return weighted(append([]Choice[T](nil), options...)), nil
}

// Uniform returns a generator that picks among the options with equal
// probability. It is Weighted with every weight equal.
func Uniform[T any](first T, rest ...T) Generator[T] {
	options := make([]Choice[T], 0, len(rest)+1)
	options = append(options, Choice[T]{Weight: 1, Value: first})
	for _, v := range rest {
		options = append(options, Choice[T]{Weight: 1, Value: v})
	}
	return weighted(options)
}

// TryUniform is Uniform for a slice whose size is not known statically.
// It fails with ErrNoOptions if options is empty.
func TryUniform[T any](options []T) (Generator[T], error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	choices := make([]Choice[T], len(options))
	for i, v := range options {
		choices[i] = Choice[T]{Weight: 1, Value: v}
	}
	return weighted(choices), nil
}

// Choose returns a generator that flips a fair coin between a and b.
func Choose[T any](a, b T) Generator[T] {
	return Uniform(a, b)
}

// weighted picks by drawing one position in [0, total weight) and walking
// the options until the countdown falls inside one. Ties on a boundary go
// to the earlier option, and the last option absorbs any residue, so the
// scan is total even when rounding leaves the countdown slightly past the
// final weight. options must be nonempty and owned by the generator.
func weighted[T any](options []Choice[T]) Generator[T] {
	var total float64
	for _, o := range options {
		total += math.Abs(o.Weight)
	}
	pick := Float(0, total)
	return func(seed Seed) (T, Seed) {
		countdown, seed := pick(seed)
		for _, o := range options[:len(options)-1] {
			w := math.Abs(o.Weight)
			if countdown <= w {
				return o.Value, seed
			}
			countdown -= w
		}
		return options[len(options)-1].Value, seed
	}
}
