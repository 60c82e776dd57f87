// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

// Float returns a generator of floating-point numbers uniformly
// distributed over [low, high). Each draw consumes exactly two steps of
// the underlying sequence, combining 26 and 27 bits of consecutive outputs
// into a 53-bit mantissa, so results land on a grid of 2^53 evenly spaced
// points scaled into the range.
//
// Unlike Int, the bounds are not reordered: Float(1, 0) runs the same
// formula with a negative width and produces values in (0, 1].
func Float(low, high float64) Generator[float64] {
	const (
		topBits = 0x03FFFFFF // high 26 mantissa bits
		lowBits = 0x07FFFFFF // low 27 mantissa bits
	)
	return func(seed Seed) (float64, Seed) {
		s1 := seed.next()
		hi := float64(seed.output() & topBits)
		lo := float64(s1.output() & lowBits)
		unit := (hi*(1<<27) + lo) / (1 << 53)
		// The explicit conversion pins the intermediate rounding so the
		// result cannot vary with platform multiply-add fusion.
		return float64(unit*(high-low)) + low, s1.next()
	}
}
