// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

// Int returns a generator of integers uniformly distributed over the
// inclusive range [low, high]. Reversed bounds are swapped, so Int(6, 1)
// is the same generator as Int(1, 6). The span high-low+1 must fit in 32
// bits.
//
// Uniformity is exact: a span that does not divide 2^32 is handled by
// rejecting a sliver of the output space rather than by folding the excess
// onto the low values, so no result is more likely than another.
func Int(low, high int) Generator[int] {
	if low > high {
		low, high = high, low
	}
	span := uint64(high) - uint64(low) + 1
	if span&(span-1) == 0 {
		// Power-of-two span: the low bits of a single output are already
		// uniform, so mask and return.
		mask := uint32(span - 1)
		return func(seed Seed) (int, Seed) {
			return int(int64(low) + int64(mask&seed.output())), seed.next()
		}
	}
	r := uint32(span)
	// Rejecting outputs below -r mod r leaves a whole number of copies of
	// [0, r), so the modulus below is unbiased. The rejection region is
	// always smaller than r, hence smaller than half the output space, and
	// the loop terminates with probability one.
	threshold := -r % r
	return func(seed Seed) (int, Seed) {
		for {
			x := seed.output()
			seed = seed.next()
			if x >= threshold {
				return int(int64(low) + int64(x%r)), seed
			}
		}
	}
}
