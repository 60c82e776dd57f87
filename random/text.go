// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import "unicode/utf8"

// codepointLimit is the top of the rune range the string generators draw
// from: the first 1024 code points, covering ASCII, the Latin supplements
// and extensions, combining diacritics, and Greek.
const codepointLimit = 1023

// character draws one rune from the low 1024 code points, retrying any
// draw that is not a valid rune on its own.
func character() Generator[rune] {
	point := Int(0, codepointLimit)
	return func(seed Seed) (rune, Seed) {
		for {
			n, next := point(seed)
			seed = next
			if r := rune(n); utf8.ValidRune(r) {
				return r, seed
			}
		}
	}
}

// FixedSizeString returns a generator producing strings of exactly n
// characters drawn from the low 1024 code points. Characters are runes,
// not bytes: code points past ASCII encode as two bytes each, so len of
// the result may exceed n.
func FixedSizeString(n int) Generator[string] {
	return Map(FixedSizeList(character(), n), func(runes []rune) string {
		return string(runes)
	})
}

// String returns a generator producing strings of 0 to 32 characters, the
// length itself being random.
func String() Generator[string] {
	return Then(Int(0, unsizedLimit), FixedSizeString)
}
