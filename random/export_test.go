// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

// MakeSeed builds a seed from raw state, so external tests can pin the
// exact positions a generator is expected to leave the sequence in.
func MakeSeed(state, inc uint32) Seed {
	return Seed{state: state, inc: inc}
}

// Output exposes the PCG permutation so tests can check the power-of-two
// fast path against a direct mask of it.
var Output = Seed.output

// DefaultIncrement is the stream increment NewSeed assigns.
const DefaultIncrement = increment
