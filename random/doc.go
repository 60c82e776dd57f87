// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package random provides deterministic generation of pseudo-random values
through a pure, composable Generator type.

Unlike math/rand, nothing in this package carries hidden state. A Generator
is a function from a Seed to a value and a successor Seed, and stepping the
same generator with the same seed always produces the same pair. The caller
owns the seed and decides how to thread it forward:

	die := random.Int(1, 6)
	first, seed := die.Step(random.NewSeed(11))
	second, seed := die.Step(seed)

Generators compose. Map and Then derive new generators from existing ones,
and the collection generators are built the same way, so arbitrarily
structured random data unfolds from a single seed:

	point := random.Pair(random.Float(-1, 1), random.Float(-1, 1))
	cloud := random.FixedSizeList(point, 100)

Because stepping is pure, a seed value doubles as a reproducible name for
everything generated from it: persist it with Encode, restore it with
DecodeSeed, and the run replays exactly.

The underlying number source is a 32-bit permuted congruential generator.
It is small, fast and statistically sound for simulation, testing, games
and procedural generation, but it is not cryptographically secure; never
use it for secrets. Use RandomSeed to obtain an unpredictable starting
seed when reproducibility is not wanted.
*/
package random
