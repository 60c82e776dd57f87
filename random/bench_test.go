// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random_test

import (
	"testing"

	"github.com/itsmanjeet/prng/random"
)

func BenchmarkInt(b *testing.B) {
	die := random.Int(1, 6)
	seed := random.NewSeed(1)
	for i := 0; i < b.N; i++ {
		_, seed = die.Step(seed)
	}
}

func BenchmarkIntPowerOfTwo(b *testing.B) {
	g := random.Int(0, 1023)
	seed := random.NewSeed(1)
	for i := 0; i < b.N; i++ {
		_, seed = g.Step(seed)
	}
}

func BenchmarkFloat(b *testing.B) {
	g := random.Float(0, 1)
	seed := random.NewSeed(1)
	for i := 0; i < b.N; i++ {
		_, seed = g.Step(seed)
	}
}

func BenchmarkFixedSizeList(b *testing.B) {
	g := random.FixedSizeList(random.Int(1, 6), 100)
	seed := random.NewSeed(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, seed = g.Step(seed)
	}
}

func BenchmarkShuffle(b *testing.B) {
	deck := make([]int, 52)
	for i := range deck {
		deck[i] = i
	}
	g := random.Shuffle(deck)
	seed := random.NewSeed(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, seed = g.Step(seed)
	}
}

func BenchmarkSample(b *testing.B) {
	items := make([]int, 10000)
	for i := range items {
		items[i] = i
	}
	g := random.Sample(items, 10)
	seed := random.NewSeed(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, seed = g.Step(seed)
	}
}
