// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itsmanjeet/prng/random"
)

// seedAt builds the seed with the given raw state and the default
// increment, to pin where a generator must leave the sequence.
func seedAt(state uint32) random.Seed {
	return random.MakeSeed(state, random.DefaultIncrement)
}

func TestConstant(t *testing.T) {
	seed := random.NewSeed(11)
	got, next := random.Constant("earth").Step(seed)
	if got != "earth" {
		t.Errorf("result mismatch, got=%q, want=%q", got, "earth")
	}
	if next != seed {
		t.Errorf("Constant consumed randomness: seed moved from %v to %v", seed, next)
	}
}

func TestStepDeterministic(t *testing.T) {
	die := random.Int(1, 6)
	seed := random.NewSeed(42)
	v1, s1 := die.Step(seed)
	v2, s2 := die.Step(seed)
	if v1 != v2 || s1 != s2 {
		t.Errorf("same seed produced different steps: (%d,%v) vs (%d,%v)", v1, s1, v2, s2)
	}
}

func TestMap(t *testing.T) {
	doubled := random.Map(random.Int(1, 6), func(n int) int { return n * 2 })
	got, next := doubled.Step(random.NewSeed(11))
	if got != 10 {
		t.Errorf("result mismatch, got=%d, want=%d", got, 10)
	}
	if want := seedAt(3510170156); next != want {
		t.Errorf("seed mismatch, got=%v, want=%v", next, want)
	}
}

func TestMapKeepsConsumption(t *testing.T) {
	die := random.Int(1, 6)
	asString := random.Map(die, strconv.Itoa)
	seed := random.NewSeed(7)
	_, wantSeed := die.Step(seed)
	_, gotSeed := asString.Step(seed)
	if gotSeed != wantSeed {
		t.Errorf("Map changed consumption, got=%v, want=%v", gotSeed, wantSeed)
	}
}

// The dice stream at seed 11 is 5, 6, 1, 2, 1, so the MapN sums walk
// 11, 12, 14, 15.
func TestMapN(t *testing.T) {
	die := random.Int(1, 6)
	add2 := func(a, b int) int { return a + b }
	add3 := func(a, b, c int) int { return a + b + c }
	add4 := func(a, b, c, d int) int { return a + b + c + d }
	add5 := func(a, b, c, d, e int) int { return a + b + c + d + e }
	tests := []struct {
		name string
		gen  random.Generator[int]
		want int
		end  random.Seed
	}{
		{"Map2", random.Map2(die, die, add2), 11, seedAt(857524123)},
		{"Map3", random.Map3(die, die, die, add3), 12, seedAt(3398424638)},
		{"Map4", random.Map4(die, die, die, die, add4), 14, seedAt(4092830341)},
		{"Map5", random.Map5(die, die, die, die, die, add5), 15, seedAt(2441884192)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, end := tc.gen.Step(random.NewSeed(11))
			if got != tc.want {
				t.Errorf("result mismatch, got=%d, want=%d", got, tc.want)
			}
			if end != tc.end {
				t.Errorf("seed mismatch, got=%v, want=%v", end, tc.end)
			}
		})
	}
}

func TestPair(t *testing.T) {
	die := random.Int(1, 6)
	got, end := random.Pair(die, die).Step(random.NewSeed(11))
	want := random.Tuple2[int, int]{First: 5, Second: 6}
	if got != want {
		t.Errorf("result mismatch, got=%v, want=%v", got, want)
	}
	if wantEnd := seedAt(857524123); end != wantEnd {
		t.Errorf("seed mismatch, got=%v, want=%v", end, wantEnd)
	}
}

// Then draws a size (5 at seed 11) and hands the remaining sequence to the
// generator built from it.
func TestThen(t *testing.T) {
	die := random.Int(1, 6)
	sized := random.Then(die, func(n int) random.Generator[[]int] {
		return random.FixedSizeList(die, n)
	})
	got, end := sized.Step(random.NewSeed(11))
	want := []int{6, 1, 2, 1, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if wantEnd := seedAt(1638285055); end != wantEnd {
		t.Errorf("seed mismatch, got=%v, want=%v", end, wantEnd)
	}
}

// Map is a convenience over Then and Constant; the two must draw and
// consume identically.
func TestMapMatchesThen(t *testing.T) {
	die := random.Int(1, 6)
	double := func(n int) int { return n * 2 }
	mapped := random.Map(die, double)
	bound := random.Then(die, func(n int) random.Generator[int] {
		return random.Constant(double(n))
	})
	seed := random.NewSeed(11)
	for i := 0; i < 1000; i++ {
		vm, sm := mapped.Step(seed)
		vb, sb := bound.Step(seed)
		if vm != vb || sm != sb {
			t.Fatalf("step %d diverged: (%d,%v) vs (%d,%v)", i, vm, sm, vb, sb)
		}
		seed = sm
	}
}

// Pair is a convenience over nested Then.
func TestPairMatchesThen(t *testing.T) {
	a := random.Int(1, 6)
	b := random.Float(0, 1)
	paired := random.Pair(a, b)
	bound := random.Then(a, func(x int) random.Generator[random.Tuple2[int, float64]] {
		return random.Then(b, func(y float64) random.Generator[random.Tuple2[int, float64]] {
			return random.Constant(random.Tuple2[int, float64]{First: x, Second: y})
		})
	})
	seed := random.NewSeed(42)
	for i := 0; i < 1000; i++ {
		vp, sp := paired.Step(seed)
		vb, sb := bound.Step(seed)
		if vp != vb || sp != sb {
			t.Fatalf("step %d diverged: (%v,%v) vs (%v,%v)", i, vp, sp, vb, sb)
		}
		seed = sp
	}
}

func TestLazyDefersConstruction(t *testing.T) {
	built := 0
	lazy := random.Lazy(func() random.Generator[int] {
		built++
		return random.Int(1, 6)
	})
	if built != 0 {
		t.Fatalf("generator built before first step")
	}
	got, _ := lazy.Step(random.NewSeed(11))
	if got != 5 {
		t.Errorf("result mismatch, got=%d, want=%d", got, 5)
	}
	if built != 1 {
		t.Errorf("build count mismatch, got=%d, want=%d", built, 1)
	}
}

// A self-referential generator: draw bits until one is zero, counting the
// ones. Lazy breaks the definition cycle; the walk must terminate for any
// seed because a zero bit eventually appears.
func TestLazyRecursive(t *testing.T) {
	var runLength func(count int) random.Generator[int]
	runLength = func(count int) random.Generator[int] {
		return random.Then(random.Int(0, 1), func(bit int) random.Generator[int] {
			if bit == 0 {
				return random.Constant(count)
			}
			return random.Lazy(func() random.Generator[int] {
				return runLength(count + 1)
			})
		})
	}
	for n := int64(0); n < 50; n++ {
		got, _ := runLength(0).Step(random.NewSeed(n))
		if got < 0 || got > 64 {
			t.Fatalf("seed %d: implausible run length %d", n, got)
		}
	}
}

func TestSampleMatchesStep(t *testing.T) {
	g := random.Int(-5, 5)
	seed := random.NewSeed(11)
	want, _ := g.Step(seed)
	if got := g.Sample(seed); got != want {
		t.Errorf("result mismatch, got=%d, want=%d", got, want)
	}
}

func TestRandomSample(t *testing.T) {
	got := random.Int(1, 6).RandomSample()
	if got < 1 || got > 6 {
		t.Errorf("value out of range: %d", got)
	}
}
