// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	multiplier = 1664525
	increment  = 1013904223
	permuter   = 277803737
)

// Seed is the complete state of the pseudo-random source: a 32-bit state
// word and the stream increment that drives it forward. Seed is a small
// immutable value; operations that consume randomness return a successor
// seed instead of mutating anything, so seeds can be freely copied,
// compared and reused.
//
// The sequence is a 32-bit permuted congruential generator in the family
// defined in
//
//	PCG: A Family of Simple Fast Space-Efficient Statistically Good
//	Algorithms for Random Number Generation
//	Melissa E. O'Neill, Harvey Mudd College
//	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// With only 32 bits of state it is compact and fast but not secure; see
// the package documentation for the intended uses.
type Seed struct {
	state uint32
	inc   uint32
}

// NewSeed returns the seed derived from n. Equal inputs yield equal seeds,
// and the input is scattered across the state space before use, so small
// or sequential values of n are fine. Only the low 32 bits of n
// contribute; negative values truncate two's-complement style.
func NewSeed(n int64) Seed {
	s := Seed{state: 0, inc: increment}.next()
	s.state += uint32(n)
	return s.next()
}

// RandomSeed returns a seed drawn from the operating system's entropy
// source, for runs that should not repeat. If the entropy source fails it
// falls back to the wall clock.
func RandomSeed() Seed {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return NewSeed(int64(binary.LittleEndian.Uint64(b[:])))
	}
	return NewSeed(time.Now().UnixNano())
}

// next advances the state one step of the linear congruential sequence.
// The increment itself never changes; it selects which sequence the state
// walks.
func (s Seed) next() Seed {
	return Seed{state: s.state*multiplier + s.inc, inc: s.inc}
}

// output permutes the current state into the 32-bit value the seed stands
// for. It does not advance the state; callers pair it with next. All
// arithmetic is exact uint32 arithmetic, wrapping mod 2^32.
func (s Seed) output() uint32 {
	word := ((s.state >> ((s.state >> 28) + 4)) ^ s.state) * permuter
	return (word >> 22) ^ word
}

// String renders the seed as "state/increment" for logs and error
// messages. Use Encode for a round-trippable form.
func (s Seed) String() string {
	return fmt.Sprintf("%d/%d", s.state, s.inc)
}
