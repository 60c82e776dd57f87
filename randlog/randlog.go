// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randlog traces generator steps through a logr.Logger.
package randlog

import (
	"github.com/go-logr/logr"

	"github.com/itsmanjeet/prng/random"
)

// Traced returns a generator that draws exactly like g and logs every step
// at verbosity 1: the value drawn, the seed consumed and the successor
// seed. The wrapper uses only the public stepping contract and changes
// nothing about the sequence, so it can be layered in and out freely while
// chasing reproducibility problems.
func Traced[T any](g random.Generator[T], log logr.Logger, name string) random.Generator[T] {
	return func(seed random.Seed) (T, random.Seed) {
		v, next := g.Step(seed)
		log.V(1).Info("step",
			"generator", name,
			"value", v,
			"seed", seed.String(),
			"next", next.String(),
		)
		return v, next
	}
}
