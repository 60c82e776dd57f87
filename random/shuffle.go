// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"math"

	"golang.org/x/exp/slices"
)

// keyed pairs an element with the sort key Shuffle assigns it.
type keyed[T any] struct {
	key  float64
	item T
}

// Shuffle returns a generator producing permutations of items. Each
// element is tagged with an independent Float(0, 1) key, drawn in input
// order, and the result is the elements sorted by key. The input slice is
// never modified, and every permutation is equally likely.
func Shuffle[T any](items []T) Generator[[]T] {
	unit := Float(0, 1)
	return func(seed Seed) ([]T, Seed) {
		tagged := make([]keyed[T], len(items))
		for i, item := range items {
			k, next := unit(seed)
			seed = next
			tagged[i] = keyed[T]{key: k, item: item}
		}
		slices.SortFunc(tagged, func(a, b keyed[T]) bool {
			return a.key < b.key
		})
		out := make([]T, len(tagged))
		for i, p := range tagged {
			out[i] = p.item
		}
		return out, seed
	}
}

// Sample returns a generator that picks n elements from items without
// replacement, using reservoir sampling (Algorithm L), so each element is
// equally likely to be picked however long the input. If n <= 0 the result
// is empty; if len(items) <= n it is a copy of the whole input in order.
// In both of those cases no randomness is consumed.
func Sample[T any](items []T, n int) Generator[[]T] {
	unit := Float(0, 1)
	slot := Int(0, n-1)
	return func(seed Seed) ([]T, Seed) {
		if n <= 0 {
			return nil, seed
		}
		if len(items) <= n {
			return append([]T(nil), items...), seed
		}
		reservoir := append([]T(nil), items[:n]...)

		u, seed := unit(seed)
		w := math.Exp(math.Log(u) / float64(n))
		// Skip ahead a geometrically distributed number of elements,
		// replace one reservoir slot, tighten w, repeat until the skip
		// runs off the end of the input.
		for i := n - 1; w > 0; {
			u, seed = unit(seed)
			skip := math.Floor(math.Log(u) / math.Log(1-w))
			if skip >= float64(len(items)-i-1) {
				break
			}
			i += int(skip) + 1
			var j int
			j, seed = slot(seed)
			reservoir[j] = items[i]
			u, seed = unit(seed)
			w *= math.Exp(math.Log(u) / float64(n))
		}
		return reservoir, seed
	}
}
