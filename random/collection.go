// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import "github.com/itsmanjeet/prng/hashset"

const (
	// unsizedLimit bounds the drawn size of the unsized collection
	// generators (List, Set, Dict, String).
	unsizedLimit = 32

	// duplicateLimit is how many consecutive draws may hit an existing
	// member before a set or dict stops growing. It keeps element
	// generators with too few distinct values from looping forever.
	duplicateLimit = 10
)

// FixedSizeList returns a generator producing slices of exactly n values
// drawn consecutively from g, in draw order. For n <= 0 the result is
// empty and no randomness is consumed.
func FixedSizeList[T any](g Generator[T], n int) Generator[[]T] {
	return func(seed Seed) ([]T, Seed) {
		if n <= 0 {
			return nil, seed
		}
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			v, next := g(seed)
			out = append(out, v)
			seed = next
		}
		return out, seed
	}
}

// List returns a generator producing slices of 0 to 32 values from g, the
// length itself being random.
func List[T any](g Generator[T]) Generator[[]T] {
	return Then(Int(0, unsizedLimit), func(n int) Generator[[]T] {
		return FixedSizeList(g, n)
	})
}

// FixedSizeSet returns a generator producing sets of up to n distinct
// values from g. Draws that duplicate a member are retried, but after ten
// duplicates in a row the set is returned short rather than drawing
// forever.
func FixedSizeSet[T comparable](g Generator[T], n int) Generator[hashset.Set[T]] {
	return func(seed Seed) (hashset.Set[T], Seed) {
		set := hashset.New[T]()
		misses := 0
		for set.Len() < n && misses < duplicateLimit {
			v, next := g(seed)
			seed = next
			if set.Contains(v) {
				misses++
				continue
			}
			misses = 0
			set.Add(v)
		}
		return set, seed
	}
}

// Set returns a generator producing sets of up to 32 values from g, the
// target size itself being random.
func Set[T comparable](g Generator[T]) Generator[hashset.Set[T]] {
	return Then(Int(0, unsizedLimit), func(n int) Generator[hashset.Set[T]] {
		return FixedSizeSet(g, n)
	})
}

// FixedSizeDict returns a generator producing maps of up to n entries. A
// key and a value are drawn on every attempt; an attempt whose key is
// already present leaves the map unchanged, discards the value, and counts
// toward the same ten-in-a-row duplicate stop as FixedSizeSet.
func FixedSizeDict[K comparable, V any](keys Generator[K], values Generator[V], n int) Generator[map[K]V] {
	return func(seed Seed) (map[K]V, Seed) {
		dict := make(map[K]V)
		misses := 0
		for len(dict) < n && misses < duplicateLimit {
			k, next := keys(seed)
			v, next := values(next)
			seed = next
			if _, ok := dict[k]; ok {
				misses++
				continue
			}
			misses = 0
			dict[k] = v
		}
		return dict, seed
	}
}

// Dict returns a generator producing maps of up to 32 entries, the target
// size itself being random.
func Dict[K comparable, V any](keys Generator[K], values Generator[V]) Generator[map[K]V] {
	return Then(Int(0, unsizedLimit), func(n int) Generator[map[K]V] {
		return FixedSizeDict(keys, values, n)
	})
}
