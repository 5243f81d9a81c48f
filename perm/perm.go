// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package perm generates uniformly random permutations of cell indexes,
used to scatter "on" dots over a grid without any positional bias.

The random source is passed in explicitly so that each trial, environment,
or test can own its own seeded generator.
*/
package perm

// Source is the random capability needed for permutation.
// *rand.Rand satisfies it directly, and SysSource adapts an erand.SysRand.
type Source interface {
	// Intn returns a uniform random int in [0, n)
	Intn(n int) int
}

// Permute returns a new slice holding each of 0..n-1 exactly once,
// in uniformly random order over all n! orderings.
// n <= 0 returns an empty slice.
func Permute(n int, rnd Source) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	PermuteInto(p, rnd)
	return p
}

// PermuteInto fills p with the identity sequence 0..len(p)-1 and then
// shuffles it in place (Fisher-Yates, from the last index down to 1).
func PermuteInto(p []int, rnd Source) {
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// IsPerm returns true if p contains each of 0..len(p)-1 exactly once.
func IsPerm(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
