// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import "github.com/emer/emergent/erand"

// SysSource adapts an erand.SysRand to Source (and to any source needing
// Float64), passing the thread index Thr on every call.
// Thr = -1 is the usual value for single-threaded use.
type SysSource struct {
	Rand *erand.SysRand
	Thr  int
}

// NewSysSource returns a SysSource drawing from rnd with thread index -1
func NewSysSource(rnd *erand.SysRand) SysSource {
	return SysSource{Rand: rnd, Thr: -1}
}

// Intn returns a uniform random int in [0, n)
func (ss SysSource) Intn(n int) int {
	return ss.Rand.Intn(n, ss.Thr)
}

// Float64 returns a uniform random number in [0, 1)
func (ss SysSource) Float64() float64 {
	return ss.Rand.Float64(ss.Thr)
}
