// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dots

import (
	"fmt"

	"github.com/emer/dotdiff/perm"
)

// Stim is one composed dot-difference stimulus, with the realized
// number of on cells on each side.
type Stim struct {

	// dots on the left square
	Left Field `desc:"dots on the left square"`

	// dots on the right square
	Right Field `desc:"dots on the right square"`

	// number of on cells on the left
	NLeft int `desc:"number of on cells on the left"`

	// number of on cells on the right
	NRight int `desc:"number of on cells on the right"`

	// side with Baseline + NumDots on cells
	Target Sides `desc:"side with Baseline + NumDots on cells"`

	// requested difficulty (extra dots over Baseline on the target side)
	NumDots float64 `desc:"requested difficulty (extra dots over Baseline on the target side)"`
}

// FieldOf returns the field for given side
func (st *Stim) FieldOf(sd Sides) *Field {
	if sd == Left {
		return &st.Left
	}
	return &st.Right
}

// NOn returns the realized on-cell count for given side
func (st *Stim) NOn(sd Sides) int {
	if sd == Left {
		return st.NLeft
	}
	return st.NRight
}

// Diff returns the realized count difference, target minus non-target
func (st *Stim) Diff() int {
	return st.NOn(st.Target) - st.NOn(st.Target.Other())
}

// MoreSide returns the side with more on cells, which is the correct response.
// With equal counts (NumDots < 1) the Target side is still returned.
func (st *Stim) MoreSide() Sides {
	tg := st.Target
	if st.NOn(tg.Other()) > st.NOn(tg) {
		return tg.Other()
	}
	return tg
}

// String returns a short summary of the stimulus
func (st *Stim) String() string {
	return fmt.Sprintf("Tgt_%v_L_%d_R_%d", st.Target, st.NLeft, st.NRight)
}

// Compositor generates dot-difference stimuli.  It owns its random source
// and permutation buffers, so each Compositor is an independent stream.
type Compositor struct {

	// display parameters
	Params Params `desc:"display parameters"`

	// random source for the permutations
	Rand perm.Source `view:"-" desc:"random source for the permutations"`

	permA []int
	permB []int
}

// NewCompositor returns a new Compositor using given params (defaults if nil)
// and random source.
func NewCompositor(pars *Params, rnd perm.Source) *Compositor {
	cp := &Compositor{Rand: rnd}
	if pars != nil {
		cp.Params = *pars
		cp.Params.Update()
	} else {
		cp.Params.Defaults()
	}
	return cp
}

// Compose builds a new stimulus with numDots extra on cells over Baseline
// on the target side (left if targetLeft, else right).  Two independent
// permutations are drawn: the target grid has Threshold(numDots) on cells,
// the other grid exactly Baseline.  Params are re-derived (Update) first,
// so GridSize can be changed between calls.
func (cp *Compositor) Compose(numDots float64, targetLeft bool) *Stim {
	dp := &cp.Params
	dp.Update()
	n := dp.NCells
	if len(cp.permA) != n {
		cp.permA = make([]int, n)
		cp.permB = make([]int, n)
	}
	perm.PermuteInto(cp.permA, cp.Rand)
	perm.PermuteInto(cp.permB, cp.Rand)

	st := &Stim{NumDots: numDots, Target: SideOf(targetLeft)}
	st.Left.Config(dp.GridSize)
	st.Right.Config(dp.GridSize)

	tgt := st.FieldOf(st.Target)
	oth := st.FieldOf(st.Target.Other())
	tgt.Set(cp.permA, dp.Threshold(numDots))
	oth.Set(cp.permB, dp.Baseline)

	st.NLeft = st.Left.NOn()
	st.NRight = st.Right.NOn()
	return st
}
