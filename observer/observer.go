// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package observer is a simulated subject for the dot-difference task,
responding with a Weibull psychometric function of the realized
difference in white dots between the two squares.
*/
package observer

import (
	"github.com/emer/dotdiff/dots"
	"gonum.org/v1/gonum/stat/distuv"
)

// Guess is the chance level for a two-alternative choice
const Guess = 0.5

// Source is the random capability needed to respond
type Source interface {
	// Float64 returns a uniform random value in [0, 1)
	Float64() float64
}

// Observer has psychometric function parameters:
// p(correct) = Guess + (1 - Guess - Lapse) * (1 - exp(-(d / Alpha)^Beta))
type Observer struct {
	Alpha float64 `def:"3" min:"0" desc:"Weibull scale: dot difference at which performance is 63% of the way from guessing to 1 - Lapse"`
	Beta  float64 `def:"2" min:"0" desc:"Weibull shape: steepness of the psychometric function"`
	Lapse float64 `def:"0.02" min:"0" max:"0.5" desc:"probability of an error regardless of difficulty"`
}

func (ob *Observer) Defaults() {
	ob.Alpha = 3
	ob.Beta = 2
	ob.Lapse = 0.02
}

// PCorrect returns the probability of a correct response for a
// dot difference of diff
func (ob *Observer) PCorrect(diff float64) float64 {
	if diff <= 0 {
		return Guess
	}
	wb := distuv.Weibull{K: ob.Beta, Lambda: ob.Alpha}
	return Guess + (1-Guess-ob.Lapse)*wb.CDF(diff)
}

// Respond chooses a side for the stimulus, based on the realized
// on-cell counts reported for each side
func (ob *Observer) Respond(st *dots.Stim, rnd Source) dots.Sides {
	more := st.MoreSide()
	diff := st.NOn(more) - st.NOn(more.Other())
	if rnd.Float64() < ob.PCorrect(float64(diff)) {
		return more
	}
	return more.Other()
}
