// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dotenv provides DotEnv, an emergent env.Env that runs the
dot-difference task: each Step composes a new stimulus at the current
difficulty with the target on a random side, and each response scores the
trial, updates the two-trial accuracy history, and moves the difficulty
through the staircase.
*/
package dotenv

import (
	"fmt"

	"github.com/emer/dotdiff/dots"
	"github.com/emer/dotdiff/perm"
	"github.com/emer/dotdiff/stair"
	"github.com/emer/emergent/env"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
)

// DotEnv is the dot-difference task environment, owning the difficulty
// and accuracy history across trials.
type DotEnv struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// [view: inline] stimulus display parameters
	Dots dots.Params `view:"inline" desc:"stimulus display parameters"`

	// [view: inline] staircase parameters
	Stair stair.Params `view:"inline" desc:"staircase parameters"`

	// difficulty (extra dots on the target side) at the start of each run
	StartDiff float64 `def:"4" desc:"difficulty (extra dots on the target side) at the start of each run"`

	// base random seed -- Init adds the run number to it
	RandSeed int64 `desc:"base random seed -- Init adds the run number to it"`

	// current difficulty, used for the next stimulus
	NumDots float64 `inactive:"+" desc:"current difficulty, used for the next stimulus"`

	// last two response outcomes
	Acc stair.Accuracy `inactive:"+" desc:"last two response outcomes"`

	// trial number within the run, used for the staircase step size -- does not wrap
	TrialN int `inactive:"+" desc:"trial number within the run, used for the staircase step size -- does not wrap"`

	// current stimulus
	Stim *dots.Stim `inactive:"+" desc:"current stimulus"`

	// last response
	Resp dots.Sides `inactive:"+" desc:"last response"`

	// whether the last response was correct
	Correct bool `inactive:"+" desc:"whether the last response was correct"`

	// whether a response has been given to the current stimulus
	Responded bool `inactive:"+" desc:"whether a response has been given to the current stimulus"`

	// last staircase update
	LastUpdate stair.Record `inactive:"+" desc:"last staircase update"`

	// left dots, 2D [X, Y]
	Left etensor.Float32 `desc:"left dots, 2D [X, Y]"`

	// right dots, 2D [X, Y]
	Right etensor.Float32 `desc:"right dots, 2D [X, Y]"`

	// target side as a one-hot [Left, Right]
	Target etensor.Float32 `desc:"target side as a one-hot [Left, Right]"`

	// [view: inline] current run of model as provided during Init
	Run env.Ctr `view:"inline" desc:"current run of model as provided during Init"`

	// [view: inline] number of times through Trial.Max trials
	Epoch env.Ctr `view:"inline" desc:"number of times through Trial.Max trials"`

	// [view: inline] trial increments over stimuli, wrapping at Max
	Trial env.Ctr `view:"inline" desc:"trial increments over stimuli, wrapping at Max"`

	// random number generator for the env -- all random calls must use this
	Rand erand.SysRand `view:"-" desc:"random number generator for the env -- all random calls must use this"`

	// stimulus generator, using Rand
	Comp *dots.Compositor `view:"-" desc:"stimulus generator, using Rand"`
}

func (ev *DotEnv) Name() string { return ev.Nm }
func (ev *DotEnv) Desc() string { return ev.Dsc }

// Defaults sets default display and staircase params
func (ev *DotEnv) Defaults() {
	ev.Dots.Defaults()
	ev.Stair.Defaults()
	ev.StartDiff = 4
}

// Config sets the number of trials per epoch and configures the states
func (ev *DotEnv) Config(ntrls int) {
	if ev.Dots.NCells == 0 {
		ev.Defaults()
	}
	ev.Dots.Update()
	ev.Stair.Update()
	ev.Trial.Max = ntrls
	gs := ev.Dots.GridSize
	ev.Left.SetShape([]int{gs, gs}, nil, []string{"X", "Y"})
	ev.Right.SetShape([]int{gs, gs}, nil, []string{"X", "Y"})
	ev.Target.SetShape([]int{int(dots.SidesN)}, nil, []string{"Side"})
}

func (ev *DotEnv) Validate() error {
	if ev.Dots.NCells == 0 {
		return fmt.Errorf("DotEnv: %v has no cells -- need to Config", ev.Nm)
	}
	if ev.StartDiff < ev.Stair.Min {
		return fmt.Errorf("DotEnv: %v StartDiff %g is below staircase Min %g", ev.Nm, ev.StartDiff, ev.Stair.Min)
	}
	if float64(ev.Dots.Baseline)+ev.StartDiff > float64(ev.Dots.NCells) {
		return fmt.Errorf("DotEnv: %v StartDiff %g exceeds %d cells", ev.Nm, ev.StartDiff, ev.Dots.NCells)
	}
	return nil
}

func (ev *DotEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Epoch, env.Trial}
}

func (ev *DotEnv) States() env.Elements {
	gs := ev.Dots.GridSize
	els := env.Elements{
		{"Left", []int{gs, gs}, []string{"X", "Y"}},
		{"Right", []int{gs, gs}, []string{"X", "Y"}},
		{"Target", []int{int(dots.SidesN)}, []string{"Side"}},
	}
	return els
}

func (ev *DotEnv) State(element string) etensor.Tensor {
	switch element {
	case "Left":
		return &ev.Left
	case "Right":
		return &ev.Right
	case "Target":
		return &ev.Target
	}
	return nil
}

// String returns the current state as a string
func (ev *DotEnv) String() string {
	if ev.Stim == nil {
		return fmt.Sprintf("Diff_%g", ev.NumDots)
	}
	return fmt.Sprintf("%s_Diff_%g", ev.Stim.String(), ev.Stim.NumDots)
}

// Source returns the env's random generator as a perm.Source, which also
// serves the observer
func (ev *DotEnv) Source() perm.SysSource {
	return perm.NewSysSource(&ev.Rand)
}

// Init is called to restart environment: reseeds the random generator,
// and resets difficulty and accuracy history
func (ev *DotEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0

	ev.Rand.NewRand(ev.RandSeed + int64(run))
	ev.Comp = dots.NewCompositor(&ev.Dots, ev.Source())
	ev.NumDots = ev.StartDiff
	ev.Acc = stair.Accuracy{0, 0}
	ev.TrialN = -1
	ev.Stim = nil
	ev.Responded = false
}

// NewStim composes a new stimulus at the current difficulty, with the
// target on a random side, and sets the state tensors
func (ev *DotEnv) NewStim() {
	ev.TrialN++
	ev.Responded = false
	ev.Correct = false
	tgtLeft := ev.Rand.Intn(2, -1) == 0
	ev.Stim = ev.Comp.Compose(ev.NumDots, tgtLeft)
	copy(ev.Left.Values, ev.Stim.Left.Cells.Values)
	copy(ev.Right.Values, ev.Stim.Right.Cells.Values)
	ev.Target.SetZeros()
	ev.Target.Values[ev.Stim.Target] = 1
}

// Step is called to advance the environment state
func (ev *DotEnv) Step() bool {
	ev.Epoch.Same() // good idea to just reset all non-inner-most counters at start
	ev.NewStim()
	if ev.Trial.Incr() { // true if wraps around Max back to 0
		ev.Epoch.Incr()
	}
	return true
}

// Respond scores a response to the current stimulus, pushes the outcome
// onto the accuracy history, and updates the difficulty for the next trial.
// Only the first response to each stimulus counts.
func (ev *DotEnv) Respond(resp dots.Sides) bool {
	if ev.Stim == nil || ev.Responded {
		return ev.Correct
	}
	ev.Responded = true
	ev.Resp = resp
	ev.Correct = resp == ev.Stim.Target
	ev.Acc = ev.Acc.Push(ev.Correct)
	ev.LastUpdate = ev.Stair.Next(ev.NumDots, ev.Acc, ev.TrialN)
	ev.NumDots = ev.LastUpdate.Diff
	return ev.Correct
}

func (ev *DotEnv) Actions() env.Elements {
	return env.Elements{
		{"Response", []int{int(dots.SidesN)}, []string{"Side"}},
	}
}

// Action takes a "Response" element with one value per side, choosing
// the side with the larger value (Left on ties)
func (ev *DotEnv) Action(element string, input etensor.Tensor) {
	if element != "Response" || input == nil || input.Len() < int(dots.SidesN) {
		return
	}
	resp := dots.Left
	if input.FloatVal1D(int(dots.Right)) > input.FloatVal1D(int(dots.Left)) {
		resp = dots.Right
	}
	ev.Respond(resp)
}

func (ev *DotEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*DotEnv)(nil)
