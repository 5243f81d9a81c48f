// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stair is a rule-based adaptive staircase for the dot-difference task.

Two correct responses in a row make the task harder (fewer extra dots),
an incorrect response makes it easier, and anything else leaves it as is.
The step size shrinks as trials accumulate: 0.4 early, 0.2 in the middle,
0.1 after that.  Difficulty never goes below Min.
*/
package stair

import "fmt"

// Params are the staircase step-size regime and floor
type Params struct {
	MidTrial  int     `def:"7" desc:"first trial number using MidStep -- trials before this use EarlyStep"`
	LateTrial int     `def:"12" desc:"first trial number using LateStep"`
	EarlyStep float64 `def:"0.4" desc:"step size for trials < MidTrial"`
	MidStep   float64 `def:"0.2" desc:"step size for MidTrial <= trials < LateTrial"`
	LateStep  float64 `def:"0.1" desc:"step size for trials >= LateTrial"`
	Min       float64 `def:"1" desc:"difficulty floor -- any value <= Min is set to Min"`
}

// Update keeps the step regimes ordered: LateTrial is never before MidTrial
func (sp *Params) Update() {
	if sp.LateTrial < sp.MidTrial {
		sp.LateTrial = sp.MidTrial
	}
}

func (sp *Params) Defaults() {
	sp.MidTrial = 7
	sp.LateTrial = 12
	sp.EarlyStep = 0.4
	sp.MidStep = 0.2
	sp.LateStep = 0.1
	sp.Min = 1
	sp.Update()
}

// Step returns the step size for given trial number
func (sp *Params) Step(trialNum int) float64 {
	switch {
	case trialNum < sp.MidTrial:
		return sp.EarlyStep
	case trialNum < sp.LateTrial:
		return sp.MidStep
	default:
		return sp.LateStep
	}
}

// Next returns the difficulty for the next trial given the current one,
// the last two outcomes, and the trial number.  Accuracy and trial number
// are passed through unchanged in the returned Record.
func (sp *Params) Next(diff float64, acc Accuracy, trialNum int) Record {
	step := sp.Step(trialNum)
	if acc[1] == 1 && acc[0] == 1 {
		diff -= step
	}
	if acc[1] == 0 {
		diff += step
	}
	if diff <= sp.Min {
		diff = sp.Min
	}
	return Record{Diff: diff, Accuracy: acc, TrialNum: trialNum}
}

// Staircase is Next using default Params
func Staircase(diff float64, acc Accuracy, trialNum int) Record {
	sp := Params{}
	sp.Defaults()
	return sp.Next(diff, acc, trialNum)
}

// Accuracy holds the last two outcomes, 1 = correct, 0 = incorrect.
// Index 1 is the most recent trial, index 0 the one before it.
type Accuracy [2]int

// Push returns the history with a new most-recent outcome shifted in
func (ac Accuracy) Push(correct bool) Accuracy {
	v := 0
	if correct {
		v = 1
	}
	return Accuracy{ac[1], v}
}

// Record is the result of one staircase update
type Record struct {

	// difficulty for the next trial
	Diff float64

	// outcomes that the update was based on
	Accuracy Accuracy

	// trial number that the update was based on
	TrialNum int
}

func (rc Record) String() string {
	return fmt.Sprintf("Trial: %d\tAcc: %v\tDiff: %g", rc.TrialNum, rc.Accuracy, rc.Diff)
}
