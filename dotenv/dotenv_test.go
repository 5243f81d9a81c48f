// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotenv

import (
	"math"
	"testing"

	"github.com/emer/dotdiff/dots"
	"github.com/emer/dotdiff/stair"
	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
)

const difTol = 1.0e-9

func newEnv(t *testing.T, ntrls int) *DotEnv {
	ev := &DotEnv{Nm: "Test", Dsc: "test env", RandSeed: 10}
	ev.Config(ntrls)
	ev.StartDiff = 5
	if err := ev.Validate(); err != nil {
		t.Fatal(err)
	}
	ev.Init(0)
	return ev
}

func TestValidate(t *testing.T) {
	ev := &DotEnv{Nm: "NoConfig"}
	if ev.Validate() == nil {
		t.Error("unconfigured env should not validate")
	}
	ev.Config(10)
	ev.StartDiff = 0.5
	if ev.Validate() == nil {
		t.Error("StartDiff below Min should not validate")
	}
	ev.StartDiff = 1000
	if ev.Validate() == nil {
		t.Error("StartDiff beyond grid should not validate")
	}
}

func TestStates(t *testing.T) {
	ev := newEnv(t, 10)
	ev.Step()
	st := ev.Stim
	lt := ev.State("Left").(*etensor.Float32)
	rt := ev.State("Right").(*etensor.Float32)
	nl, nr := 0, 0
	for k := range lt.Values {
		if lt.Values[k] > 0 {
			nl++
		}
		if rt.Values[k] > 0 {
			nr++
		}
	}
	if nl != st.NLeft || nr != st.NRight {
		t.Errorf("state counts: %d %d stim: %v", nl, nr, st)
	}
	if st.NOn(st.Target) != 318 || st.NOn(st.Target.Other()) != 313 {
		t.Errorf("counts at difficulty 5: %v", st)
	}
	tg := ev.State("Target")
	if tg.FloatVal1D(int(st.Target)) != 1 || tg.FloatVal1D(int(st.Target.Other())) != 0 {
		t.Errorf("target one-hot wrong for %v", st.Target)
	}
	if ev.State("Bogus") != nil {
		t.Error("unknown state should be nil")
	}
	for _, el := range ev.States() {
		if ev.State(el.Name) == nil {
			t.Errorf("listed state %s not available", el.Name)
		}
	}
}

func TestStimCounts(t *testing.T) {
	ev := newEnv(t, 100)
	nsides := [dots.SidesN]int{}
	for trl, nd := range []float64{5, 1, 1.3, 2.6, 4.6, 7.99, 20.9, 50} {
		ev.NumDots = nd
		ev.Step()
		st := ev.Stim
		nsides[st.Target]++
		tgt := int(math.Floor(313 + nd))
		nl, nr := tgt, 313
		if st.Target == dots.Right {
			nl, nr = 313, tgt
		}
		if st.NLeft != nl || st.NRight != nr {
			t.Errorf("trial %d: numDots: %g target: %v  left: %d != %d  right: %d != %d", trl, nd, st.Target, st.NLeft, nl, st.NRight, nr)
		}
		if st.Left.NOn() != st.NLeft || st.Right.NOn() != st.NRight {
			t.Errorf("trial %d: reported counts differ from grids: %v", trl, st)
		}
		ev.Respond(st.Target)
	}
	if nsides[dots.Left] == 0 || nsides[dots.Right] == 0 {
		t.Errorf("target never changed sides: %v", nsides)
	}
}

func TestStaircaseUpdates(t *testing.T) {
	ev := newEnv(t, 100)
	sp := stair.Params{}
	sp.Defaults()

	// scripted outcomes, with the expected difficulty computed independently
	outs := []bool{true, true, true, false, true, true, false, false, true, true, true, true, true, true, true}
	diff := 5.0
	acc := stair.Accuracy{0, 0}
	for trl, cor := range outs {
		ev.Step()
		if ev.TrialN != trl {
			t.Fatalf("TrialN: %d != %d", ev.TrialN, trl)
		}
		if math.Abs(ev.Stim.NumDots-diff) > difTol {
			t.Errorf("trial %d: stimulus difficulty %g != %g", trl, ev.Stim.NumDots, diff)
		}
		resp := ev.Stim.Target
		if !cor {
			resp = resp.Other()
		}
		if got := ev.Respond(resp); got != cor {
			t.Errorf("trial %d: correct: %v != %v", trl, got, cor)
		}
		acc = acc.Push(cor)
		diff = sp.Next(diff, acc, trl).Diff
		if math.Abs(ev.NumDots-diff) > difTol {
			t.Errorf("trial %d: difficulty %g != %g", trl, ev.NumDots, diff)
		}
		if ev.Acc != acc {
			t.Errorf("trial %d: accuracy %v != %v", trl, ev.Acc, acc)
		}
	}
}

func TestFirstCorrectNoChange(t *testing.T) {
	ev := newEnv(t, 10)
	ev.Step()
	ev.Respond(ev.Stim.Target)
	if ev.NumDots != 5 {
		t.Errorf("single correct response changed difficulty: %g", ev.NumDots)
	}
	// second response to the same stimulus is ignored
	ev.Respond(ev.Stim.Target)
	if ev.NumDots != 5 || ev.Acc != (stair.Accuracy{0, 1}) {
		t.Errorf("repeat response counted: %g %v", ev.NumDots, ev.Acc)
	}
	ev.Step()
	ev.Respond(ev.Stim.Target)
	if math.Abs(ev.NumDots-4.6) > difTol {
		t.Errorf("two correct should lower difficulty: %g", ev.NumDots)
	}
}

func TestAction(t *testing.T) {
	ev := newEnv(t, 10)
	ev.Step()
	out := etensor.NewFloat32([]int{2}, nil, nil)
	out.Values[ev.Stim.Target.Other()] = 1
	ev.Action("Response", out)
	if ev.Correct || ev.Resp != ev.Stim.Target.Other() {
		t.Errorf("wrong-side action scored as correct: %v", ev.Resp)
	}
	if math.Abs(ev.NumDots-5.4) > difTol {
		t.Errorf("error should raise difficulty: %g", ev.NumDots)
	}
	ev.Step()
	ev.Action("Other", out)
	if ev.Responded {
		t.Error("non-response element should be ignored")
	}
}

func TestCounters(t *testing.T) {
	ev := newEnv(t, 3)
	for i := 0; i < 7; i++ {
		ev.Step()
	}
	cur, _, _ := ev.Counter(env.Trial)
	if cur != 0 {
		t.Errorf("trial counter: %d", cur)
	}
	cur, _, _ = ev.Counter(env.Epoch)
	if cur != 2 {
		t.Errorf("epoch counter: %d", cur)
	}
	if ev.TrialN != 6 {
		t.Errorf("TrialN should not wrap: %d", ev.TrialN)
	}
}

func TestSeedReproducible(t *testing.T) {
	a := newEnv(t, 10)
	b := newEnv(t, 10)
	for i := 0; i < 5; i++ {
		a.Step()
		b.Step()
		if a.Stim.Target != b.Stim.Target {
			t.Fatalf("step %d: targets differ", i)
		}
		for k := range a.Left.Values {
			if a.Left.Values[k] != b.Left.Values[k] {
				t.Fatalf("step %d: left cells differ at %d", i, k)
			}
		}
		a.Respond(dots.Left)
		b.Respond(dots.Left)
	}
	a.Init(1)
	if a.NumDots != a.StartDiff || a.TrialN != -1 {
		t.Errorf("Init did not reset: %g %d", a.NumDots, a.TrialN)
	}
}
