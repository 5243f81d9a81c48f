// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotlog

import (
	"fmt"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/split"
)

// Summary describes performance over a set of logged trials
type Summary struct {
	NTrials  int
	PctCor   float64
	MeanDiff float64
	LastDiff float64
}

func (sm Summary) String() string {
	return fmt.Sprintf("Trials: %d\tPctCor: %.4g\tMeanDiff: %.4g\tLastDiff: %.4g", sm.NTrials, sm.PctCor, sm.MeanDiff, sm.LastDiff)
}

// Summarize computes the proportion correct and mean difficulty over the
// last lastN rows of a trial log (all rows if lastN <= 0).  The mean
// difficulty over the later trials estimates the discrimination threshold.
func Summarize(dt *etable.Table, lastN int) Summary {
	sm := Summary{}
	if dt.Rows == 0 {
		return sm
	}
	ix := etable.NewIdxView(dt)
	if lastN > 0 && lastN < dt.Rows {
		ix.Idxs = ix.Idxs[dt.Rows-lastN:]
	}
	sm.NTrials = ix.Len()
	sm.PctCor = agg.Mean(ix, "Correct")[0]
	sm.MeanDiff = agg.Mean(ix, "NumDots")[0]
	sm.LastDiff = dt.CellFloat("NextDiff", dt.Rows-1)
	return sm
}

// RunStats returns a table with the mean of Correct and NumDots for each Run
func RunStats(dt *etable.Table) *etable.Table {
	ix := etable.NewIdxView(dt)
	spl := split.GroupBy(ix, []string{"Run"})
	split.Agg(spl, "Correct", agg.AggMean)
	split.Agg(spl, "NumDots", agg.AggMean)
	return spl.AggsToTable(etable.ColNameOnly)
}
