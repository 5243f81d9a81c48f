// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotlog

import (
	"fmt"
	"sort"

	"github.com/emer/etable/etable"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// StaircasePlot returns a plot of NumDots by Trial, one line per Run
func StaircasePlot(dt *etable.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Dot Difference Staircase"
	p.X.Label.Text = "Trial"
	p.Y.Label.Text = "NumDots"

	runs := map[int]plotter.XYs{}
	for row := 0; row < dt.Rows; row++ {
		run := int(dt.CellFloat("Run", row))
		runs[run] = append(runs[run], plotter.XY{X: dt.CellFloat("Trial", row), Y: dt.CellFloat("NumDots", row)})
	}
	rns := make([]int, 0, len(runs))
	for r := range runs {
		rns = append(rns, r)
	}
	sort.Ints(rns)

	for i, r := range rns {
		ln, err := plotter.NewLine(runs[r])
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = plotutil.Color(i)
		p.Add(ln)
		p.Legend.Add(fmt.Sprintf("Run %d", r), ln)
	}
	return p, nil
}

// SaveStaircasePlot saves the StaircasePlot to fname, with format given
// by the extension (.png, .svg, .pdf)
func SaveStaircasePlot(dt *etable.Table, fname string) error {
	p, err := StaircasePlot(dt)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}
