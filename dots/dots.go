// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dots builds the two-alternative dot-difference stimulus: a pair of
square fields of dots, each dot white (on) or black (off), where the target
side has a controlled number of extra white dots over a fixed baseline.

The Compositor generates the two on/off grids from independent random
permutations and reports the realized on-cell counts per side. Draw renders
a composed stimulus onto any Canvas that can fill rectangles and circles;
Raster is a Canvas backed by an in-memory image.
*/
package dots

import (
	"image/color"
	"log"
	"math"

	"github.com/goki/mat32"
)

// Params are the geometry and count parameters for the dot-difference display.
// All distances are in canvas units (pixels for Raster).
type Params struct {
	SquareWidth float32 `def:"250" desc:"side length of each of the two background squares"`
	Margin      float32 `def:"70" desc:"horizontal margin between the outer canvas edges and the squares"`
	GridSize    int     `def:"25" desc:"number of dots along each side of a square -- GridSize * CellSize should equal SquareWidth"`
	CellSize    float32 `def:"10" desc:"pitch between dot centers"`
	DotRadius   float32 `def:"2" desc:"radius of each dot, centered within its cell"`
	Baseline    int     `def:"313" desc:"number of on (white) dots on the non-target side -- the target side adds the difficulty on top of this"`

	OnColor  color.RGBA `desc:"color for on dots"`
	OffColor color.RGBA `desc:"color for off dots and square backgrounds"`

	NCells int `inactive:"+" view:"-" json:"-" desc:"total cells per square = GridSize * GridSize"`
}

func (dp *Params) Defaults() {
	dp.SquareWidth = 250
	dp.Margin = 70
	dp.GridSize = 25
	dp.CellSize = 10
	dp.DotRadius = 2
	dp.Baseline = 313
	dp.OnColor = color.RGBA{255, 255, 255, 255}
	dp.OffColor = color.RGBA{0, 0, 0, 255}
	dp.Update()
}

// Update must be called after any changes to parameters
func (dp *Params) Update() {
	dp.NCells = dp.GridSize * dp.GridSize
}

// Threshold returns the number of on cells for a field with numDots extra
// dots over Baseline: floor(Baseline + numDots).  The fractional part of
// numDots never adds a dot.  Values outside [0, NCells] violate the caller
// contract and are clamped, with a logged warning.
func (dp *Params) Threshold(numDots float64) int {
	thr := int(math.Floor(float64(dp.Baseline) + numDots))
	switch {
	case thr < 0:
		log.Printf("dots.Threshold: numDots %g gives threshold %d < 0, clamping to 0\n", numDots, thr)
		thr = 0
	case thr > dp.NCells:
		log.Printf("dots.Threshold: numDots %g gives threshold %d > %d cells, clamping\n", numDots, thr, dp.NCells)
		thr = dp.NCells
	}
	return thr
}

// SquareOrigins returns the top-left corners of the left and right squares
// on a canvas of given width.  The right square starts at
// width - SquareWidth - Margin.
func (dp *Params) SquareOrigins(width int) (left, right mat32.Vec2) {
	left = mat32.Vec2{X: dp.Margin, Y: 0}
	right = mat32.Vec2{X: float32(width) - dp.SquareWidth - dp.Margin, Y: 0}
	return
}

// CellCenter returns the center of dot k within a square with the given origin.
// Cells fill column by column: k / GridSize is the column, k % GridSize the row.
func (dp *Params) CellCenter(origin mat32.Vec2, k int) mat32.Vec2 {
	col := k / dp.GridSize
	row := k % dp.GridSize
	half := dp.CellSize / 2
	return mat32.Vec2{
		X: origin.X + float32(col)*dp.CellSize + half,
		Y: origin.Y + float32(row)*dp.CellSize + half,
	}
}
