// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dots

import (
	"image/color"

	"github.com/goki/mat32"
)

// Canvas is a drawing surface that can fill rectangles and circles.
type Canvas interface {
	// Width is the drawing area width, used to place the right square
	Width() int

	// FillRect fills the rectangle with top-left corner x, y and size w, h
	FillRect(x, y, w, h float32, clr color.Color)

	// FillCircle fills a circle centered at cx, cy with radius r
	FillCircle(cx, cy, r float32, clr color.Color)
}

// DrawBlank draws the two squares with the given colors and no dots,
// e.g., for fixation or feedback screens.
func (dp *Params) DrawBlank(c Canvas, left, right color.Color) {
	lo, ro := dp.SquareOrigins(c.Width())
	c.FillRect(lo.X, lo.Y, dp.SquareWidth, dp.SquareWidth, left)
	c.FillRect(ro.X, ro.Y, dp.SquareWidth, dp.SquareWidth, right)
}

// Draw renders the stimulus: both squares in OffColor, then one dot per
// cell in OnColor or OffColor according to the cell state.
func (dp *Params) Draw(c Canvas, st *Stim) {
	dp.DrawBlank(c, dp.OffColor, dp.OffColor)
	lo, ro := dp.SquareOrigins(c.Width())
	dp.drawField(c, &st.Left, lo)
	dp.drawField(c, &st.Right, ro)
}

func (dp *Params) drawField(c Canvas, fl *Field, origin mat32.Vec2) {
	n := fl.Len()
	for k := 0; k < n; k++ {
		ctr := dp.CellCenter(origin, k)
		clr := dp.OffColor
		if fl.On(k) {
			clr = dp.OnColor
		}
		c.FillCircle(ctr.X, ctr.Y, dp.DotRadius, clr)
	}
}

// Draw renders st on c using the Compositor's params
func (cp *Compositor) Draw(c Canvas, st *Stim) {
	cp.Params.Draw(c, st)
}
