// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dots

import "github.com/emer/etable/etensor"

// Field is one square of dots: a GridSize x GridSize grid of on (1) / off (0) cells.
// The tensor is shaped [X, Y] so that the flat cell index k is
// column k / GridSize and row k % GridSize, matching the drawing order.
type Field struct {

	// on / off state of each cell
	Cells etensor.Float32 `desc:"on / off state of each cell"`
}

// Config sets the shape of the field
func (fl *Field) Config(gridSize int) {
	fl.Cells.SetShape([]int{gridSize, gridSize}, nil, []string{"X", "Y"})
}

// Len returns the number of cells
func (fl *Field) Len() int {
	return fl.Cells.Len()
}

// Set turns cell k on iff pm[k] < thresh.  pm must be a permutation of
// 0..Len()-1, in which case exactly thresh cells end up on.
func (fl *Field) Set(pm []int, thresh int) {
	for k := range fl.Cells.Values {
		if pm[k] < thresh {
			fl.Cells.Values[k] = 1
		} else {
			fl.Cells.Values[k] = 0
		}
	}
}

// On returns true if cell k is on
func (fl *Field) On(k int) bool {
	return fl.Cells.Values[k] > 0
}

// NOn counts the on cells
func (fl *Field) NOn() int {
	n := 0
	for _, v := range fl.Cells.Values {
		if v > 0 {
			n++
		}
	}
	return n
}
