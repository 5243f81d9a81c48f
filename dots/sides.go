// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dots

import "github.com/goki/ki/kit"

// Sides are the two screen positions of the dot squares
type Sides int

//go:generate stringer -type=Sides

var KiT_Sides = kit.Enums.AddEnum(SidesN, false, nil)

func (ev Sides) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Sides) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Left square
	Left Sides = iota

	// Right square
	Right

	SidesN
)

// Other returns the opposite side
func (sd Sides) Other() Sides {
	if sd == Left {
		return Right
	}
	return Left
}

// SideOf returns Left if left is true, else Right
func SideOf(left bool) Sides {
	if left {
		return Left
	}
	return Right
}
