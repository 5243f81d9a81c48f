// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dots

import (
	"fmt"
	"image"
	"image/color"

	"git.sr.ht/~sbinet/gg"
	"github.com/c2h5oh/datasize"
)

// Raster is a Canvas that draws into an in-memory RGBA image
type Raster struct {
	Ctx *gg.Context
}

// NewRaster returns a new Raster of given size, cleared to bg
func NewRaster(width, height int, bg color.Color) *Raster {
	rs := &Raster{Ctx: gg.NewContext(width, height)}
	rs.Clear(bg)
	return rs
}

func (rs *Raster) Width() int  { return rs.Ctx.Width() }
func (rs *Raster) Height() int { return rs.Ctx.Height() }

func (rs *Raster) FillRect(x, y, w, h float32, clr color.Color) {
	rs.Ctx.SetColor(clr)
	rs.Ctx.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	rs.Ctx.Fill()
}

func (rs *Raster) FillCircle(cx, cy, r float32, clr color.Color) {
	rs.Ctx.SetColor(clr)
	rs.Ctx.DrawCircle(float64(cx), float64(cy), float64(r))
	rs.Ctx.Fill()
}

// Clear fills the whole image with clr
func (rs *Raster) Clear(clr color.Color) {
	rs.Ctx.SetColor(clr)
	rs.Ctx.Clear()
}

// Image returns the rendered image
func (rs *Raster) Image() image.Image {
	return rs.Ctx.Image()
}

// SavePNG saves the rendered image to a PNG file
func (rs *Raster) SavePNG(fname string) error {
	return rs.Ctx.SavePNG(fname)
}

// SizeReport returns a string with the image size and memory
func (rs *Raster) SizeReport() string {
	mem := 4 * rs.Width() * rs.Height()
	return fmt.Sprintf("Raster: %d x %d\t Mem: %v", rs.Width(), rs.Height(), (datasize.ByteSize)(mem).HumanReadable())
}
