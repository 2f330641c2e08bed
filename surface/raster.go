// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Surface that paints into an in-memory RGBA image.
type Raster struct {
	img   *image.RGBA
	src   *image.Uniform
	style FontStyle
	aa    bool
	z     *vector.Rasterizer
}

// NewRaster returns a Raster over a new transparent image of the
// given size.
func NewRaster(width, height int) *Raster {
	return NewRasterOn(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterOn returns a Raster that paints into img.
func NewRasterOn(img *image.RGBA) *Raster {
	return &Raster{
		img: img,
		src: image.NewUniform(color.Black),
		aa:  true,
		z:   vector.NewRasterizer(0, 0),
	}
}

// Image returns the image r paints into.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the image as a PNG to w.
func (r *Raster) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, r.img), "encoding PNG")
}

func (r *Raster) SetColor(c color.Color) {
	r.src = image.NewUniform(c)
}

func (r *Raster) SetFontStyle(style FontStyle) {
	r.style = style
}

func (r *Raster) SetAntialias(on bool) {
	r.aa = on
}

func (r *Raster) DrawLine(x1, y1, x2, y2 int) {
	if !r.aa || x1 == x2 || y1 == y2 {
		r.bresenham(x1, y1, x2, y2)
		return
	}
	// Stroke the segment between pixel centers as a quad one pixel
	// wide.
	fx1, fy1 := float32(x1)+0.5, float32(y1)+0.5
	fx2, fy2 := float32(x2)+0.5, float32(y2)+0.5
	dx, dy := fx2-fx1, fy2-fy1
	l := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/l/2, dx/l/2
	r.fill(func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(fx1+nx-ox, fy1+ny-oy)
		z.LineTo(fx2+nx-ox, fy2+ny-oy)
		z.LineTo(fx2-nx-ox, fy2-ny-oy)
		z.LineTo(fx1-nx-ox, fy1-ny-oy)
		z.ClosePath()
	}, image.Rect(min(x1, x2)-1, min(y1, y2)-1, max(x1, x2)+2, max(y1, y2)+2))
}

// bresenham plots the pixels of a line without antialiasing.
func (r *Raster) bresenham(x1, y1, x2, y2 int) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		r.plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func (r *Raster) plot(x, y int) {
	draw.Draw(r.img, image.Rect(x, y, x+1, y+1), r.src, image.Point{}, draw.Over)
}

// DrawRect outlines the rectangle covering pixels x through x+w and
// y through y+h.
func (r *Raster) DrawRect(x, y, w, h int) {
	if w < 0 || h < 0 {
		return
	}
	r.FillRect(x, y, w, 1)
	r.FillRect(x, y+h, w+1, 1)
	r.FillRect(x, y+1, 1, h-1)
	r.FillRect(x+w, y, 1, h)
}

func (r *Raster) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(r.img, image.Rect(x, y, x+w, y+h), r.src, image.Point{}, draw.Over)
}

func (r *Raster) FillOval(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	cx, cy := float64(x)+float64(w)/2, float64(y)+float64(h)/2
	rx, ry := float64(w)/2, float64(h)/2
	if !r.aa {
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				ex := (float64(px) + 0.5 - cx) / rx
				ey := (float64(py) + 0.5 - cy) / ry
				if ex*ex+ey*ey <= 1 {
					r.plot(px, py)
				}
			}
		}
		return
	}
	// Four cubic Béziers approximating quarter ellipses.
	const k = 0.5522847498
	kx, ky := float32(rx*k), float32(ry*k)
	fcx, fcy, frx, fry := float32(cx), float32(cy), float32(rx), float32(ry)
	r.fill(func(z *vector.Rasterizer, ox, oy float32) {
		cx, cy := fcx-ox, fcy-oy
		z.MoveTo(cx+frx, cy)
		z.CubeTo(cx+frx, cy+ky, cx+kx, cy+fry, cx, cy+fry)
		z.CubeTo(cx-kx, cy+fry, cx-frx, cy+ky, cx-frx, cy)
		z.CubeTo(cx-frx, cy-ky, cx-kx, cy-fry, cx, cy-fry)
		z.CubeTo(cx+kx, cy-fry, cx+frx, cy-ky, cx+frx, cy)
		z.ClosePath()
	}, image.Rect(x, y, x+w, y+h))
}

// fill rasterizes the path built by path, clipped to bounds. The
// path is built relative to the clipped origin, given as (ox, oy).
func (r *Raster) fill(path func(z *vector.Rasterizer, ox, oy float32), bounds image.Rectangle) {
	b := bounds.Intersect(r.img.Bounds())
	if b.Empty() {
		return
	}
	r.z.Reset(b.Dx(), b.Dy())
	path(r.z, float32(b.Min.X), float32(b.Min.Y))
	r.z.Draw(r.img, b, r.src, image.Point{})
}

func (r *Raster) DrawString(s string, x, y int) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  r.src,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	if r.style == Bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(s)
	}
}

func (r *Raster) StringWidth(s string) int {
	return TextWidth(s, r.style)
}

// DrawImage scales img into the rectangle. Without antialiasing it
// uses nearest-neighbor sampling.
func (r *Raster) DrawImage(img image.Image, x, y, w, h int) {
	dr := image.Rect(x, y, x+w, y+h)
	var s draw.Scaler = draw.BiLinear
	if !r.aa {
		s = draw.NearestNeighbor
	}
	s.Scale(r.img, dr, img, img.Bounds(), draw.Over, nil)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
