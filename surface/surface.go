// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the drawing surface charts paint onto and
// provides SVG, raster, and recording implementations.
//
// Coordinates are integer device pixels with the origin at the top
// left and y growing downward. Strings are positioned by the left end
// of their baseline.
package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontStyle selects the weight of text drawn by DrawString.
type FontStyle int

const (
	Plain FontStyle = iota
	Bold
)

// A Surface accepts drawing primitives. Each primitive uses the
// color and font style most recently set.
type Surface interface {
	SetColor(c color.Color)
	SetFontStyle(style FontStyle)

	DrawLine(x1, y1, x2, y2 int)
	DrawRect(x, y, w, h int)
	FillRect(x, y, w, h int)
	FillOval(x, y, w, h int)
	DrawString(s string, x, y int)

	// StringWidth returns the advance width of s in the current
	// font style.
	StringWidth(s string) int
}

// An ImageDrawer is a Surface that can also draw images, scaled to
// fill the rectangle at (x, y) of size w×h.
type ImageDrawer interface {
	Surface
	DrawImage(img image.Image, x, y, w, h int)
}

// An Antialiaser is a Surface whose shape edges can be smoothed.
// Surfaces start with antialiasing on.
type Antialiaser interface {
	SetAntialias(on bool)
}

// SetAntialias turns antialiasing on s on or off if s supports it.
func SetAntialias(s Surface, on bool) {
	if a, ok := s.(Antialiaser); ok {
		a.SetAntialias(on)
	}
}

// face is the font used for all text. Every glyph has the same
// advance, so widths computed here match all surfaces exactly.
var face = basicfont.Face7x13

// Ascent is the height of capital letters above the baseline.
const Ascent = 11

// TextWidth returns the width of s drawn in style. Bold text is drawn
// twice with a one pixel offset, so it is one pixel wider.
func TextWidth(s string, style FontStyle) int {
	if s == "" {
		return 0
	}
	w := font.MeasureString(face, s).Ceil()
	if style == Bold {
		w++
	}
	return w
}
