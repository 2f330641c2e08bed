// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame implements the chart furniture shared by chart
// renderers: margins, placement, background, axes and y axis labels.
package frame

import (
	"image/color"
	"math"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/surface"
)

// TickLength is the length in pixels of axis tick marks.
const TickLength = 3

// labelGap separates a y axis label from its tick mark.
const labelGap = 2

// labelSpacing is the minimum vertical distance between y axis
// labels, in pixels.
const labelSpacing = 2 * surface.Ascent

// OriginColor is the default color of the line marking y = 0.
func OriginColor() color.Color {
	return color.NRGBA{20, 0, 0, 120}
}

// A Frame positions a chart on a surface and draws its furniture.
// The plot area is the frame's rectangle inset by the margins.
type Frame struct {
	// X and Y are the offset of the chart's top left corner on the
	// surface.
	X, Y int
	// Width and Height are the size of the chart including margins.
	Width, Height int

	Left, Right, Top, Bottom int

	Background color.Color
	Foreground color.Color
	// Origin is the color of the line marking y = 0.
	Origin color.Color

	// Labels generates y axis labels. Cut points outside the range
	// are never drawn.
	Labels axis.Generator
}

// New returns a Frame with the given margins and default colors.
func New(left, right, top, bottom int) *Frame {
	return &Frame{
		Left:       left,
		Right:      right,
		Top:        top,
		Bottom:     bottom,
		Background: color.White,
		Foreground: color.Black,
		Origin:     OriginColor(),
		Labels:     axis.Generator{Tight: true},
	}
}

// SetSize sets the size of the chart.
func (f *Frame) SetSize(width, height int) {
	f.Width, f.Height = width, height
}

// SetPosition sets the offset of the chart on the surface.
func (f *Frame) SetPosition(x, y int) {
	f.X, f.Y = x, y
}

// PlotWidth returns the width of the plot area.
func (f *Frame) PlotWidth() int {
	return f.Width - f.Left - f.Right
}

// PlotHeight returns the height of the plot area.
func (f *Frame) PlotHeight() int {
	return f.Height - f.Top - f.Bottom
}

// MapY returns the surface y coordinate of value on a vertical axis
// spanning r. ok is false if r is degenerate.
func (f *Frame) MapY(value float64, r axis.Range) (y int, ok bool) {
	py, ok := axis.ToPixelY(value, r, f.Height, f.Top, f.Bottom)
	if !ok {
		return 0, false
	}
	return f.Y + round(py), true
}

// MapX returns the surface x coordinate of value on a horizontal axis
// spanning r. ok is false if r is degenerate.
func (f *Frame) MapX(value float64, r axis.Range) (x int, ok bool) {
	px, ok := axis.ToPixelX(value, r, f.Width, f.Left, f.Right)
	if !ok {
		return 0, false
	}
	return f.X + round(px), true
}

// ClearBackground fills the chart's whole rectangle with the
// background color.
func (f *Frame) ClearBackground(s surface.Surface) {
	s.SetColor(f.Background)
	s.FillRect(f.X, f.Y, f.Width, f.Height)
}

// DrawBorder outlines the plot area.
func (f *Frame) DrawBorder(s surface.Surface) {
	s.SetColor(f.Foreground)
	s.DrawRect(f.X+f.Left, f.Y+f.Top, f.PlotWidth(), f.PlotHeight())
}

// DrawAxes draws the left and bottom edges of the plot area.
func (f *Frame) DrawAxes(s surface.Surface) {
	x0, y0 := f.X+f.Left, f.Y+f.Top
	x1, y1 := x0+f.PlotWidth(), y0+f.PlotHeight()
	s.SetColor(f.Foreground)
	s.DrawLine(x0, y0, x0, y1)
	s.DrawLine(x0, y1, x1, y1)
}

// DrawYLabels labels the left axis with cut points for r and returns
// them. The origin label is bold, and when the origin is well inside
// r a line marks it across the plot area. Nothing is drawn if r is
// degenerate.
func (f *Frame) DrawYLabels(s surface.Surface, r axis.Range) []axis.CutPoint {
	k := f.PlotHeight() / labelSpacing
	if k < 2 {
		k = 2
	}
	cps := f.Labels.CutPoints(r, k)
	if len(cps) == 0 {
		return nil
	}

	x := f.X + f.Left
	s.SetColor(f.Foreground)
	for _, cp := range cps {
		if cp.Value < r.Min || cp.Value > r.Max {
			continue
		}
		y, _ := f.MapY(cp.Value, r)
		s.DrawLine(x-TickLength, y, x, y)
		if cp.Value == 0 {
			s.SetFontStyle(surface.Bold)
		}
		w := s.StringWidth(cp.Label)
		s.DrawString(cp.Label, x-TickLength-labelGap-w, y+surface.Ascent/2)
		s.SetFontStyle(surface.Plain)
	}

	if axis.OriginVisible(r) {
		y, _ := f.MapY(0, r)
		s.SetColor(f.Origin)
		s.DrawLine(x, y, x+f.PlotWidth(), y)
	}
	return cps
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
