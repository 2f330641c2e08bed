// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series plots functions of a normalized x against a shared,
// automatically ranged y axis.
package series

import (
	"image/color"
	"math"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/fn"
	"github.com/aclements/go-chartkit/frame"
	"github.com/aclements/go-chartkit/surface"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

const (
	// LeftMargin leaves room for y axis labels.
	LeftMargin = 60
	// Margin is the space on the other sides of the plot area.
	Margin = 40
)

// A Point is one sample of a function. X is in [0, 1).
type Point struct {
	X, Y float64
}

// DefaultColor returns the translucent blue used for series without
// their own color.
func DefaultColor() color.Color {
	return color.NRGBA{0, 10, 200, 20}
}

// A Renderer plots a list of functions. Each function is sampled at
// one x position per horizontal pixel of the chart, less a margin,
// and drawn as connected line segments. All functions share one y
// range spanning every sample.
type Renderer struct {
	funcs  []fn.Func
	colors []color.Color
	color  color.Color
	aa     bool

	frame  *frame.Frame
	logger hclog.Logger
}

// New returns a Renderer for funcs drawn in the default color.
func New(funcs []fn.Func) *Renderer {
	return &Renderer{
		funcs:  funcs,
		color:  DefaultColor(),
		aa:     true,
		frame:  frame.New(LeftMargin, Margin, Margin, Margin),
		logger: hclog.NewNullLogger(),
	}
}

// SetFunctions replaces the plotted functions. If colors is non-nil,
// function i is drawn in colors[i] and there must be one color per
// function. Otherwise all functions use the series color.
func (r *Renderer) SetFunctions(funcs []fn.Func, colors []color.Color) error {
	if colors != nil && len(colors) != len(funcs) {
		return errors.Errorf("%d colors for %d functions", len(colors), len(funcs))
	}
	r.funcs, r.colors = funcs, colors
	return nil
}

// SetSeriesColor sets the color of functions without their own color.
func (r *Renderer) SetSeriesColor(c color.Color) {
	r.color = c
}

// SetAntialias sets whether lines are drawn antialiased on surfaces
// that support it.
func (r *Renderer) SetAntialias(on bool) {
	r.aa = on
}

// SetSize sets the size of the chart, including margins.
func (r *Renderer) SetSize(width, height int) {
	r.frame.SetSize(width, height)
}

// SetPosition sets the offset of the chart on the surface.
func (r *Renderer) SetPosition(x, y int) {
	r.frame.SetPosition(x, y)
}

// SetLogger sets the logger for painting diagnostics.
func (r *Renderer) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	r.logger = l
}

// Frame returns the frame the chart is drawn in, for adjusting its
// colors and label formatting.
func (r *Renderer) Frame() *frame.Frame {
	return r.frame
}

// numXPoints returns the number of samples per function.
func (r *Renderer) numXPoints() int {
	n := r.frame.Width - Margin
	if n < 0 {
		return 0
	}
	return n
}

// Samples evaluates every function at the chart's sample positions.
func (r *Renderer) Samples() [][]Point {
	n := r.numXPoints()
	if n == 0 {
		return make([][]Point, len(r.funcs))
	}
	xs := vec.Linspace(0, 1, n+1)[:n]
	out := make([][]Point, len(r.funcs))
	for i, f := range r.funcs {
		pts := make([]Point, n)
		for j, x := range xs {
			pts[j] = Point{x, f.Value(x)}
		}
		out[i] = pts
	}
	return out
}

// Range returns the range of the finite y values over all samples of
// all functions.
func (r *Renderer) Range() axis.Range {
	return rangeOf(r.Samples())
}

func rangeOf(samples [][]Point) axis.Range {
	rng := axis.EmptyRange()
	for _, pts := range samples {
		for _, p := range pts {
			if !math.IsInf(p.Y, 0) {
				rng = rng.Add(p.Y)
			}
		}
	}
	return rng
}

// Paint draws the functions and the chart furniture on s. A nil s
// draws nothing. If every sample has the same value there is no y
// scale, so only the furniture is drawn.
func (r *Renderer) Paint(s surface.Surface) {
	if s == nil {
		return
	}
	surface.SetAntialias(s, r.aa)
	samples := r.Samples()
	rng := rangeOf(samples)
	fr := r.frame
	fr.ClearBackground(s)

	if rng.IsDegenerate() {
		r.logger.Debug("y range is degenerate, skipping functions", "range", rng.String())
	} else {
		n := r.numXPoints()
		left := fr.X + fr.Left
		for i, pts := range samples {
			r.drawFunction(s, i, pts, rng, left, n)
		}
	}

	fr.DrawBorder(s)
	fr.DrawAxes(s)
	fr.DrawYLabels(s, rng)
}

func (r *Renderer) drawFunction(s surface.Surface, i int, pts []Point, rng axis.Range, left, n int) {
	if r.colors != nil {
		s.SetColor(r.colors[i])
	} else {
		s.SetColor(r.color)
	}
	pw := r.frame.PlotWidth()
	var lastX, lastY int
	have := false
	for j, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			have = false
			continue
		}
		x := left + j*pw/n
		y, _ := r.frame.MapY(p.Y, rng)
		if have {
			s.DrawLine(lastX, lastY, x, y)
		}
		lastX, lastY, have = x, y, true
	}
}

// PaletteColors returns n colors evenly spaced along the Viridis
// palette, for drawing each of n functions distinctly.
func PaletteColors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		cs[i] = palette.Viridis.Map(x)
	}
	return cs
}
