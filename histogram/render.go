// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"image/color"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/surface"
	"github.com/hashicorp/go-hclog"
)

// DefaultMaxLabelWidth is the default width reserved for each x axis
// label.
const DefaultMaxLabelWidth = 30

// labelBaseline is the distance of x labels' baseline above the
// bottom of the chart.
const labelBaseline = 5

// tickLength is the base length of x axis tick marks.
const tickLength = 3

// Labels are the words used to annotate a histogram.
type Labels struct {
	Height    string
	NumTrials string
	Mean      string
	Median    string
}

// DefaultLabels returns English annotation labels.
func DefaultLabels() Labels {
	return Labels{
		Height:    "Height",
		NumTrials: "Num trials",
		Mean:      "Mean",
		Median:    "Median",
	}
}

// Colors are the colors a histogram is painted with.
type Colors struct {
	Background color.Color
	Bar        color.Color
	BarBorder  color.Color
}

// DefaultColors returns lavender bars with black borders on white.
func DefaultColors() Colors {
	return Colors{
		Background: color.White,
		Bar:        color.NRGBA{160, 120, 255, 255},
		BarBorder:  color.Black,
	}
}

// SetSize sets the size of the chart, including margins.
func (h *Histogram) SetSize(width, height int) {
	h.frame.SetSize(width, height)
}

// SetPosition sets the offset of the chart on the surface.
func (h *Histogram) SetPosition(x, y int) {
	h.frame.SetPosition(x, y)
}

// SetMaxLabelWidth sets the width reserved for each x axis label.
// Wider labels mean fewer labels.
func (h *Histogram) SetMaxLabelWidth(w int) {
	if w < 1 {
		w = 1
	}
	h.maxLabelWidth = w
}

// SetXFormatter sets the formatter for x axis labels.
func (h *Histogram) SetXFormatter(f axis.Formatter) {
	if f == nil {
		f = axis.DefaultFormatter()
	}
	h.xfmt = f
}

// SetLabels sets the annotation words.
func (h *Histogram) SetLabels(l Labels) {
	h.labels = l
}

// SetColors sets the painting colors. Nil colors keep their current
// value.
func (h *Histogram) SetColors(c Colors) {
	if c.Background != nil {
		h.colors.Background = c.Background
	}
	if c.Bar != nil {
		h.colors.Bar = c.Bar
	}
	if c.BarBorder != nil {
		h.colors.BarBorder = c.BarBorder
	}
}

// SetLogger sets the logger for painting diagnostics.
func (h *Histogram) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	h.logger = l
}

// layout holds the geometry of one paint.
type layout struct {
	x0, y0   int     // surface offset of the chart
	w, h     int     // chart size
	barWidth float64 // may be fractional
	scale    float64 // pixels per count
	maxBin   int

	maxNumLabels int // bins that can all be labeled
	labelSkip    int // label every labelSkip-th bin when crowded
}

func (h *Histogram) layout() layout {
	fr := h.frame
	n := len(h.bins)
	l := layout{
		x0:     fr.X,
		y0:     fr.Y,
		w:      fr.Width,
		h:      fr.Height,
		maxBin: h.MaxBinValue(),
	}
	if n > 0 {
		l.barWidth = float64(fr.Width-2*Margin) / float64(n)
	}
	l.scale = float64(fr.Height-2*Margin) / float64(l.maxBin)
	l.maxNumLabels = fr.Width / h.maxLabelWidth
	if fr.Width > 0 {
		l.labelSkip = (h.maxLabelWidth + 10) * n / fr.Width
	}
	if l.labelSkip < 1 {
		l.labelSkip = 1
	}
	return l
}

// binX returns the surface x of the center of bin position pos.
func (l *layout) binX(pos float64) int {
	return l.x0 + int(Margin+l.barWidth*pos+l.barWidth/2)
}

// Paint draws the histogram on s. A nil s draws nothing.
func (h *Histogram) Paint(s surface.Surface) {
	if s == nil {
		return
	}
	if len(h.bins) == 0 {
		h.logger.Debug("no bins to paint")
		return
	}
	l := h.layout()
	h.logger.Trace("painting histogram", "bins", len(h.bins), "count", h.count, "maxBin", l.maxBin)

	s.SetFontStyle(surface.Plain)
	h.frame.Background = h.colors.Background
	h.frame.ClearBackground(s)

	for i, v := range h.bins {
		h.drawBar(s, &l, i, v)
	}
	h.drawAxes(s, &l)
	h.drawMarkers(s, &l)
}

func (h *Histogram) drawBar(s surface.Surface, l *layout, i, v int) {
	left := l.x0 + int(Margin+l.barWidth*float64(i))
	bh := l.scale * float64(v)
	top := l.y0 + int(float64(l.h)-bh-Margin)
	bw := int(l.barWidth)
	if bw < 1 {
		bw = 1
	}
	s.SetColor(h.colors.Bar)
	s.FillRect(left, top, bw, int(bh))
	if len(h.bins) < l.maxNumLabels {
		s.SetColor(h.colors.BarBorder)
		s.DrawRect(left, top, int(l.barWidth), int(bh))
	}
	h.drawLabel(s, l, i)
}

// drawLabel labels bin i and draws its tick marks if the density of
// bins leaves room.
func (h *Histogram) drawLabel(s surface.Surface, l *layout, i int) {
	n := len(h.bins)
	x := l.binX(float64(i))
	bottom := l.y0 + l.h - Margin
	v := h.f.Inverse(float64(i))

	labeled := true
	switch {
	case v == 0:
		s.SetFontStyle(surface.Bold)
	case n < l.maxNumLabels, i%l.labelSkip == 0:
	default:
		labeled = false
	}
	s.SetColor(h.colors.BarBorder)
	if labeled {
		label := h.xfmt.Format(v)
		s.DrawString(label, x-s.StringWidth(label)/2, l.y0+l.h-labelBaseline)
		s.SetFontStyle(surface.Plain)
	}

	skip2, skip5 := l.labelSkip/2, l.labelSkip/5
	if skip2 < 1 {
		skip2 = 1
	}
	if skip5 < 1 {
		skip5 = 1
	}
	switch {
	case l.labelSkip%2 == 0 && i%skip2 == 0:
		s.DrawLine(x, bottom+tickLength+1, x, bottom)
	case l.labelSkip%5 == 0 && i%skip5 == 0:
		s.DrawLine(x, bottom+tickLength-2, x, bottom)
	}
	if labeled {
		s.DrawLine(x, bottom+tickLength+4, x, bottom-2)
	}
}

func (h *Histogram) drawAxes(s surface.Surface, l *layout) {
	x := l.x0 + Margin - 1
	top, bottom := l.y0+Margin, l.y0+l.h-Margin
	width := int(l.barWidth * float64(len(h.bins)))

	s.SetColor(h.colors.BarBorder)
	s.DrawLine(x, bottom, x, top)
	s.DrawLine(x, bottom-1, x+width, bottom-1)

	y := l.y0 + Margin - 2
	s.DrawString(h.labels.Height+" = "+axis.FormatNumber(float64(l.maxBin)), l.x0+Margin/3, y)
	mean := h.labels.Mean + " = " + axis.FormatNumber(h.mean)
	meanX := l.x0 + l.w - Margin/3 - s.StringWidth(mean)
	s.DrawString(mean, meanX, y)
	trials := h.labels.NumTrials + " = " + axis.FormatNumber(float64(h.count))
	s.DrawString(trials, meanX-2*Margin-s.StringWidth(trials), y)
}

// drawMarkers draws vertical lines at the mean, the median, and 0 if
// 0 lies right of the first bin.
func (h *Histogram) drawMarkers(s surface.Surface, l *layout) {
	top, bottom := l.y0+Margin, l.y0+l.h-Margin
	marker := func(pos float64, label string, dy int) {
		x := l.binX(pos)
		s.DrawLine(x, bottom, x, top)
		s.DrawString(label, x+4, top+dy)
	}

	s.SetColor(h.colors.BarBorder)
	marker(h.f.Value(h.mean), h.labels.Mean, 12)

	if median, err := h.Median(); err != nil {
		h.logger.Warn("skipping median marker", "error", err)
	} else {
		marker(median, h.labels.Median, 28)
	}

	if h.f.Inverse(0) < 0 {
		marker(h.f.Value(0), "0", 38)
	}
}
