// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// A CutPoint is a tick value on an axis and its label.
type CutPoint struct {
	Value float64
	Label string
}

// originMargin is the fraction of a Range's extent at either end in
// which the origin is considered too close to the chart border to be
// emphasized.
const originMargin = 0.05

// maxDecades bounds how far above the raw step the level search may
// go.
const maxDecades = 20

// Generator produces cut points for axis ranges.
type Generator struct {
	// Tight restricts cut points to lie within the Range. Otherwise
	// the first cut point is the nice multiple at or below Min.
	Tight bool

	// Formatter, if non-nil, formats labels. By default labels are
	// formatted with just enough decimal places to distinguish
	// consecutive cut points.
	Formatter Formatter
}

// CutPoints returns at most k evenly spaced cut points spanning r
// with default formatting.
func CutPoints(r Range, k int, tight bool) []CutPoint {
	return (&Generator{Tight: tight}).CutPoints(r, k)
}

// CutPoints returns at most k cut points for r. The spacing between
// consecutive cut points is the smallest step of the form 1, 2, or 5
// times a power of ten that is at least r.Extent()/k and yields no
// more than k points. If r is degenerate, too narrow for its
// magnitude to be divided into distinct float64 steps, or k < 1, it
// returns nil.
func (g *Generator) CutPoints(r Range, k int) []CutPoint {
	if k < 1 || r.IsDegenerate() {
		return nil
	}
	t := &niceTicker{min: r.Min, max: r.Max, tight: g.Tight}
	level, ok := t.findLevel(k)
	if !ok || !t.resolvable(level) {
		return nil
	}

	prec := levelPrecision(level)
	values := t.TicksAtLevel(level).([]float64)
	cps := make([]CutPoint, 0, len(values))
	for _, v := range values {
		v = roundTo(v, prec)
		if g.Tight && !r.Contains(v) {
			continue
		}
		var label string
		if g.Formatter != nil {
			label = g.Formatter.Format(v)
		} else {
			label = FormatFixed(v, prec)
		}
		cps = append(cps, CutPoint{v, label})
	}
	return cps
}

// Step returns the spacing CutPoints would use for r and k, or NaN
// if no cut points would be produced.
func Step(r Range, k int, tight bool) float64 {
	if k < 1 || r.IsDegenerate() {
		return math.NaN()
	}
	t := &niceTicker{min: r.Min, max: r.Max, tight: tight}
	level, ok := t.findLevel(k)
	if !ok || !t.resolvable(level) {
		return math.NaN()
	}
	return niceStep(level)
}

// OriginVisible reports whether 0 lies far enough inside r to be
// drawn with emphasis without crowding the chart border.
func OriginVisible(r Range) bool {
	if r.IsDegenerate() {
		return false
	}
	eps := r.Extent() * originMargin
	return r.Min+eps < 0 && 0 < r.Max-eps
}

var niceMultipliers = [...]float64{1, 2, 5}

// niceStep returns the tick spacing at level. Every three levels
// span one decade: level 0 is 1, level 1 is 2, level 2 is 5, level 3
// is 10, level -1 is 0.5, and so on.
func niceStep(level int) float64 {
	exp := floorDiv(level, 3)
	return niceMultipliers[level-3*exp] * math.Pow(10, float64(exp))
}

// levelAtLeast returns the lowest level whose step is >= step.
func levelAtLeast(step float64) int {
	l := 3 * (int(math.Floor(math.Log10(step))) - 1)
	for niceStep(l) < step*(1-1e-12) {
		l++
	}
	return l
}

// levelPrecision returns the number of decimal places needed to
// print multiples of the step at level exactly.
func levelPrecision(level int) int {
	exp := floorDiv(level, 3)
	if exp >= 0 {
		return 0
	}
	return -exp
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func roundTo(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}

// niceTicker is a scale.Ticker over [min, max] whose ticks are
// multiples of niceStep(level).
type niceTicker struct {
	min, max float64
	tight    bool
}

// fuzz absorbs floating point error when dividing bounds by a step
// that is not exactly representable.
const fuzz = 1e-9

func (t *niceTicker) indexes(level int) (lo, hi float64) {
	step := niceStep(level)
	if t.tight {
		lo = math.Ceil(t.min/step - fuzz)
	} else {
		lo = math.Floor(t.min/step + fuzz)
	}
	hi = math.Floor(t.max/step + fuzz)
	return
}

// findLevel returns the lowest level at which the step is at least
// the raw step (max-min)/k and there are at most k ticks.
func (t *niceTicker) findLevel(k int) (int, bool) {
	minLevel := levelAtLeast((t.max - t.min) / float64(k))
	o := scale.TickOptions{Max: k, MinLevel: minLevel, MaxLevel: minLevel + 3*maxDecades}
	return o.FindLevel(t, minLevel)
}

func (t *niceTicker) CountTicks(level int) int {
	lo, hi := t.indexes(level)
	n := hi - lo + 1
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	}
	return int(n)
}

func (t *niceTicker) TicksAtLevel(level int) interface{} {
	step := niceStep(level)
	lo, _ := t.indexes(level)
	n := t.CountTicks(level)
	ticks := make([]float64, 0, n)
	for j := 0; j < n; j++ {
		ticks = append(ticks, (lo+float64(j))*step)
	}
	return ticks
}

// maxTickIndex bounds the tick indexes of a level. Beyond it,
// consecutive multiples of the step are not distinct float64 values.
const maxTickIndex = 1 << 52

// resolvable reports whether every tick at level has an exactly
// representable index.
func (t *niceTicker) resolvable(level int) bool {
	step := niceStep(level)
	return math.Max(math.Abs(t.min), math.Abs(t.max))/step <= maxTickIndex
}
