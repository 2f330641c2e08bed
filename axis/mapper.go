// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "math"

// ToPixelY maps value in r to a vertical pixel offset within a chart
// of height chartHeight. r.Max maps to topMargin and r.Min maps to
// chartHeight-bottomMargin. Values outside r are reflected about
// r.Max, since the offset is measured as the distance from r.Max.
//
// ok is false if r is degenerate, in which case the mapping is
// undefined and callers should skip drawing anything that depends
// on it.
func ToPixelY(value float64, r Range, chartHeight, topMargin, bottomMargin int) (y float64, ok bool) {
	if r.IsDegenerate() {
		return 0, false
	}
	plot := float64(chartHeight - topMargin - bottomMargin)
	return float64(topMargin) + math.Abs(r.Max-value)/r.Extent()*plot, true
}

// FromPixelY is the inverse of ToPixelY for pixel offsets at or
// below topMargin.
func FromPixelY(y float64, r Range, chartHeight, topMargin, bottomMargin int) (value float64, ok bool) {
	plot := float64(chartHeight - topMargin - bottomMargin)
	if r.IsDegenerate() || plot <= 0 {
		return 0, false
	}
	return r.Max - (y-float64(topMargin))/plot*r.Extent(), true
}

// ToPixelX maps value in r to a horizontal pixel offset within a
// chart of width chartWidth. r.Min maps to leftMargin and r.Max maps
// to chartWidth-rightMargin.
func ToPixelX(value float64, r Range, chartWidth, leftMargin, rightMargin int) (x float64, ok bool) {
	if r.IsDegenerate() {
		return 0, false
	}
	plot := float64(chartWidth - leftMargin - rightMargin)
	return float64(leftMargin) + (value-r.Min)/r.Extent()*plot, true
}

// FromPixelX is the inverse of ToPixelX.
func FromPixelX(x float64, r Range, chartWidth, leftMargin, rightMargin int) (value float64, ok bool) {
	plot := float64(chartWidth - leftMargin - rightMargin)
	if r.IsDegenerate() || plot <= 0 {
		return 0, false
	}
	return r.Min + (x-float64(leftMargin))/plot*r.Extent(), true
}
