// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis maps between data space and device pixels and chooses
// human-readable tick values for chart axes.
package axis

import (
	"fmt"
	"math"
)

// Range is a closed interval [Min, Max] of data values.
//
// The zero Range is [0, 0]. Use EmptyRange for a Range that has not
// seen any values yet; its bounds and extent are NaN until the first
// call to Add.
type Range struct {
	Min, Max float64
}

// EmptyRange returns a Range containing no values.
func EmptyRange() Range {
	return Range{math.NaN(), math.NaN()}
}

// NewRange returns the Range spanning all of vs.
func NewRange(vs ...float64) Range {
	r := EmptyRange()
	for _, v := range vs {
		r = r.Add(v)
	}
	return r
}

// Add returns r widened to include v. NaN values are ignored.
func (r Range) Add(v float64) Range {
	if math.IsNaN(v) {
		return r
	}
	if v < r.Min || math.IsNaN(r.Min) {
		r.Min = v
	}
	if v > r.Max || math.IsNaN(r.Max) {
		r.Max = v
	}
	return r
}

// Union returns the smallest Range containing both r and o.
func (r Range) Union(o Range) Range {
	return r.Add(o.Min).Add(o.Max)
}

// Extent returns Max - Min, or NaN if r is empty.
func (r Range) Extent() float64 {
	return r.Max - r.Min
}

// IsEmpty reports whether no value has been added to r.
func (r Range) IsEmpty() bool {
	return math.IsNaN(r.Min) || math.IsNaN(r.Max)
}

// IsDegenerate reports whether r has no usable extent: it is empty,
// or its extent is zero, negative, or not finite. Nothing can be
// mapped onto a degenerate Range.
func (r Range) IsDegenerate() bool {
	e := r.Extent()
	return math.IsNaN(e) || math.IsInf(e, 0) || e <= 0
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
