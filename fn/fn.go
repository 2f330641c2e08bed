// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fn provides the real-valued functions charts are built from:
// invertible mappings between data values and bin or pixel
// coordinates, and functions of a normalized x sampled by series
// renderers.
package fn

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/pkg/errors"
)

// An Invertible maps values forward and back. For any x in its
// domain, Inverse(Value(x)) ≈ x. Implementations are immutable.
type Invertible interface {
	Value(x float64) float64
	Inverse(y float64) float64
}

// Linear is the function Scale*x + Offset.
type Linear struct {
	Scale, Offset float64
}

func (l Linear) Value(x float64) float64 {
	return l.Scale*x + l.Offset
}

func (l Linear) Inverse(y float64) float64 {
	return (y - l.Offset) / l.Scale
}

// Log is the function Scale*log_Base(x) + Offset. It is undefined
// for x <= 0.
type Log struct {
	Base          float64
	Scale, Offset float64
}

func (l Log) Value(x float64) float64 {
	return l.Scale*math.Log(x)/math.Log(l.Base) + l.Offset
}

func (l Log) Inverse(y float64) float64 {
	return math.Pow(l.Base, (y-l.Offset)/l.Scale)
}

// Bins maps the interval [min, max) onto bin indexes [0, n).
type Bins struct {
	s scale.Linear
	n int
}

// NewBins returns the mapping of [min, max) onto n equal bins.
func NewBins(min, max float64, n int) (Bins, error) {
	if n < 1 {
		return Bins{}, errors.Errorf("bin count %d must be positive", n)
	}
	if !(min < max) || math.IsInf(max-min, 0) {
		return Bins{}, errors.Errorf("bad bin interval [%g, %g)", min, max)
	}
	return Bins{scale.Linear{Min: min, Max: max}, n}, nil
}

// NumBins returns the number of bins b maps onto.
func (b Bins) NumBins() int {
	return b.n
}

func (b Bins) Value(x float64) float64 {
	return b.s.Map(x) * float64(b.n)
}

func (b Bins) Inverse(y float64) float64 {
	return b.s.Unmap(y / float64(b.n))
}

// A Func is a function of x in [0, 1) plotted by a series renderer.
type Func interface {
	Value(x float64) float64
}

// FuncOf adapts an ordinary function to a Func.
type FuncOf func(x float64) float64

func (f FuncOf) Value(x float64) float64 {
	return f(x)
}

// Height is a Func defined by evenly spaced samples. Sample i is the
// value at x = i/(len-1); values between samples are linearly
// interpolated and values outside [0, 1] take the nearest end sample.
type Height []float64

func (h Height) Value(x float64) float64 {
	switch len(h) {
	case 0:
		return math.NaN()
	case 1:
		return h[0]
	}
	pos := x * float64(len(h)-1)
	if pos <= 0 {
		return h[0]
	}
	if pos >= float64(len(h)-1) {
		return h[len(h)-1]
	}
	i := int(pos)
	frac := pos - float64(i)
	return h[i] + (h[i+1]-h[i])*frac
}
