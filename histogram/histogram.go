// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram accumulates values into bins and renders the
// result as a bar chart annotated with the mean and median.
//
// Values are mapped to bins by an invertible function, so the binned
// window can be a bounded part of an unbounded domain. Every value
// counts toward the mean and the total, whether or not it lands in a
// bin.
package histogram

import (
	"math"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/fn"
	"github.com/aclements/go-chartkit/frame"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ErrMedianUnresolved is returned by Median when the bin counts never
// reach half the total. This happens when the histogram is empty or
// when most values fell outside the bins.
var ErrMedianUnresolved = errors.New("median not within binned counts")

// Margin is the space around the plot area on every side.
const Margin = 24

// A Histogram counts values in a fixed number of bins.
//
// A Histogram is not safe for concurrent use.
type Histogram struct {
	bins  []int
	count int64
	mean  float64
	f     fn.Invertible

	frame         *frame.Frame
	maxLabelWidth int
	xfmt          axis.Formatter
	labels        Labels
	colors        Colors
	logger        hclog.Logger
}

// New returns an empty histogram with numBins bins. f maps values to
// bin positions: value x is counted in bin floor(f.Value(x)). If f is
// nil, values map to bins one to one.
func New(numBins int, f fn.Invertible) *Histogram {
	if numBins < 0 {
		numBins = 0
	}
	return NewWithData(make([]int, numBins), f)
}

// NewWithData returns a histogram that counts into bins. The caller
// must not modify bins while the histogram is in use. Existing counts
// are shown but do not contribute to Count or Mean.
func NewWithData(bins []int, f fn.Invertible) *Histogram {
	if f == nil {
		f = fn.Linear{Scale: 1}
	}
	fr := frame.New(Margin, Margin, Margin, Margin)
	return &Histogram{
		bins:          bins,
		f:             f,
		mean:          f.Inverse(0),
		frame:         fr,
		maxLabelWidth: DefaultMaxLabelWidth,
		xfmt:          axis.DefaultFormatter(),
		labels:        DefaultLabels(),
		colors:        DefaultColors(),
		logger:        hclog.NewNullLogger(),
	}
}

// Increment adds x to the histogram.
func (h *Histogram) Increment(x float64) {
	if bin := h.bin(x); bin >= 0 && bin < len(h.bins) {
		h.bins[bin]++
	}
	n := float64(h.count)
	h.mean = (h.mean*n + x) / (n + 1)
	h.count++
}

func (h *Histogram) bin(x float64) int {
	pos := math.Floor(h.f.Value(x))
	if math.IsNaN(pos) || pos < 0 || pos >= float64(len(h.bins)) {
		return -1
	}
	return int(pos)
}

// Count returns the number of values added, including those outside
// the bins.
func (h *Histogram) Count() int64 {
	return h.count
}

// Mean returns the mean of all values added. Before any value is
// added it is the value that maps to bin position 0.
func (h *Histogram) Mean() float64 {
	return h.mean
}

// NumBins returns the number of bins.
func (h *Histogram) NumBins() int {
	return len(h.bins)
}

// Bins returns a copy of the bin counts.
func (h *Histogram) Bins() []int {
	return append([]int(nil), h.bins...)
}

// MaxBinValue returns the largest bin count, or 1 if all bins are
// empty.
func (h *Histogram) MaxBinValue() int {
	max := 1
	for _, v := range h.bins {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the bin position of the median value, interpolated
// within the bin where the running total of counts reaches half of
// Count. The result is in bin coordinates; map it back through the
// histogram's function to get a value.
func (h *Histogram) Median() (float64, error) {
	half := h.count / 2
	var cum int64
	for i, n := range h.bins {
		if n == 0 {
			continue
		}
		if next := cum + int64(n); next >= half {
			return float64(i) + float64(half-cum)/float64(n), nil
		}
		cum += int64(n)
	}
	return 0, errors.Wrapf(ErrMedianUnresolved, "%d of %d values binned, need %d", cum, h.count, half)
}
