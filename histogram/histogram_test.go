// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"bytes"
	"testing"

	"github.com/aclements/go-chartkit/fn"
	"github.com/aclements/go-chartkit/surface"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	h := New(10, nil)
	for _, x := range []float64{1, 1, 1, 1, 5} {
		h.Increment(x)
	}
	assert.InDelta(t, 1.8, h.Mean(), 1e-12)
	assert.Equal(t, int64(5), h.Count())
	assert.Equal(t, []int{0, 4, 0, 0, 0, 1, 0, 0, 0, 0}, h.Bins())
	assert.Equal(t, 4, h.MaxBinValue())
}

func TestInitialMean(t *testing.T) {
	assert.Equal(t, 0.0, New(10, nil).Mean())
	assert.Equal(t, -5.0, New(10, fn.Linear{Scale: 1, Offset: 5}).Mean())
	assert.Equal(t, 1, New(3, nil).MaxBinValue())
}

func TestOutOfRange(t *testing.T) {
	h := New(10, nil)
	for _, x := range []float64{50, -0.5, 10} {
		h.Increment(x)
	}
	assert.Equal(t, make([]int, 10), h.Bins())
	assert.Equal(t, int64(3), h.Count())
	assert.InDelta(t, 59.5/3, h.Mean(), 1e-12)
}

func TestBinsMapping(t *testing.T) {
	b, err := fn.NewBins(100, 200, 4)
	require.NoError(t, err)
	h := New(b.NumBins(), b)
	for _, x := range []float64{100, 124.9, 125, 199.9, 200, 99} {
		h.Increment(x)
	}
	assert.Equal(t, []int{2, 1, 0, 1}, h.Bins())
	assert.Equal(t, 100.0, New(4, b).Mean())
}

func TestMedian(t *testing.T) {
	for _, test := range []struct {
		name string
		xs   []float64
		want float64
	}{
		{"single", []float64{7}, 7},
		{"interpolated", []float64{0, 1, 1, 2}, 1.5},
		{"skewed", []float64{1, 1, 1, 1, 5}, 1.5},
		{"even", []float64{2, 2, 6, 6}, 3},
	} {
		h := New(10, nil)
		for _, x := range test.xs {
			h.Increment(x)
		}
		got, err := h.Median()
		require.NoError(t, err, test.name)
		assert.InDelta(t, test.want, got, 1e-12, test.name)
	}
}

func TestMedianUnresolved(t *testing.T) {
	_, err := New(10, nil).Median()
	assert.Equal(t, ErrMedianUnresolved, errors.Cause(err))

	h := New(10, nil)
	for _, x := range []float64{50, 50, 50, 2} {
		h.Increment(x)
	}
	_, err = h.Median()
	require.Error(t, err)
	assert.Equal(t, ErrMedianUnresolved, errors.Cause(err))
	assert.Contains(t, err.Error(), "1 of 4 values binned")
}

func TestNewWithData(t *testing.T) {
	data := []int{0, 0, 3}
	h := NewWithData(data, nil)
	h.Increment(0)
	assert.Equal(t, []int{1, 0, 3}, data)
	assert.Equal(t, int64(1), h.Count())
	assert.Equal(t, 3, h.MaxBinValue())
}

func TestPaintNil(t *testing.T) {
	h := New(10, nil)
	h.SetSize(400, 300)
	h.Paint(nil)

	rec := surface.NewRecorder()
	New(0, nil).Paint(rec)
	assert.Empty(t, rec.Ops())
}

func TestPaint(t *testing.T) {
	h := New(10, nil)
	for _, x := range []float64{1, 1, 1, 1, 5} {
		h.Increment(x)
	}
	h.SetSize(400, 300)
	rec := surface.NewRecorder()
	h.Paint(rec)

	// Background plus one bar per bin, each with a border.
	assert.Len(t, rec.Kind(surface.OpFillRect), 11)
	assert.Len(t, rec.Kind(surface.OpRect), 10)

	assert.Equal(t, []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"Height = 4", "Mean = 1.8", "Num trials = 5",
		"Mean", "Median",
	}, rec.Strings())

	zero, _ := rec.FindString("0")
	assert.Equal(t, surface.Bold, zero.Style)
	one, _ := rec.FindString("1")
	assert.Equal(t, surface.Plain, one.Style)

	// Bar width is 35.2, so bin position p is centered at
	// 24 + 35.2*p + 17.6.
	mean, _ := rec.FindString("Mean")
	assert.Equal(t, 104+4, mean.X)
	median, _ := rec.FindString("Median")
	assert.Equal(t, 94+4, median.X)

	// The tallest bar fills the plot height.
	bar := rec.Kind(surface.OpFillRect)[2]
	assert.Equal(t, 300-2*Margin, bar.H)
	assert.Equal(t, Margin, bar.Y)
}

func TestPaintPosition(t *testing.T) {
	h := New(4, nil)
	h.SetSize(200, 100)
	h.SetPosition(50, 70)
	rec := surface.NewRecorder()
	h.Paint(rec)
	bg := rec.Kind(surface.OpFillRect)[0]
	assert.Equal(t, [4]int{50, 70, 200, 100}, [4]int{bg.X, bg.Y, bg.W, bg.H})
	first := rec.Kind(surface.OpFillRect)[1]
	assert.Equal(t, 50+Margin, first.X)
}

func TestPaintCrowded(t *testing.T) {
	h := New(200, nil)
	h.SetSize(400, 300)
	rec := surface.NewRecorder()
	h.Paint(rec)

	assert.Empty(t, rec.Kind(surface.OpRect), "no bar borders")
	var labels []string
	for _, s := range rec.Strings() {
		labels = append(labels, s)
		if s == "180" {
			break
		}
	}
	assert.Equal(t, []string{"0", "20", "40", "60", "80", "100", "120", "140", "160", "180"}, labels)
	_, ok := rec.FindString("Median")
	assert.False(t, ok, "empty histogram has no median")
}

func TestPaintFormatterAndLabels(t *testing.T) {
	h := New(3, fn.Linear{Scale: 0.5})
	h.SetSize(400, 300)
	h.SetXFormatter(nil)
	h.SetLabels(Labels{Height: "H", NumTrials: "N", Mean: "μ", Median: "m"})
	rec := surface.NewRecorder()
	h.Paint(rec)
	assert.Subset(t, rec.Strings(), []string{"0", "2", "4", "H = 1", "N = 0", "μ = 0", "μ"})
}

func TestZeroMarker(t *testing.T) {
	h := New(10, fn.Linear{Scale: 1, Offset: 5})
	h.SetSize(400, 300)
	h.Increment(0)
	rec := surface.NewRecorder()
	h.Paint(rec)

	var zeros []surface.Op
	for _, op := range rec.Kind(surface.OpString) {
		if op.Text == "0" {
			zeros = append(zeros, op)
		}
	}
	require.Len(t, zeros, 2, "bin label and zero marker")
	assert.Equal(t, surface.Bold, zeros[0].Style)
	assert.Equal(t, surface.Plain, zeros[1].Style)
	assert.Equal(t, Margin+38, zeros[1].Y)
}

func TestPaintLogsUnresolvedMedian(t *testing.T) {
	var buf bytes.Buffer
	h := New(5, nil)
	h.SetSize(300, 200)
	h.SetLogger(hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn}))
	h.Increment(100)
	h.Increment(100)
	h.Paint(surface.NewRecorder())
	assert.Contains(t, buf.String(), "skipping median marker")
}
