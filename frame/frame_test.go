// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"image/color"
	"testing"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrame() *Frame {
	f := New(60, 40, 40, 40)
	f.SetSize(500, 300)
	f.SetPosition(10, 20)
	return f
}

func TestGeometry(t *testing.T) {
	f := newTestFrame()
	assert.Equal(t, 400, f.PlotWidth())
	assert.Equal(t, 220, f.PlotHeight())

	r := axis.Range{Min: 0, Max: 110}
	y, ok := f.MapY(110, r)
	require.True(t, ok)
	assert.Equal(t, 60, y)
	y, _ = f.MapY(0, r)
	assert.Equal(t, 280, y)
	y, _ = f.MapY(55, r)
	assert.Equal(t, 170, y)

	x, ok := f.MapX(0, axis.Range{Min: 0, Max: 4})
	require.True(t, ok)
	assert.Equal(t, 70, x)
	x, _ = f.MapX(4, axis.Range{Min: 0, Max: 4})
	assert.Equal(t, 470, x)

	_, ok = f.MapY(1, axis.Range{Min: 1, Max: 1})
	assert.False(t, ok)
}

func TestFurniture(t *testing.T) {
	f := newTestFrame()
	rec := surface.NewRecorder()
	f.ClearBackground(rec)
	f.DrawBorder(rec)
	f.DrawAxes(rec)

	fills := rec.Kind(surface.OpFillRect)
	require.Len(t, fills, 1)
	assert.Equal(t, surface.Op{Kind: surface.OpFillRect, X: 10, Y: 20, W: 500, H: 300,
		Color: color.White, Antialias: true}, fills[0])

	rects := rec.Kind(surface.OpRect)
	require.Len(t, rects, 1)
	assert.Equal(t, [4]int{70, 60, 400, 220}, [4]int{rects[0].X, rects[0].Y, rects[0].W, rects[0].H})

	lines := rec.Kind(surface.OpLine)
	require.Len(t, lines, 2)
	assert.Equal(t, [4]int{70, 60, 70, 280}, [4]int{lines[0].X, lines[0].Y, lines[0].X2, lines[0].Y2})
	assert.Equal(t, [4]int{70, 280, 470, 280}, [4]int{lines[1].X, lines[1].Y, lines[1].X2, lines[1].Y2})
}

func TestYLabels(t *testing.T) {
	f := newTestFrame()
	rec := surface.NewRecorder()
	cps := f.DrawYLabels(rec, axis.Range{Min: -10, Max: 30})
	require.NotEmpty(t, cps)
	assert.Equal(t, []string{"-10", "-5", "0", "5", "10", "15", "20", "25", "30"}, rec.Strings())

	zero, ok := rec.FindString("0")
	require.True(t, ok)
	assert.Equal(t, surface.Bold, zero.Style)
	ten, _ := rec.FindString("10")
	assert.Equal(t, surface.Plain, ten.Style)

	// Labels are right aligned against the tick marks.
	for _, op := range rec.Kind(surface.OpString) {
		assert.Equal(t, 70-TickLength-labelGap, op.X+surface.TextWidth(op.Text, op.Style), "label %q", op.Text)
	}

	// The last line is the origin line across the plot.
	lines := rec.Kind(surface.OpLine)
	require.Len(t, lines, len(cps)+1)
	origin := lines[len(lines)-1]
	assert.Equal(t, OriginColor(), origin.Color)
	assert.Equal(t, [4]int{70, 225, 470, 225}, [4]int{origin.X, origin.Y, origin.X2, origin.Y2})
}

func TestYLabelsNoOrigin(t *testing.T) {
	f := newTestFrame()
	rec := surface.NewRecorder()
	cps := f.DrawYLabels(rec, axis.Range{Min: 0, Max: 30})
	assert.Len(t, rec.Kind(surface.OpLine), len(cps))
	zero, ok := rec.FindString("0")
	require.True(t, ok)
	assert.Equal(t, surface.Bold, zero.Style)
}

func TestYLabelsDegenerate(t *testing.T) {
	f := newTestFrame()
	rec := surface.NewRecorder()
	assert.Empty(t, f.DrawYLabels(rec, axis.Range{Min: 5, Max: 5}))
	assert.Empty(t, f.DrawYLabels(rec, axis.EmptyRange()))
	assert.Empty(t, rec.Ops())
}
