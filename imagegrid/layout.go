// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagegrid lays out equally sized images in a grid that
// fills a container as fully as possible without scrolling, and
// provides an interactive panel with selection and hover enlargement.
package imagegrid

import "math"

const (
	// ImageMargin is the space on each side of every image.
	ImageMargin = 2
	// TotalMargin is the margin added to each image dimension.
	TotalMargin = 2 * ImageMargin
)

// A Layout is an arrangement of N images in a grid.
type Layout struct {
	N          int
	Rows, Cols int
	// Width and Height are the display size of every image. They
	// never exceed the images' native size.
	Width, Height int
}

// A Cell is the placement of one image in a Layout. (X, Y) is the top
// left corner of the image itself, inside its margin.
type Cell struct {
	Row, Col      int
	X, Y          int
	Width, Height int
}

// Compute lays out n images of native size imgW×imgH in a container
// of size containerW×containerH.
//
// Starting from a single row, rows are added while the grid, with
// ceil(n/rows) columns, is wider in aspect than the container. Of the
// last two candidates, the one whose aspect ratio is closer to the
// container's is chosen. Images are then shrunk, but never enlarged,
// to fit the space each cell gets, keeping their aspect ratio.
//
// If there are no images or any dimension is not positive, Compute
// returns an empty Layout.
func Compute(n, imgW, imgH, containerW, containerH int) Layout {
	if n < 1 || imgW < 1 || imgH < 1 || containerW < 1 || containerH < 1 {
		return Layout{}
	}
	imageRatio := float64(imgW+TotalMargin) / float64(imgH+TotalMargin)
	panelRatio := float64(containerW) / float64(containerH)

	rows, cols := 1, n
	ratio := imageRatio * float64(n)
	lastRatio := math.Inf(1)
	for ratio > panelRatio && rows < n {
		lastRatio = ratio
		rows++
		cols = ceilDiv(n, rows)
		ratio = imageRatio * float64(cols) / float64(rows)
	}
	if ratio <= panelRatio && panelRatio-ratio >= lastRatio-panelRatio {
		// The previous, wider arrangement is a closer match.
		rows--
		cols = ceilDiv(n, rows)
	}

	w := containerW/cols - TotalMargin
	if w > imgW {
		w = imgW
	}
	h := containerH/rows - TotalMargin
	if h > imgH {
		h = imgH
	}
	// Shrink the looser dimension to keep the aspect ratio.
	if w*imgH > h*imgW {
		w = h * imgW / imgH
	} else {
		h = w * imgH / imgW
	}
	if w < 1 || h < 1 {
		w, h = 0, 0
	}
	return Layout{N: n, Rows: rows, Cols: cols, Width: w, Height: h}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Cell returns the placement of image i.
func (l Layout) Cell(i int) Cell {
	if l.Cols == 0 {
		return Cell{}
	}
	row, col := i/l.Cols, i%l.Cols
	return Cell{
		Row:    row,
		Col:    col,
		X:      col*(l.Width+TotalMargin) + ImageMargin,
		Y:      row*(l.Height+TotalMargin) + ImageMargin,
		Width:  l.Width,
		Height: l.Height,
	}
}

// IndexAt returns the index of the image containing the point (x, y),
// or -1 if the point is not over an image.
func (l Layout) IndexAt(x, y int) int {
	if l.Width == 0 || x < 0 || y < 0 {
		return -1
	}
	col := x / (l.Width + TotalMargin)
	row := y / (l.Height + TotalMargin)
	if col >= l.Cols || row >= l.Rows {
		return -1
	}
	i := row*l.Cols + col
	if i >= l.N {
		return -1
	}
	c := l.Cell(i)
	if x < c.X || x >= c.X+c.Width || y < c.Y || y >= c.Y+c.Height {
		return -1
	}
	return i
}
