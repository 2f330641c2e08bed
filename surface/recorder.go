// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpLine OpKind = iota
	OpRect
	OpFillRect
	OpFillOval
	OpString
	OpImage
)

var opNames = [...]string{"line", "rect", "fillRect", "fillOval", "string", "image"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// An Op is one recorded drawing primitive with the color and font
// style in effect when it was drawn.
//
// For OpLine, (X, Y) and (X2, Y2) are the endpoints. For shapes and
// images, (X, Y) is the top left corner and W and H the size. For
// OpString, (X, Y) is the baseline origin and Text the string.
type Op struct {
	Kind   OpKind
	X, Y   int
	X2, Y2 int
	W, H   int
	Text   string
	Image  image.Image

	Color     color.Color
	Style     FontStyle
	Antialias bool
}

func (o Op) String() string {
	switch o.Kind {
	case OpLine:
		return fmt.Sprintf("line(%d,%d %d,%d)", o.X, o.Y, o.X2, o.Y2)
	case OpString:
		return fmt.Sprintf("string(%q at %d,%d)", o.Text, o.X, o.Y)
	}
	return fmt.Sprintf("%v(%d,%d %dx%d)", o.Kind, o.X, o.Y, o.W, o.H)
}

// Recorder is a Surface that records the primitives drawn on it.
type Recorder struct {
	ops   []Op
	color color.Color
	style FontStyle
	aa    bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{color: color.Black, aa: true}
}

func (r *Recorder) add(op Op) {
	op.Color, op.Style, op.Antialias = r.color, r.style, r.aa
	r.ops = append(r.ops, op)
}

// Ops returns all recorded primitives in drawing order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Kind returns the recorded primitives of kind k in drawing order.
func (r *Recorder) Kind(k OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Strings returns the text of every recorded string in drawing order.
func (r *Recorder) Strings() []string {
	var out []string
	for _, op := range r.Kind(OpString) {
		out = append(out, op.Text)
	}
	return out
}

// FindString returns the first recorded string op with text s.
func (r *Recorder) FindString(s string) (Op, bool) {
	for _, op := range r.Kind(OpString) {
		if op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

// Reset discards all recorded primitives.
func (r *Recorder) Reset() {
	r.ops = nil
}

func (r *Recorder) SetColor(c color.Color)       { r.color = c }
func (r *Recorder) SetFontStyle(style FontStyle) { r.style = style }
func (r *Recorder) SetAntialias(on bool)         { r.aa = on }

func (r *Recorder) DrawLine(x1, y1, x2, y2 int) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawRect(x, y, w, h int) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h int) {
	r.add(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillOval(x, y, w, h int) {
	r.add(Op{Kind: OpFillOval, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawString(s string, x, y int) {
	r.add(Op{Kind: OpString, X: x, Y: y, Text: s})
}

func (r *Recorder) StringWidth(s string) int {
	return TextWidth(s, r.style)
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h int) {
	r.add(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Image: img})
}
