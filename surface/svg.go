// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hashicorp/go-hclog"
)

// SVG is a Surface that writes an SVG document.
type SVG struct {
	canvas *svg.SVG
	color  color.Color
	style  FontStyle
	aa     bool
	logger hclog.Logger
}

// NewSVG starts an SVG document of the given size on w. The caller
// must call Close to finish the document.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height, `font-size="13px" font-family="monospace"`)
	return &SVG{canvas: canvas, color: color.Black, aa: true, logger: hclog.NewNullLogger()}
}

// SetLogger sets the logger that reports images s could not embed.
func (s *SVG) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	s.logger = l
}

// Close ends the SVG document.
func (s *SVG) Close() {
	s.canvas.End()
}

func (s *SVG) SetColor(c color.Color) {
	s.color = c
}

func (s *SVG) SetFontStyle(style FontStyle) {
	s.style = style
}

func (s *SVG) SetAntialias(on bool) {
	s.aa = on
}

func (s *SVG) shape(style string) string {
	if !s.aa {
		style += ";shape-rendering:crispEdges"
	}
	return style
}

func (s *SVG) DrawLine(x1, y1, x2, y2 int) {
	s.canvas.Line(x1, y1, x2, y2, s.shape(cssPaint("stroke", s.color)+";stroke-width:1"))
}

func (s *SVG) DrawRect(x, y, w, h int) {
	s.canvas.Rect(x, y, w, h, s.shape(cssPaint("stroke", s.color)+";fill:none;stroke-width:1"))
}

func (s *SVG) FillRect(x, y, w, h int) {
	s.canvas.Rect(x, y, w, h, s.shape(cssPaint("fill", s.color)))
}

func (s *SVG) FillOval(x, y, w, h int) {
	s.canvas.Ellipse(x+w/2, y+h/2, w/2, h/2, s.shape(cssPaint("fill", s.color)))
}

func (s *SVG) DrawString(str string, x, y int) {
	style := cssPaint("fill", s.color)
	if s.style == Bold {
		style += ";font-weight:bold"
	}
	s.canvas.Text(x, y, str, style)
}

func (s *SVG) StringWidth(str string) int {
	return TextWidth(str, s.style)
}

// DrawImage embeds img as a PNG data URI. Images that cannot be
// encoded are logged and skipped.
func (s *SVG) DrawImage(img image.Image, x, y, w, h int) {
	uri := bytes.NewBufferString("data:image/png;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, uri)
	err := png.Encode(enc, img)
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		s.logger.Warn("skipping image", "x", x, "y", y, "error", err)
		return
	}
	s.canvas.Image(x, y, w, h, uri.String(), `preserveAspectRatio="none"`)
}

// cssPaint returns the CSS property prop set to color c.
func cssPaint(prop string, c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, r>>8, g>>8, b>>8)
	if a != 0xffff {
		css += fmt.Sprintf(";%s-opacity:%.6g", prop, float64(a)/0xffff)
	}
	return css
}
