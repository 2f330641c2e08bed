// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart themes from TOML files.
//
// A theme file overrides any subset of the built-in settings:
//
//	[frame]
//	background = "#ffffff"
//	origin = "#14000078"
//
//	[histogram]
//	bar = "#a078ff"
//	maxlabelwidth = 40
//
//	[histogram.labels]
//	numtrials = "Trials"
//
//	[series]
//	color = "#000ac814"
//	antialias = false
//
//	[grid]
//	enlargedelay = "1.5s"
//	maxselections = 2
package config

import (
	"encoding/hex"
	"image/color"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aclements/go-chartkit/histogram"
	"github.com/aclements/go-chartkit/imagegrid"
	"github.com/aclements/go-chartkit/series"
	"github.com/pkg/errors"
)

// Color is a color written as "#rrggbb" or "#rrggbbaa".
type Color color.NRGBA

// UnmarshalText parses a hex color.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 && len(s) != 8 {
		return errors.Errorf("bad color %q: want #rrggbb or #rrggbbaa", text)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(err, "bad color %q", text)
	}
	a := uint8(0xff)
	if len(b) == 4 {
		a = b[3]
	}
	*c = Color{b[0], b[1], b[2], a}
	return nil
}

// MarshalText formats c as a hex color, omitting an opaque alpha.
func (c Color) MarshalText() ([]byte, error) {
	b := []byte{c.R, c.G, c.B}
	if c.A != 0xff {
		b = append(b, c.A)
	}
	return []byte("#" + hex.EncodeToString(b)), nil
}

// NRGBA returns c as a color.Color.
func (c Color) NRGBA() color.Color {
	return color.NRGBA(c)
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration such as "900ms".
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return errors.Wrapf(err, "bad duration %q", text)
}

// MarshalText formats d with time.Duration.String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Frame holds the colors of a chart frame.
type Frame struct {
	Background Color
	Foreground Color
	Origin     Color
}

// Histogram holds histogram settings.
type Histogram struct {
	Background    Color
	Bar           Color
	BarBorder     Color
	MaxLabelWidth int
	Labels        histogram.Labels
}

// Series holds function series settings.
type Series struct {
	Color     Color
	Antialias bool
}

// Grid holds image grid settings.
type Grid struct {
	Background    Color
	Highlight     Color
	Selection     Color
	EnlargeDelay  Duration
	MaxSelections int
}

// Config is a complete chart theme.
type Config struct {
	Frame     Frame
	Histogram Histogram
	Series    Series
	Grid      Grid
}

// Default returns the built-in theme.
func Default() *Config {
	white := Color{255, 255, 255, 255}
	black := Color{0, 0, 0, 255}
	return &Config{
		Frame: Frame{
			Background: white,
			Foreground: black,
			Origin:     Color{20, 0, 0, 120},
		},
		Histogram: Histogram{
			Background:    white,
			Bar:           Color{160, 120, 255, 255},
			BarBorder:     black,
			MaxLabelWidth: histogram.DefaultMaxLabelWidth,
			Labels:        histogram.DefaultLabels(),
		},
		Series: Series{
			Color:     Color{0, 10, 200, 20},
			Antialias: true,
		},
		Grid: Grid{
			Background:   white,
			Highlight:    Color{255, 200, 0, 255},
			Selection:    Color{0, 0, 255, 255},
			EnlargeDelay: Duration{imagegrid.DefaultEnlargeDelay},
		},
	}
}

// Load reads a theme file on top of the built-in theme. Keys the
// theme does not know are an error.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Parse is like Load but reads the theme from a string.
func Parse(text string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, errors.Wrap(err, "parsing theme")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("unknown theme keys: %v", keys)
	}
	return nil
}

// ApplyHistogram sets h's colors, labels, and label width.
func (c *Config) ApplyHistogram(h *histogram.Histogram) {
	h.SetColors(histogram.Colors{
		Background: c.Histogram.Background.NRGBA(),
		Bar:        c.Histogram.Bar.NRGBA(),
		BarBorder:  c.Histogram.BarBorder.NRGBA(),
	})
	h.SetMaxLabelWidth(c.Histogram.MaxLabelWidth)
	h.SetLabels(c.Histogram.Labels)
}

// ApplySeries sets r's series color, antialiasing, and frame colors.
func (c *Config) ApplySeries(r *series.Renderer) {
	r.SetSeriesColor(c.Series.Color.NRGBA())
	r.SetAntialias(c.Series.Antialias)
	f := r.Frame()
	f.Background = c.Frame.Background.NRGBA()
	f.Foreground = c.Frame.Foreground.NRGBA()
	f.Origin = c.Frame.Origin.NRGBA()
}

// ApplyGrid sets p's colors, enlargement delay, and selection limit.
func (c *Config) ApplyGrid(p *imagegrid.Panel) {
	p.SetColors(imagegrid.Colors{
		Background: c.Grid.Background.NRGBA(),
		Highlight:  c.Grid.Highlight.NRGBA(),
		Selection:  c.Grid.Selection.NRGBA(),
	})
	p.SetEnlargeDelay(c.Grid.EnlargeDelay.Duration)
	p.SetMaxNumSelections(c.Grid.MaxSelections)
}
