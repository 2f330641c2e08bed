// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-chartkit/fn"
	"github.com/aclements/go-chartkit/series"
	"github.com/pkg/errors"
)

func (e *env) cmdFunctions(args []string) error {
	flags := e.newFlagSet("functions", "[files...]")
	flagPalette := flags.Bool("palette", true, "color each function differently when there is more than one")
	if err := parse(flags, args); err != nil {
		return err
	}
	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	funcs := make([]fn.Func, len(paths))
	for i, path := range paths {
		vs, err := e.readNumberFile(path)
		if err != nil {
			return err
		}
		if len(vs) == 0 {
			return errors.Errorf("%s: no samples", path)
		}
		funcs[i] = fn.Height(vs)
	}

	r := series.New(nil)
	r.SetSize(e.width, e.height)
	r.SetLogger(e.logger.Named("series"))
	e.cfg.ApplySeries(r)
	var colors []color.Color
	if *flagPalette && len(funcs) > 1 {
		colors = series.PaletteColors(len(funcs))
	}
	if err := r.SetFunctions(funcs, colors); err != nil {
		return err
	}
	e.logger.Debug("functions", "count", len(funcs), "range", r.Range())
	return e.render(r)
}
