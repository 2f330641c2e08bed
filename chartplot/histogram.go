// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"os"
	"os/signal"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/fn"
	"github.com/aclements/go-chartkit/histogram"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

func (e *env) cmdHistogram(args []string) error {
	flags := e.newFlagSet("histogram", "[files...]")
	var (
		flagBins  = flags.Int("bins", 20, "number of `bins`")
		flagMin   = flags.Float64("min", math.NaN(), "lower bound of the first bin (default: smallest value)")
		flagMax   = flags.Float64("max", math.NaN(), "upper bound of the last bin (default: largest value)")
		flagLog   = flags.Float64("log", 0, "use logarithmic bins in `base`")
		flagWatch = flags.Bool("watch", false, "re-render as lines are appended to the input files")
	)
	if err := parse(flags, args); err != nil {
		return err
	}
	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if *flagWatch {
		for _, path := range paths {
			if path == "-" {
				return errors.New("cannot watch stdin")
			}
		}
	}

	var vs []float64
	for _, path := range paths {
		more, err := e.readNumberFile(path)
		if err != nil {
			return err
		}
		vs = append(vs, more...)
	}

	r := axis.NewRange(vs...)
	if !math.IsNaN(*flagMin) {
		r.Min = *flagMin
	}
	if !math.IsNaN(*flagMax) {
		r.Max = *flagMax
	}
	f, err := binMapping(r, *flagBins, *flagLog, math.IsNaN(*flagMax))
	if err != nil {
		return err
	}

	h := histogram.New(*flagBins, f)
	h.SetSize(e.width, e.height)
	h.SetLogger(e.logger.Named("histogram"))
	e.cfg.ApplyHistogram(h)
	for _, v := range vs {
		h.Increment(v)
	}
	e.logger.Debug("histogram", "values", h.Count(), "mean", h.Mean())
	if err := e.render(h); err != nil {
		return err
	}
	if !*flagWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return e.watch(ctx, h, paths)
}

// binMapping returns the mapping of range r onto n bins, logarithmic
// if base is positive. If inclusive is set, r.Max itself falls in the
// last bin.
func binMapping(r axis.Range, n int, base float64, inclusive bool) (fn.Invertible, error) {
	if r.IsEmpty() {
		return nil, errors.New("no data and no -min and -max")
	}
	if n < 1 {
		return nil, errors.Errorf("bin count %d must be positive", n)
	}
	if base > 0 {
		if base == 1 || r.Min <= 0 {
			return nil, errors.Errorf("cannot use log base %g bins over [%g, %g]", base, r.Min, r.Max)
		}
		r = axis.Range{Min: math.Log(r.Min) / math.Log(base), Max: math.Log(r.Max) / math.Log(base)}
	}
	if r.Max < r.Min {
		return nil, errors.Errorf("bad bin interval [%g, %g]", r.Min, r.Max)
	}
	if r.IsDegenerate() {
		r.Max = r.Min + 1
	} else if inclusive {
		r.Max += r.Extent() * 1e-9
	}
	if base > 0 {
		scale := float64(n) / r.Extent()
		return fn.Log{Base: base, Scale: scale, Offset: -scale * r.Min}, nil
	}
	return fn.NewBins(r.Min, r.Max, n)
}

// watch adds the values appended to paths to h, re-rendering after
// each write, until ctx is done.
func (e *env) watch(ctx context.Context, h *histogram.Histogram, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	tails := make(map[string]*tail)
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		tails[path] = &tail{path: path, offset: fi.Size()}
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
	}
	e.logger.Info("watching", "files", paths)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}
			t := tails[event.Name]
			if t == nil {
				continue
			}
			vs, err := t.next()
			if err != nil {
				e.logger.Warn("reading appended data", "file", event.Name, "error", err)
				continue
			}
			if len(vs) == 0 {
				continue
			}
			for _, v := range vs {
				h.Increment(v)
			}
			e.logger.Debug("appended", "file", event.Name, "values", len(vs), "total", h.Count())
			if err := e.render(h); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watch error", "error", err)
		}
	}
}
