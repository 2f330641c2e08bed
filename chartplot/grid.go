// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"time"

	"github.com/aclements/go-chartkit/imagegrid"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

func (e *env) cmdGrid(args []string) error {
	flags := e.newFlagSet("grid", "images...")
	var (
		flagSelect = flags.String("select", "", "select the images at comma-separated `indexes`")
		flagHover  = flags.String("hover", "", "rest the pointer at `x,y` and show the enlarged image")
		flagMaxSel = flags.Int("max-selections", -1, "allow at most `n` selected images (default: from the theme)")
	)
	if err := parse(flags, args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}

	imgs := make([]image.Image, flags.NArg())
	for i, path := range flags.Args() {
		img, err := decodeImage(path)
		if err != nil {
			return err
		}
		imgs[i] = img
	}

	p, err := imagegrid.NewPanel(imgs)
	if err != nil {
		return err
	}
	defer p.Close()
	logger := e.logger.Named("grid")
	p.SetLogger(logger)
	p.SetSize(e.width, e.height)
	e.cfg.ApplyGrid(p)
	if *flagMaxSel >= 0 {
		p.SetMaxNumSelections(*flagMaxSel)
	}
	p.AddSelectionListener(&logListener{logger})
	l := p.Layout()
	logger.Debug("layout", "rows", l.Rows, "cols", l.Cols, "width", l.Width, "height", l.Height)

	if *flagSelect != "" {
		indexes, err := parseInts(*flagSelect, -1)
		if err != nil {
			return errors.Wrap(err, "-select")
		}
		p.SetSelectedIndices(indexes)
	}

	if *flagHover != "" {
		xy, err := parseInts(*flagHover, 2)
		if err != nil {
			return errors.Wrap(err, "-hover")
		}
		if err := hover(p, xy[0], xy[1], e.cfg.Grid.EnlargeDelay.Duration+time.Second); err != nil {
			return err
		}
	}
	return e.render(p)
}

// hover rests the pointer at (x, y) and waits up to timeout for the
// image under it to be enlarged.
func hover(p *imagegrid.Panel, x, y int, timeout time.Duration) error {
	changed := make(chan struct{}, 1)
	p.SetRepaintFunc(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer p.SetRepaintFunc(nil)

	p.MouseMoved(x, y)
	if p.Highlighted() < 0 {
		return errors.Errorf("no image at %d,%d", x, y)
	}
	deadline := time.After(timeout)
	for !p.Enlarged() {
		select {
		case <-changed:
		case <-deadline:
			return errors.Errorf("image at %d,%d was not enlarged after %s", x, y, timeout)
		}
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, errors.Wrap(err, path)
}

// parseInts parses a comma-separated list of integers. If n >= 0,
// the list must have exactly n elements.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if n >= 0 && len(parts) != n {
		return nil, errors.Errorf("%q: want %d comma-separated integers", s, n)
	}
	xs := make([]int, len(parts))
	for i, part := range parts {
		x, err := cast.ToIntE(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// logListener logs selection changes.
type logListener struct {
	logger hclog.Logger
}

func (l *logListener) ImageSelected(img image.Image) {
	if img == nil {
		l.logger.Debug("click outside images")
		return
	}
	l.logger.Info("image selected", "bounds", img.Bounds())
}
