// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-chartkit/surface"
	"github.com/pkg/errors"
)

// A painter draws itself on a surface.
type painter interface {
	Paint(s surface.Surface)
}

// render paints p at the env's size and writes it to the output
// file, in the format named by its extension, or as SVG to stdout.
func (e *env) render(p painter) error {
	ext := strings.ToLower(filepath.Ext(e.out))
	if ext != "" && ext != ".svg" && ext != ".png" {
		return errors.Errorf("%s: unknown output format %q", e.out, ext)
	}

	var w io.Writer = e.stdout
	var f *os.File
	if e.out != "" {
		var err error
		f, err = os.Create(e.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if ext == ".png" {
		r := surface.NewRaster(e.width, e.height)
		p.Paint(r)
		if err := r.WritePNG(w); err != nil {
			return errors.Wrap(err, e.out)
		}
	} else {
		s := surface.NewSVG(w, e.width, e.height)
		s.SetLogger(e.logger.Named("svg"))
		p.Paint(s)
		s.Close()
	}
	e.logger.Debug("wrote chart", "file", e.out, "width", e.width, "height", e.height)

	if f != nil {
		return f.Close()
	}
	return nil
}
