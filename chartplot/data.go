// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// readNumbers parses the numbers in r. Numbers are separated by white
// space or commas and # starts a comment that runs to the end of the
// line.
func readNumbers(r io.Reader) ([]float64, error) {
	var vs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		more, err := parseLine(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		vs = append(vs, more...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading numbers")
	}
	return vs, nil
}

func parseLine(text string) ([]float64, error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	var vs []float64
	for _, field := range strings.FieldsFunc(text, isSeparator) {
		v, err := cast.ToFloat64E(field)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', ',':
		return true
	}
	return false
}

// readNumberFile reads the numbers in path, or stdin if path is "-".
func (e *env) readNumberFile(path string) ([]float64, error) {
	if path == "-" {
		vs, err := readNumbers(e.stdin)
		return vs, errors.Wrap(err, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vs, err := readNumbers(f)
	return vs, errors.Wrap(err, path)
}

// A tail reads numbers appended to a file since the last read. Only
// complete lines are consumed.
type tail struct {
	path   string
	offset int64
}

// next returns the numbers on lines completed since the last call.
func (t *tail) next() ([]float64, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < t.offset {
		// Truncated. Start over.
		t.offset = 0
	}
	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	end := strings.LastIndexByte(string(data), '\n')
	if end < 0 {
		return nil, nil
	}
	vs, err := readNumbers(strings.NewReader(string(data[:end+1])))
	if err != nil {
		return nil, errors.Wrap(err, t.path)
	}
	t.offset += int64(end + 1)
	return vs, nil
}
