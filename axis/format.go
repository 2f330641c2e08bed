// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// A Formatter formats axis values as labels.
type Formatter interface {
	Format(v float64) string
}

// FormatterFunc adapts an ordinary function to a Formatter.
type FormatterFunc func(v float64) string

func (f FormatterFunc) Format(v float64) string {
	return f(v)
}

// DefaultFormatter returns the Formatter that formats values with
// FormatNumber.
func DefaultFormatter() Formatter {
	return FormatterFunc(FormatNumber)
}

// FormatFixed formats v with exactly prec decimal places. Negative
// zero is printed as "0".
func FormatFixed(v float64, prec int) string {
	if v == 0 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if s[0] == '-' && strconv.FormatFloat(0, 'f', prec, 64) == s[1:] {
		s = s[1:]
	}
	return s
}

// FormatNumber formats v for display in chart annotations. It groups
// thousands and shows fewer decimal places for larger magnitudes.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	var digits int
	switch a := math.Abs(v); {
	case a >= 1000:
		digits = 0
	case a >= 10:
		digits = 1
	case a >= 1:
		digits = 2
	default:
		digits = 3
	}
	if v == math.Trunc(v) {
		digits = 0
	}
	s := humanize.CommafWithDigits(v, digits)
	if s == "-0" {
		s = "0"
	}
	return s
}
