// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-chartkit/axis"
	"github.com/aclements/go-chartkit/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNumbers(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []float64
	}{
		{"", nil},
		{"1 2 3", []float64{1, 2, 3}},
		{"1,2,\t3\n4", []float64{1, 2, 3, 4}},
		{"# header\n1.5e3 # trailing\n\n-2", []float64{1500, -2}},
		{"1 , , 2\r\n", []float64{1, 2}},
	} {
		got, err := readNumbers(strings.NewReader(test.in))
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	_, err := readNumbers(strings.NewReader("1 2\n3 x4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTail(t *testing.T) {
	dir, err := ioutil.TempDir("", "chartplot")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "data")
	require.NoError(t, ioutil.WriteFile(path, []byte("1 2\n3"), 0666))

	tl := &tail{path: path}
	vs, err := tl.next()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, vs, "incomplete lines are left for later")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0666)
	require.NoError(t, err)
	_, err = f.WriteString("4\n5\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	vs, err = tl.next()
	require.NoError(t, err)
	assert.Equal(t, []float64{34, 5}, vs)

	vs, err = tl.next()
	require.NoError(t, err)
	assert.Empty(t, vs)

	// Truncation restarts from the beginning.
	require.NoError(t, ioutil.WriteFile(path, []byte("7\n"), 0666))
	vs, err = tl.next()
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, vs)
}

func TestBinMapping(t *testing.T) {
	f, err := binMapping(axis.NewRange(0, 10), 5, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 4.0, math.Floor(f.Value(10)), "max falls in the last bin")
	assert.Equal(t, 0.0, f.Value(0))

	f, err = binMapping(axis.Range{Min: 0, Max: 10}, 5, 0, false)
	require.NoError(t, err)
	assert.InDelta(t, 5, f.Value(10), 1e-12, "an explicit max is exclusive")

	f, err = binMapping(axis.NewRange(1, 1000), 3, 10, false)
	require.NoError(t, err)
	assert.IsType(t, fn.Log{}, f)
	assert.InDelta(t, 1, f.Value(10), 1e-9)
	assert.InDelta(t, 100, f.Inverse(2), 1e-9)

	f, err = binMapping(axis.NewRange(4), 2, 0, true)
	require.NoError(t, err, "a single value gets a unit interval")
	assert.Equal(t, 0.0, math.Floor(f.Value(4)))

	for _, bad := range []struct {
		r    axis.Range
		n    int
		base float64
	}{
		{axis.EmptyRange(), 5, 0},
		{axis.NewRange(0, 1), 0, 0},
		{axis.Range{Min: 5, Max: 1}, 5, 0},
		{axis.NewRange(0, 10), 5, 10},
		{axis.NewRange(1, 10), 5, 1},
	} {
		_, err := binMapping(bad.r, bad.n, bad.base, true)
		assert.Error(t, err, "%v %d bins base %g", bad.r, bad.n, bad.base)
	}
}

func TestParseInts(t *testing.T) {
	xs, err := parseInts("3, 0,9", -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 9}, xs)

	xs, err = parseInts("10,20", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, xs)

	_, err = parseInts("10", 2)
	assert.Error(t, err)
	_, err = parseInts("a,b", -1)
	assert.Error(t, err)
}
