// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-chartkit/internal/config"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T, stdin string) (*env, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Grid.EnlargeDelay.Duration = 10 * time.Millisecond
	return &env{
		cfg:    cfg,
		logger: hclog.NewNullLogger(),
		stdin:  strings.NewReader(stdin),
		stdout: &out,
		stderr: ioutil.Discard,
		width:  300,
		height: 200,
	}, &out
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "chartplot")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writeFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0666))
	return path
}

// checkSVG verifies that data is well-formed XML with an svg root.
func checkSVG(t *testing.T, data []byte) {
	d := xml.NewDecoder(bytes.NewReader(data))
	var root string
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if se, ok := tok.(xml.StartElement); ok && root == "" {
			root = se.Name.Local
		}
	}
	assert.Equal(t, "svg", root)
}

func TestSetSize(t *testing.T) {
	e, _ := testEnv(t, "")
	require.NoError(t, e.setSize("640x480"))
	assert.Equal(t, [2]int{640, 480}, [2]int{e.width, e.height})
	for _, bad := range []string{"640", "640x", "x480", "0x10", "axb", "1x2x3"} {
		assert.Error(t, e.setSize(bad), bad)
	}
}

func TestHistogramCommand(t *testing.T) {
	e, out := testEnv(t, "1 2 2 3 3 3 # six values\n")
	require.NoError(t, e.run([]string{"histogram", "-bins", "3"}))
	checkSVG(t, out.Bytes())
	assert.Contains(t, out.String(), "Num trials = 6")
	assert.Contains(t, out.String(), "Height = 3")

	e, _ = testEnv(t, "")
	assert.Error(t, e.run([]string{"histogram"}), "no data")
	assert.Equal(t, errUsage, e.run([]string{"histogram", "-nope"}))
	assert.Error(t, e.run([]string{"histogram", "-watch", "-"}))
}

func TestHistogramPNG(t *testing.T) {
	dir := tempDir(t)
	data := writeFile(t, dir, "data.txt", "1,2,3\n4,5,6\n")
	e, out := testEnv(t, "")
	e.out = filepath.Join(dir, "hist.png")
	require.NoError(t, e.run([]string{"histogram", "-min", "0", "-max", "10", data}))
	assert.Zero(t, out.Len())

	f, err := os.Open(e.out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())

	e.out = filepath.Join(dir, "hist.gif")
	assert.Error(t, e.run([]string{"histogram", data}))
}

func TestFunctionsCommand(t *testing.T) {
	dir := tempDir(t)
	a := writeFile(t, dir, "a.txt", "0 1 4 9 16")
	b := writeFile(t, dir, "b.txt", "5 5 -5")
	e, out := testEnv(t, "")
	require.NoError(t, e.run([]string{"functions", a, b}))
	checkSVG(t, out.Bytes())
	assert.Contains(t, out.String(), "<line")

	empty := writeFile(t, dir, "empty.txt", "# nothing\n")
	assert.Error(t, e.run([]string{"functions", empty}))
	assert.Error(t, e.run([]string{"functions", filepath.Join(dir, "missing.txt")}))
}

func writePNG(t *testing.T, dir, name string, c color.Color) string {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestGridCommand(t *testing.T) {
	dir := tempDir(t)
	var paths []string
	for i, c := range []color.Color{color.White, color.Black, color.NRGBA{255, 0, 0, 255}} {
		paths = append(paths, writePNG(t, dir, string(rune('a'+i))+".png", c))
	}
	e, out := testEnv(t, "")
	args := append([]string{"grid", "-select", "0,2", "-max-selections", "1", "-hover", "10,10"}, paths...)
	require.NoError(t, e.run(args))
	checkSVG(t, out.Bytes())
	// Three cells plus the enlarged image.
	assert.Equal(t, 4, strings.Count(out.String(), "<image"))

	e, _ = testEnv(t, "")
	assert.Error(t, e.run(append([]string{"grid", "-hover", "299,199"}, paths...)), "no image under the pointer")
	assert.Equal(t, errUsage, e.run([]string{"grid"}))

	other := image.NewRGBA(image.Rect(0, 0, 10, 10))
	path := filepath.Join(dir, "small.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, other))
	require.NoError(t, f.Close())
	assert.Error(t, e.run([]string{"grid", paths[0], path}), "mismatched sizes")
}

func TestReadScript(t *testing.T) {
	cmds, err := readScript(strings.NewReader(`
# comment
-o 'my chart.svg' histogram -bins 5 data.txt

functions "a b.txt" c.txt
`))
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, scriptCmd{3, []string{"-o", "my chart.svg", "histogram", "-bins", "5", "data.txt"}}, cmds[0])
	assert.Equal(t, scriptCmd{5, []string{"functions", "a b.txt", "c.txt"}}, cmds[1])

	_, err = readScript(strings.NewReader("histogram 'unterminated\n"))
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	dir := tempDir(t)
	data := writeFile(t, dir, "data.txt", "1 2 3 4")
	hist := filepath.Join(dir, "h.svg")
	fns := filepath.Join(dir, "f.png")
	script := writeFile(t, dir, "script", strings.Join([]string{
		"-o " + hist + " histogram -bins 4 " + data,
		"-o " + fns + " -size 100x80 functions " + data,
	}, "\n"))

	e, _ := testEnv(t, "")
	require.NoError(t, e.run([]string{"batch", script}))
	svgData, err := ioutil.ReadFile(hist)
	require.NoError(t, err)
	checkSVG(t, svgData)

	f, err := os.Open(fns)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 80), img.Bounds())
	assert.Equal(t, [2]int{300, 200}, [2]int{e.width, e.height}, "line flags do not leak")

	bad := writeFile(t, dir, "bad", "histogram "+data+"\nnosuchcommand\nbatch "+script+"\n")
	err = e.run([]string{"batch", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad:2")

	err = e.run([]string{"batch", "-k", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 commands failed")
}
