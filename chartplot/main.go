// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartplot renders histograms, function plots, and image
// grids from data files.
//
// Numeric input files hold numbers separated by white space or
// commas, and # starts a comment. The output format is chosen by the
// extension of the -o file: .svg (the default, also used for stdout)
// or .png.
//
// The batch subcommand reads a script with one command per line, each
// written as it would be on a shell command line without the leading
// "chartplot", for example:
//
//	-o lat.png histogram -bins 50 latency.txt
//	-o fns.svg -size 400x300 functions a.txt b.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-chartkit/internal/config"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const defaultSize = "640x480"

// errUsage reports a command line error whose usage message has
// already been printed.
var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("chartplot: ")
	log.SetFlags(0)

	var (
		flagConfig   = flag.String("config", "", "load the chart theme from TOML `file`")
		flagLogLevel = flag.String("log-level", "warn", "log `level`: trace, debug, info, warn, or error")
		flagOut      = flag.String("o", "", "write output to `file` (default: SVG to stdout)")
		flagSize     = flag.String("size", defaultSize, "output size `WxH` in pixels")
	)
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <subcommand...>\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nSubcommands:\n")
		fmt.Fprintf(w, "  histogram  histogram of the numbers in data files\n")
		fmt.Fprintf(w, "  functions  plot each data file as a sampled function\n")
		fmt.Fprintf(w, "  grid       lay out images in a grid\n")
		fmt.Fprintf(w, "  batch      run the commands in a script\n")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := hclog.LevelFromString(*flagLogLevel)
	if level == hclog.NoLevel {
		log.Fatalf("unknown log level %q", *flagLogLevel)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "chartplot",
		Level:  level,
		Output: os.Stderr,
	})

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	}

	e := &env{
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		out:    *flagOut,
	}
	if err := e.setSize(*flagSize); err != nil {
		log.Fatal(err)
	}
	if err := e.run(flag.Args()); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// An env is the context one command runs in.
type env struct {
	cfg    *config.Config
	logger hclog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer // usage output; nil means os.Stderr

	out           string
	width, height int

	inBatch bool
}

func (e *env) usageOutput() io.Writer {
	if e.stderr == nil {
		return os.Stderr
	}
	return e.stderr
}

// newFlagSet returns a flag set for subcommand name whose errors are
// returned rather than exiting.
func (e *env) newFlagSet(name, args string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(e.usageOutput())
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s %s [flags] %s\n", os.Args[0], name, args)
		flags.PrintDefaults()
	}
	return flags
}

// parse parses args into flags, mapping flag errors to errUsage.
func parse(flags *flag.FlagSet, args []string) error {
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func (e *env) setSize(s string) error {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return errors.Errorf("bad size %q: want WxH", s)
	}
	w, err := cast.ToIntE(parts[0])
	if err != nil {
		return errors.Wrapf(err, "bad size %q", s)
	}
	h, err := cast.ToIntE(parts[1])
	if err != nil {
		return errors.Wrapf(err, "bad size %q", s)
	}
	if w < 1 || h < 1 {
		return errors.Errorf("bad size %q: dimensions must be positive", s)
	}
	e.width, e.height = w, h
	return nil
}

// run runs the subcommand args[0].
func (e *env) run(args []string) error {
	if len(args) == 0 {
		return errors.New("missing subcommand")
	}
	cmd, args := args[0], args[1:]
	e.logger.Debug("running", "command", cmd, "args", args)
	switch cmd {
	case "histogram":
		return e.cmdHistogram(args)
	case "functions":
		return e.cmdFunctions(args)
	case "grid":
		return e.cmdGrid(args)
	case "batch":
		if e.inBatch {
			return errors.New("batch scripts cannot run batch")
		}
		return e.cmdBatch(args)
	}
	return errors.Errorf("unknown subcommand %q", cmd)
}
