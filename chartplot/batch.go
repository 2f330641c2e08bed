// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

func (e *env) cmdBatch(args []string) error {
	flags := e.newFlagSet("batch", "script")
	flagKeepGoing := flags.Bool("k", false, "keep going after a command fails")
	if err := parse(flags, args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	path := flags.Arg(0)
	var r io.Reader = e.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	cmds, err := readScript(r)
	if err != nil {
		return errors.Wrap(err, path)
	}

	var failed int
	for _, cmd := range cmds {
		err := e.runLine(cmd.args)
		if err == nil {
			continue
		}
		err = errors.Wrapf(err, "%s:%d", path, cmd.line)
		if !*flagKeepGoing {
			return err
		}
		e.logger.Error("command failed", "error", err)
		failed++
	}
	if failed > 0 {
		return errors.Errorf("%d of %d commands failed", failed, len(cmds))
	}
	return nil
}

// A scriptCmd is one command of a batch script.
type scriptCmd struct {
	line int
	args []string
}

// readScript splits a batch script into commands, one per line, with
// shell quoting rules. Blank lines and lines starting with # are
// skipped.
func readScript(r io.Reader) ([]scriptCmd, error) {
	var cmds []scriptCmd
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shellquote.Split(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		cmds = append(cmds, scriptCmd{line, args})
	}
	return cmds, scanner.Err()
}

// runLine runs one batch command, which may start with -o and -size
// flags overriding the batch's own.
func (e *env) runLine(args []string) error {
	sub := *e
	sub.inBatch = true
	flags := e.newFlagSet("command", "<subcommand...>")
	flags.StringVar(&sub.out, "o", e.out, "write output to `file`")
	size := flags.String("size", "", "output size `WxH` in pixels")
	if err := parse(flags, args); err != nil {
		return err
	}
	if *size != "" {
		if err := sub.setSize(*size); err != nil {
			return err
		}
	}
	return sub.run(flags.Args())
}
