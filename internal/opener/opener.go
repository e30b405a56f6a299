// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opener shows files and folders in the platform file manager.
package opener

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// Opener asks the OS shell to present a location to the user.
type Opener interface {
	// Open launches the file manager at path and returns as soon as the
	// process started. It doesn't report whether a window actually showed
	// up.
	Open(path string) error
}

// Options configures the opener returned by New.
type Options struct {
	// Program overrides the opener program. When empty, the platform
	// default is used (explorer, open or xdg-open).
	Program string

	Logger *slog.Logger
}

type processOpener struct {
	program string
	logger  *slog.Logger
}

// New returns an Opener that spawns the configured program with the path as
// its only argument.
func New(opts Options) Opener {
	program := opts.Program
	if program == "" {
		program = defaultProgram
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &processOpener{program: program, logger: logger}
}

func (o *processOpener) Open(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cmderr.NotFound("folder", path)
	}
	if err != nil {
		return cmderr.IO(err, "stat", path)
	}
	if o.program == "" {
		return cmderr.Unavailable("no folder opener available on %s", runtime.GOOS)
	}

	cmd := exec.Command(o.program, programArg(path))
	if err := cmd.Start(); err != nil {
		return cmderr.IO(err, "start "+o.program+" for", path)
	}
	pid := cmd.Process.Pid

	// nobody waits for the opener, but it still has to be reaped.
	go func() {
		err := cmd.Wait()
		o.logger.Debug("opener exited", "program", o.program, "path", path, "pid", pid, "error", err)
	}()
	return nil
}

// programArg anchors relative paths to the working directory, so names like
// "-h" are not read as options by the opener.
func programArg(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return "." + string(filepath.Separator) + filepath.Clean(path)
}
