// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shellbridge/shellbridge/internal/cmderr"
	"github.com/shellbridge/shellbridge/window"
)

// Names of the commands understood by Invoke.
const (
	CommandSetFileReadonly  = "set_file_readonly"
	CommandIsFileReadonly   = "is_file_readonly"
	CommandOpenFolder       = "open_folder"
	CommandCloseWindow      = "close_window"
	CommandAllowClose       = "allow_close"
	CommandPreventClose     = "prevent_close"
	CommandToggleMaximize   = "toggle_maximize"
	CommandMaximizeWindow   = "maximize_window"
	CommandRestoreWindow    = "restore_window"
	CommandToggleFullscreen = "toggle_fullscreen"
)

// required only checks that the key was sent: an empty path is a valid
// argument that refers to a file that doesn't exist.
type fileReadonlyArgs struct {
	FilePath *string `json:"filePath" validate:"required"`
	Readonly *bool   `json:"readonly" validate:"required"`
}

type filePathArgs struct {
	FilePath *string `json:"filePath" validate:"required"`
}

type folderPathArgs struct {
	FolderPath *string `json:"folderPath" validate:"required"`
}

type closeWindowArgs struct {
	Force *bool `json:"force" validate:"required"`
}

type noArgs struct{}

var validate = validator.New(validator.WithRequiredStructEnabled())

type command func(ctx context.Context, args json.RawMessage) (any, error)

// withArgs decodes and validates the JSON arguments of a command before
// calling fn.
func withArgs[T any](name string, fn func(T) (any, error)) command {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		var args T
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, cmderr.InvalidInput(err, "invalid arguments for %s", name)
			}
		}
		if err := validate.Struct(args); err != nil {
			return nil, cmderr.InvalidInput(err, "invalid arguments for %s", name)
		}
		return fn(args)
	}
}

func noResult(err error) (any, error) {
	return nil, err
}

func (s *Server) buildCommands() map[string]command {
	windowCommand := func(name string, fn func(window.Runtime) error) command {
		return withArgs(name, func(noArgs) (any, error) { return noResult(fn(s.runtime)) })
	}
	return map[string]command{
		CommandSetFileReadonly: withArgs(CommandSetFileReadonly, func(args fileReadonlyArgs) (any, error) {
			return noResult(s.SetFileReadonly(*args.FilePath, *args.Readonly))
		}),
		CommandIsFileReadonly: withArgs(CommandIsFileReadonly, func(args filePathArgs) (any, error) {
			readonly, err := s.IsFileReadonly(*args.FilePath)
			if err != nil {
				return nil, err
			}
			return readonly, nil
		}),
		CommandOpenFolder: withArgs(CommandOpenFolder, func(args folderPathArgs) (any, error) {
			return noResult(s.OpenFolder(*args.FolderPath))
		}),
		CommandCloseWindow: withArgs(CommandCloseWindow, func(args closeWindowArgs) (any, error) {
			return noResult(s.CloseWindow(*args.Force))
		}),
		CommandAllowClose:       windowCommand(CommandAllowClose, window.AllowClose),
		CommandPreventClose:     windowCommand(CommandPreventClose, window.PreventClose),
		CommandToggleMaximize:   windowCommand(CommandToggleMaximize, window.ToggleMaximize),
		CommandMaximizeWindow:   windowCommand(CommandMaximizeWindow, window.Maximize),
		CommandRestoreWindow:    windowCommand(CommandRestoreWindow, window.Restore),
		CommandToggleFullscreen: windowCommand(CommandToggleFullscreen, window.ToggleFullscreen),
	}
}

// Invoke runs the named command with its JSON encoded arguments. Commands
// without arguments accept an empty args.
//
// The result is nil for commands that don't return anything. Errors read as
// the human-readable message shown to the front end; use cmderr.Code or
// errors.Is to inspect them.
func (s *Server) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	cmd, ok := s.commands[name]
	if !ok {
		return nil, cmderr.Readable(cmderr.InvalidInput(nil, "unknown command %q", name))
	}
	result, err := cmd(ctx, args)
	if err != nil {
		s.logger.DebugContext(ctx, "command failed", "command", name, "error", err)
		return nil, cmderr.Readable(err)
	}
	return result, nil
}

// Commands returns the sorted names of the registered commands.
func (s *Server) Commands() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetFileReadonly sets the read-only attribute of the file at path.
func (s *Server) SetFileReadonly(path string, readonly bool) error {
	return s.attrs.SetReadonly(path, readonly)
}

// IsFileReadonly reports whether the file at path is read-only.
func (s *Server) IsFileReadonly(path string) (bool, error) {
	return s.attrs.IsReadonly(path)
}

// OpenFolder opens path in the platform file manager, without waiting for
// it.
func (s *Server) OpenFolder(path string) error {
	return s.opener.Open(path)
}

// CloseWindow exits the application when force is true, and does nothing
// otherwise.
func (s *Server) CloseWindow(force bool) error {
	return window.Close(s.runtime, force)
}

// AllowClose lets the user close the main window again.
func (s *Server) AllowClose() error {
	return window.AllowClose(s.runtime)
}

// PreventClose disables the close button of the main window.
func (s *Server) PreventClose() error {
	return window.PreventClose(s.runtime)
}

// ToggleMaximize maximizes the main window, or restores it when it is
// already maximized.
func (s *Server) ToggleMaximize() error {
	return window.ToggleMaximize(s.runtime)
}

// MaximizeWindow maximizes the main window.
func (s *Server) MaximizeWindow() error {
	return window.Maximize(s.runtime)
}

// RestoreWindow brings the main window back from the maximized state.
func (s *Server) RestoreWindow() error {
	return window.Restore(s.runtime)
}

// ToggleFullscreen switches the main window in or out of fullscreen.
func (s *Server) ToggleFullscreen() error {
	return window.ToggleFullscreen(s.runtime)
}
