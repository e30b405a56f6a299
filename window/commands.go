// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"log/slog"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// Close exits the application when force is true. Without force it does
// nothing: a regular close goes through the window's close button, which
// the front end intercepts with PreventClose.
func Close(rt Runtime, force bool) error {
	if force {
		rt.Exit(0)
	}
	return nil
}

// AllowClose enables the native close button of the main window.
func AllowClose(rt Runtime) error {
	return setClosable(rt, true)
}

// PreventClose disables the native close button of the main window, so the
// front end can ask for confirmation before calling Close with force.
func PreventClose(rt Runtime) error {
	return setClosable(rt, false)
}

func setClosable(rt Runtime, closable bool) error {
	w, ok := Lookup(rt)
	if !ok {
		return nil
	}
	return cmderr.Window(w.SetClosable(closable), "set closable on", MainLabel)
}

// ToggleMaximize maximizes the main window, or restores it if it's already
// maximized.
func ToggleMaximize(rt Runtime) error {
	w, ok := Lookup(rt)
	if !ok {
		return nil
	}
	maximized, err := w.IsMaximized()
	if err != nil {
		return cmderr.Window(err, "query maximized state of", MainLabel)
	}
	if maximized {
		return cmderr.Window(w.Unmaximize(), "unmaximize", MainLabel)
	}
	return cmderr.Window(w.Maximize(), "maximize", MainLabel)
}

// Maximize maximizes the main window.
func Maximize(rt Runtime) error {
	w, ok := Lookup(rt)
	if !ok {
		return nil
	}
	return cmderr.Window(w.Maximize(), "maximize", MainLabel)
}

// Restore brings the main window back to its normal size.
func Restore(rt Runtime) error {
	w, ok := Lookup(rt)
	if !ok {
		return nil
	}
	return cmderr.Window(w.Unmaximize(), "unmaximize", MainLabel)
}

// ToggleFullscreen flips the fullscreen state of the main window.
func ToggleFullscreen(rt Runtime) error {
	w, ok := Lookup(rt)
	if !ok {
		return nil
	}
	fullscreen, err := w.IsFullscreen()
	if err != nil {
		return cmderr.Window(err, "query fullscreen state of", MainLabel)
	}
	return cmderr.Window(w.SetFullscreen(!fullscreen), "set fullscreen on", MainLabel)
}

// NormalizeStartup makes sure the main window starts visible: unminimized,
// shown and focused. It's best effort, every step is attempted and failures
// are only logged.
func NormalizeStartup(rt Runtime, logger *slog.Logger) {
	w, ok := Lookup(rt)
	if !ok {
		return
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"unminimize", w.Unminimize},
		{"show", w.Show},
		{"focus", w.SetFocus},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil && logger != nil {
			logger.Debug("ignoring startup window error", "step", step.name, "window", MainLabel, "error", err)
		}
	}
}
