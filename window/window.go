// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window implements the window chrome commands on top of the
// capabilities exposed by the hosting webview runtime.
//
// The main window is looked up on every call and never cached: it may not
// have been created yet, or it may have been closed since the last command.
// A missing main window is not an error, every command is a no-op that
// succeeds in that case.
package window

// MainLabel identifies the application's main window.
const MainLabel = "main"

// Window is a top-level window managed by the hosting runtime.
type Window interface {
	SetClosable(closable bool) error
	IsMaximized() (bool, error)
	Maximize() error
	Unmaximize() error
	IsFullscreen() (bool, error)
	SetFullscreen(fullscreen bool) error
	Unminimize() error
	Show() error
	SetFocus() error
}

// Runtime is the hosting webview runtime, passed explicitly to every
// command.
type Runtime interface {
	// Window returns the window with the given label, and false if no such
	// window currently exists.
	Window(label string) (Window, bool)

	// Exit terminates the application immediately, without running any
	// close handlers.
	Exit(code int)
}

// Lookup resolves the main window. It returns false when there's no main
// window, which callers must treat as success.
func Lookup(rt Runtime) (Window, bool) {
	w, ok := rt.Window(MainLabel)
	if !ok || w == nil {
		return nil, false
	}
	return w, true
}
