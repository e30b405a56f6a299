// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"os"
	"sync"
)

// Op names a window operation, used to inject failures in MemoryWindow.
type Op string

const (
	OpSetClosable   Op = "set_closable"
	OpIsMaximized   Op = "is_maximized"
	OpMaximize      Op = "maximize"
	OpUnmaximize    Op = "unmaximize"
	OpIsFullscreen  Op = "is_fullscreen"
	OpSetFullscreen Op = "set_fullscreen"
	OpUnminimize    Op = "unminimize"
	OpShow          Op = "show"
	OpSetFocus      Op = "set_focus"
)

// State is the observable state of a MemoryWindow.
type State struct {
	Closable   bool
	Maximized  bool
	Fullscreen bool
	Minimized  bool
	Visible    bool
	Focused    bool
}

// NormalState is the state of a freshly created, visible window.
var NormalState = State{Closable: true, Visible: true}

// MemoryRuntime is a Runtime that keeps windows in memory. It backs the
// headless bridge and the tests.
type MemoryRuntime struct {
	exit    func(int)
	windows map[string]*MemoryWindow
	mtx     sync.RWMutex
}

// NewMemoryRuntime creates an empty runtime. Exit calls exitFunc, or
// os.Exit when exitFunc is nil.
func NewMemoryRuntime(exitFunc func(int)) *MemoryRuntime {
	if exitFunc == nil {
		exitFunc = os.Exit
	}
	return &MemoryRuntime{exit: exitFunc, windows: make(map[string]*MemoryWindow)}
}

// AddWindow creates (or replaces) the window with the given label.
func (r *MemoryRuntime) AddWindow(label string, state State) *MemoryWindow {
	w := &MemoryWindow{state: state, failures: make(map[Op]error)}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.windows[label] = w
	return w
}

// RemoveWindow removes the window with the given label, as if the user
// closed it.
func (r *MemoryRuntime) RemoveWindow(label string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.windows, label)
}

func (r *MemoryRuntime) Window(label string) (Window, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	w, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (r *MemoryRuntime) Exit(code int) {
	r.exit(code)
}

// MemoryWindow is a Window whose state lives in memory.
type MemoryWindow struct {
	state    State
	failures map[Op]error
	mtx      sync.Mutex
}

// State returns a snapshot of the window state.
func (w *MemoryWindow) State() State {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.state
}

// FailOn makes every subsequent call to op return err. A nil err clears
// the failure.
func (w *MemoryWindow) FailOn(op Op, err error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if err == nil {
		delete(w.failures, op)
		return
	}
	w.failures[op] = err
}

func (w *MemoryWindow) update(op Op, fn func(*State)) error {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if err := w.failures[op]; err != nil {
		return err
	}
	fn(&w.state)
	return nil
}

func (w *MemoryWindow) query(op Op, fn func(State) bool) (bool, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if err := w.failures[op]; err != nil {
		return false, err
	}
	return fn(w.state), nil
}

func (w *MemoryWindow) SetClosable(closable bool) error {
	return w.update(OpSetClosable, func(s *State) { s.Closable = closable })
}

func (w *MemoryWindow) IsMaximized() (bool, error) {
	return w.query(OpIsMaximized, func(s State) bool { return s.Maximized })
}

func (w *MemoryWindow) Maximize() error {
	return w.update(OpMaximize, func(s *State) { s.Maximized = true })
}

func (w *MemoryWindow) Unmaximize() error {
	return w.update(OpUnmaximize, func(s *State) { s.Maximized = false })
}

func (w *MemoryWindow) IsFullscreen() (bool, error) {
	return w.query(OpIsFullscreen, func(s State) bool { return s.Fullscreen })
}

func (w *MemoryWindow) SetFullscreen(fullscreen bool) error {
	return w.update(OpSetFullscreen, func(s *State) { s.Fullscreen = fullscreen })
}

func (w *MemoryWindow) Unminimize() error {
	return w.update(OpUnminimize, func(s *State) { s.Minimized = false })
}

func (w *MemoryWindow) Show() error {
	return w.update(OpShow, func(s *State) { s.Visible = true })
}

func (w *MemoryWindow) SetFocus() error {
	return w.update(OpSetFocus, func(s *State) { s.Focused = true })
}
