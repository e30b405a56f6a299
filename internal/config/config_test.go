// Copyright 2019 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fsouza/slognil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shellbridge/shellbridge/bridge"
	"github.com/shellbridge/shellbridge/window"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		envVars        map[string]string
		expectedConfig Config
		expectErr      bool
	}{
		{
			name: "all parameters",
			args: []string{
				"-host", "0.0.0.0",
				"-port", "4000",
				"-allowed-origins", "http://localhost:1420, tauri://localhost",
				"-addr-file", "/run/shellbridge.addr",
				"-opener", "nautilus",
				"-window", "minimized",
				"-log-level", "warn",
			},
			expectedConfig: Config{
				Host:           "0.0.0.0",
				Port:           4000,
				AddrFile:       "/run/shellbridge.addr",
				LogLevel:       slog.LevelWarn,
				allowedOrigins: []string{"http://localhost:1420", "tauri://localhost"},
				opener:         "nautilus",
				window:         "minimized",
			},
		},
		{
			name: "default parameters",
			expectedConfig: Config{
				Host:     "127.0.0.1",
				Port:     0,
				LogLevel: slog.LevelInfo,
				window:   "normal",
			},
		},
		{
			name: "environment variables",
			envVars: map[string]string{
				"SHELLBRIDGE_HOST":            "localhost",
				"SHELLBRIDGE_PORT":            "4321",
				"SHELLBRIDGE_ALLOWED_ORIGINS": "*",
				"SHELLBRIDGE_ADDR_FILE":       "/tmp/bridge.addr",
				"SHELLBRIDGE_OPENER":          "thunar",
				"SHELLBRIDGE_WINDOW":          "none",
				"SHELLBRIDGE_LOG_LEVEL":       "debug",
			},
			expectedConfig: Config{
				Host:           "localhost",
				Port:           4321,
				AddrFile:       "/tmp/bridge.addr",
				LogLevel:       slog.LevelDebug,
				allowedOrigins: []string{"*"},
				opener:         "thunar",
				window:         "none",
			},
		},
		{
			name: "flags override environment variables",
			args: []string{"-port", "5000", "-window", "normal"},
			envVars: map[string]string{
				"SHELLBRIDGE_PORT":   "4321",
				"SHELLBRIDGE_WINDOW": "none",
			},
			expectedConfig: Config{
				Host:     "127.0.0.1",
				Port:     5000,
				LogLevel: slog.LevelInfo,
				window:   "normal",
			},
		},
		{
			name:      "invalid port environment variable",
			envVars:   map[string]string{"SHELLBRIDGE_PORT": "not-a-number"},
			expectErr: true,
		},
		{
			name:      "port too high",
			args:      []string{"-port", "65536"},
			expectErr: true,
		},
		{
			name:      "invalid window",
			args:      []string{"-window", "maximized"},
			expectErr: true,
		},
		{
			name:      "invalid log level",
			args:      []string{"-log-level", "verbose"},
			expectErr: true,
		},
		{
			name:      "invalid origin",
			args:      []string{"-allowed-origins", "http://localhost:1420,not an origin"},
			expectErr: true,
		},
		{
			name:      "empty host",
			args:      []string{"-host", ""},
			expectErr: true,
		},
		{
			name:      "unknown flag",
			args:      []string{"-scheme", "https"},
			expectErr: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.envVars {
				t.Setenv(k, v)
			}
			cfg, err := Load(test.args)
			if err != nil && !test.expectErr {
				t.Fatalf("unexpected non-nil error: %v", err)
			} else if err == nil && test.expectErr {
				t.Fatal("unexpected <nil> error")
			}
			if test.expectErr {
				return
			}
			if diff := cmp.Diff(cfg, test.expectedConfig, cmp.AllowUnexported(Config{})); diff != "" {
				t.Errorf("wrong config returned\nwant %+v\ngot  %+v\ndiff: %v", test.expectedConfig, cfg, diff)
			}
		})
	}
}

func TestNewRuntime(t *testing.T) {
	t.Parallel()
	minimized := window.NormalState
	minimized.Minimized = true
	minimized.Visible = false

	tests := []struct {
		name          string
		window        string
		expectWindow  bool
		expectedState window.State
	}{
		{"normal", WindowNormal, true, window.NormalState},
		{"minimized", WindowMinimized, true, minimized},
		{"none", WindowNone, false, window.State{}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cfg := Config{window: test.window}
			rt := cfg.NewRuntime(func(int) {})
			w, ok := rt.Window(window.MainLabel)
			if ok != test.expectWindow {
				t.Fatalf("wrong main window presence\nwant %t\ngot  %t", test.expectWindow, ok)
			}
			if !ok {
				return
			}
			state := w.(*window.MemoryWindow).State()
			if diff := cmp.Diff(test.expectedState, state); diff != "" {
				t.Errorf("wrong initial state\ndiff: %s", diff)
			}
		})
	}
}

func TestToBridgeOptions(t *testing.T) {
	t.Parallel()
	rt := window.NewMemoryRuntime(func(int) {})
	logger := slognil.NewLogger()
	cfg := Config{
		Host:           "127.0.0.1",
		Port:           4000,
		allowedOrigins: []string{"http://localhost:1420"},
		opener:         "nautilus",
	}
	expected := bridge.Options{
		Host:           "127.0.0.1",
		Port:           4000,
		AllowedOrigins: []string{"http://localhost:1420"},
		OpenerProgram:  "nautilus",
		Runtime:        rt,
		Logger:         logger,
	}
	opts := cfg.ToBridgeOptions(logger, rt)
	ignore := cmpopts.IgnoreFields(bridge.Options{}, "Writer", "Runtime", "Logger")
	if diff := cmp.Diff(expected, opts, ignore, cmpopts.IgnoreUnexported(bridge.Options{})); diff != "" {
		t.Errorf("wrong set of options returned\nwant %#v\ngot  %#v\ndiff: %v", expected, opts, diff)
	}
	if opts.Runtime != rt {
		t.Error("options don't carry the given runtime")
	}
	if opts.Writer == nil {
		t.Error("options don't carry an access log writer")
	}
}

func TestSlogWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w := &slogWriter{logger: logger, level: slog.LevelInfo}

	input := "line one\nline two\n"
	n, err := w.Write([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(input) {
		t.Errorf("wrong number of bytes written\nwant %d\ngot  %d", len(input), n)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrong number of records\nwant 2\ngot  %d: %q", len(lines), buf.String())
	}
	for i, expected := range []string{`msg="line one"`, `msg="line two"`} {
		if !strings.Contains(lines[i], expected) || !strings.Contains(lines[i], "source=access") {
			t.Errorf("wrong record %d: %q", i, lines[i])
		}
	}
}
