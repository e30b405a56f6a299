// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shellbridge/shellbridge/bridge"
	"github.com/shellbridge/shellbridge/window"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		pairs     []string
		expected  map[string]any
		expectErr bool
	}{
		{
			name:     "no arguments",
			expected: map[string]any{},
		},
		{
			name:     "booleans and strings",
			pairs:    []string{"filePath=/tmp/a=b.txt", "readonly=true", "force=false"},
			expected: map[string]any{"filePath": "/tmp/a=b.txt", "readonly": true, "force": false},
		},
		{
			name:     "empty value",
			pairs:    []string{"filePath="},
			expected: map[string]any{"filePath": ""},
		},
		{
			name:      "missing separator",
			pairs:     []string{"readonly"},
			expectErr: true,
		},
		{
			name:      "missing key",
			pairs:     []string{"=true"},
			expectErr: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			args, err := parseArgs(test.pairs)
			if test.expectErr {
				if err == nil {
					t.Fatal("expected error, but got <nil>")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, args); diff != "" {
				t.Errorf("wrong arguments\nwant %#v\ngot  %#v\ndiff: %s", test.expected, args, diff)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()
	addrFile := filepath.Join(t.TempDir(), "bridge.addr")
	if err := os.WriteFile(addrFile, []byte("http://127.0.0.1:4000/\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	url, err := resolveURL("http://localhost:9000/", addrFile)
	if err != nil || url != "http://localhost:9000" {
		t.Errorf("flag URL not preferred: %q, %v", url, err)
	}
	url, err = resolveURL("", addrFile)
	if err != nil || url != "http://127.0.0.1:4000" {
		t.Errorf("wrong URL from address file: %q, %v", url, err)
	}
	if _, err = resolveURL("", ""); err == nil {
		t.Error("expected error without URL nor address file")
	}
	if _, err = resolveURL("", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing address file")
	}
}

func runShellctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rt := window.NewMemoryRuntime(func(int) {})
	rt.AddWindow(window.MainLabel, window.NormalState)
	server, err := bridge.NewServerWithOptions(bridge.Options{NoListener: true, Runtime: rt})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(server.HTTPHandler())
	t.Cleanup(ts.Close)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--url", ts.URL}, args...))
	err = cmd.Execute()
	return out.String(), err
}

func TestInvokeCommand(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runShellctl(t, "invoke", "is_file_readonly", "filePath="+path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "false\n" {
		t.Errorf("wrong output\nwant %q\ngot  %q", "false\n", out)
	}

	out, err = runShellctl(t, "invoke", "toggle_maximize")
	if err != nil {
		t.Fatal(err)
	}
	if out != "null\n" {
		t.Errorf("wrong output\nwant %q\ngot  %q", "null\n", out)
	}
}

func TestInvokeCommandError(t *testing.T) {
	t.Parallel()
	_, err := runShellctl(t, "invoke", "is_file_readonly", "filePath=/nonexistent/x.txt")
	if err == nil {
		t.Fatal("expected error, but got <nil>")
	}
	if expected := "file does not exist: /nonexistent/x.txt"; err.Error() != expected {
		t.Errorf("wrong error\nwant %q\ngot  %q", expected, err.Error())
	}
}

func TestListCommands(t *testing.T) {
	t.Parallel()
	out, err := runShellctl(t, "commands")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 10 {
		t.Fatalf("wrong number of commands listed: %d\n%s", len(lines), out)
	}
	if lines[0] != "allow_close" {
		t.Errorf("wrong first command\nwant %q\ngot  %q", "allow_close", lines[0])
	}
}
