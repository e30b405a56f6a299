// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileattr reads and toggles the read-only attribute of files.
//
// The meaning of "read-only" is platform specific: on Windows it is the
// FILE_ATTRIBUTE_READONLY flag, on every other platform it is the absence
// of write permission bits. New returns the implementation for the platform
// the binary was built for.
package fileattr

import (
	"errors"
	"io/fs"
	"os"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// Attributes is the file attribute capability used by the command layer.
type Attributes interface {
	// SetReadonly makes the read-only attribute of the file at path equal
	// to readonly. Calling it with the current value is a no-op.
	SetReadonly(path string, readonly bool) error

	// IsReadonly returns the current read-only attribute of the file at
	// path, as reported by the OS.
	IsReadonly(path string) (bool, error)
}

// New returns the Attributes implementation for the current platform.
func New() Attributes {
	return newPlatformAttributes()
}

// stat checks that path exists and returns its info. It's called on every
// operation, nothing about the file is remembered between calls.
func stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cmderr.NotFound("file", path)
	}
	if err != nil {
		return nil, cmderr.IO(err, "stat", path)
	}
	return info, nil
}
