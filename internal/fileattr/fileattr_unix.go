// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package fileattr

import (
	"io/fs"
	"os"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

const (
	writeBits      fs.FileMode = 0o222
	ownerWriteBit  fs.FileMode = 0o200
	chmodSupported fs.FileMode = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky
)

// posixAttributes treats a file as read-only when nobody may write to it.
//
// Making a file read-only records the write bits it had in an extended
// attribute, so making it writable again gives back exactly those bits
// instead of opening it up to group and others.
type posixAttributes struct{}

func newPlatformAttributes() Attributes {
	return posixAttributes{}
}

func (posixAttributes) IsReadonly(path string) (bool, error) {
	info, err := stat(path)
	if err != nil {
		return false, err
	}
	return isReadonlyMode(info.Mode()), nil
}

func (posixAttributes) SetReadonly(path string, readonly bool) error {
	info, err := stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode() & chmodSupported
	if isReadonlyMode(mode) == readonly {
		if !readonly {
			// bits saved before the file became writable some other way
			// don't describe it anymore.
			_ = removeWriteBits(path)
		}
		return nil
	}

	var newMode fs.FileMode
	if readonly {
		// failing to remember the bits only degrades the restore to
		// owner-write, it must not fail the command.
		_ = saveWriteBits(path, mode&writeBits)
		newMode = mode &^ writeBits
	} else {
		bits, ok := loadWriteBits(path)
		if !ok {
			bits = ownerWriteBit
		}
		newMode = mode | bits
	}

	if err := os.Chmod(path, newMode); err != nil {
		return cmderr.IO(err, "set permissions of", path)
	}
	if !readonly {
		_ = removeWriteBits(path)
	}
	return nil
}

func isReadonlyMode(mode fs.FileMode) bool {
	return mode.Perm()&writeBits == 0
}
