// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileattr

import (
	"golang.org/x/sys/windows"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// windowsAttributes flips FILE_ATTRIBUTE_READONLY and leaves every other
// attribute (hidden, system, archive...) as it was.
type windowsAttributes struct{}

func newPlatformAttributes() Attributes {
	return windowsAttributes{}
}

func (windowsAttributes) IsReadonly(path string) (bool, error) {
	if _, err := stat(path); err != nil {
		return false, err
	}
	attrs, err := getFileAttributes(path)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY != 0, nil
}

func (windowsAttributes) SetReadonly(path string, readonly bool) error {
	if _, err := stat(path); err != nil {
		return err
	}
	attrs, err := getFileAttributes(path)
	if err != nil {
		return err
	}
	newAttrs := attrs &^ windows.FILE_ATTRIBUTE_READONLY
	if readonly {
		newAttrs |= windows.FILE_ATTRIBUTE_READONLY
	}
	if newAttrs == attrs {
		return nil
	}
	if newAttrs == 0 {
		newAttrs = windows.FILE_ATTRIBUTE_NORMAL
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return cmderr.IO(err, "encode", path)
	}
	if err := windows.SetFileAttributes(p, newAttrs); err != nil {
		return cmderr.IO(err, "set attributes of", path)
	}
	return nil
}

func getFileAttributes(path string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, cmderr.IO(err, "encode", path)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, cmderr.IO(err, "get attributes of", path)
	}
	return attrs, nil
}
