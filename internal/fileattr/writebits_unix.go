// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package fileattr

import (
	"io/fs"
	"strconv"

	"github.com/pkg/xattr"
)

const writeBitsXattrKey = "user.shellbridge.writebits"

func saveWriteBits(path string, bits fs.FileMode) error {
	if !xattr.XATTR_SUPPORTED {
		return xattr.ENOATTR
	}
	return xattr.Set(path, writeBitsXattrKey, []byte(strconv.FormatUint(uint64(bits), 8)))
}

// loadWriteBits returns the write bits saved by saveWriteBits. Anything
// outside of the write bits is discarded, the attribute may have been
// written by someone else.
func loadWriteBits(path string) (fs.FileMode, bool) {
	if !xattr.XATTR_SUPPORTED {
		return 0, false
	}
	data, err := xattr.Get(path, writeBitsXattrKey)
	if err != nil {
		return 0, false
	}
	bits, err := strconv.ParseUint(string(data), 8, 32)
	if err != nil {
		return 0, false
	}
	mode := fs.FileMode(bits) & writeBits
	if mode == 0 {
		return 0, false
	}
	return mode, true
}

func removeWriteBits(path string) error {
	if !xattr.XATTR_SUPPORTED {
		return nil
	}
	return xattr.Remove(path, writeBitsXattrKey)
}
