// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmderr defines the errors returned by shellbridge commands.
//
// Errors carry a code from github.com/jmgilman/go/errors so the bridge can
// pick a transport status, but callers across the process boundary only
// ever see the human-readable message.
package cmderr

import (
	stderrors "errors"
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// NotFound reports that the file or folder at path does not exist. kind is
// the noun used in the message, e.g. "file" or "folder".
func NotFound(kind, path string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeNotFound, "%s does not exist: %s", kind, path),
		"path", path,
	)
}

// IO wraps a failed metadata or process call on path. Permission failures
// are tagged as forbidden, everything else as internal.
func IO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	code := errors.CodeInternal
	if stderrors.Is(err, fs.ErrPermission) {
		code = errors.CodeForbidden
	}
	return errors.WithContext(errors.Wrapf(err, code, "%s %s", op, path), "path", path)
}

// Window wraps an error reported by the windowing runtime while running op
// on the window identified by label.
func Window(err error, op, label string) error {
	if err == nil {
		return nil
	}
	return errors.WithContext(errors.Wrapf(err, errors.CodeInternal, "%s window %q", op, label), "window", label)
}

// Unavailable reports a capability that does not exist on this platform.
func Unavailable(format string, args ...any) error {
	return errors.Newf(errors.CodeUnavailable, format, args...)
}

// Forbidden reports a caller that is not allowed to run commands.
func Forbidden(format string, args ...any) error {
	return errors.Newf(errors.CodeForbidden, format, args...)
}

// InvalidInput reports a malformed command invocation.
func InvalidInput(err error, format string, args ...any) error {
	if err == nil {
		return errors.Newf(errors.CodeInvalidInput, format, args...)
	}
	return errors.Wrapf(err, errors.CodeInvalidInput, format, args...)
}

// Code returns the error code of err, errors.CodeUnknown for plain errors.
func Code(err error) errors.ErrorCode {
	return errors.GetCode(err)
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return Code(err) == errors.CodeNotFound
}

// Message renders err the way it is shown to the front end: the message
// followed by the cause, without the code prefix.
func Message(err error) string {
	var perr errors.PlatformError
	if !stderrors.As(err, &perr) {
		return err.Error()
	}
	if cause := perr.Unwrap(); cause != nil {
		return perr.Message() + ": " + Message(cause)
	}
	return perr.Message()
}

// Readable returns err with Error rendered by Message. The original error is
// still reachable through errors.Is, errors.As and Code.
func Readable(err error) error {
	if err == nil {
		return nil
	}
	return &readableError{err: err}
}

type readableError struct {
	err error
}

func (e *readableError) Error() string {
	return Message(e.err)
}

func (e *readableError) Unwrap() error {
	return e.err
}
