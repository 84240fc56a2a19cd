package main

import (
	"errors"
	"fmt"

	"github.com/matsen/notekeep/internal/export"
	"github.com/matsen/notekeep/internal/license"
	"github.com/matsen/notekeep/internal/storage"
)

// usageError reports missing or conflicting flags. Nothing has run yet
// when one is returned.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// configError wraps failures while resolving settings.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

// exitCodeFor maps an error returned by a command to a process exit code.
func exitCodeFor(err error) int {
	var (
		verr  *storage.ValidationError
		ferr  *export.UnsupportedFormatError
		ioErr *export.IOError
		lerr  *license.Error
		cerr  *configError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &lerr):
		return ExitLicenseError
	case errors.As(err, &verr), errors.As(err, &ferr):
		return ExitDataError
	case errors.As(err, &ioErr):
		return ExitIOError
	case errors.As(err, &cerr):
		return ExitConfigError
	default:
		return ExitError
	}
}
