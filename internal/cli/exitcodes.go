package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage that cannot be opened, unreadable files, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested file was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a snapshot file that is not valid JSON or has the wrong shape.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: an invalid config value.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code a command failed with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so that ExitCode reports code for it
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// Exitf builds an ExitCodeError from a format string
func Exitf(code int, format string, args ...any) error {
	return &ExitCodeError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by a command onto a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ec *ExitCodeError
	if errors.As(err, &ec) {
		return ec.Code
	}
	return ExitError
}
