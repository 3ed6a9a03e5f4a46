// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. When run returns an ExitError, main exits with the
// given code without printing the error string; the command is
// expected to have already written its own output.
//
// This is useful where a non-zero exit is a valid outcome rather than
// an unexpected error, e.g. "chessclock --check-config" returning 1
// for a settings file that fails validation after the findings have
// been printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. Each binary's main checks for this
// interface on returned errors to distinguish "handled non-zero exit"
// from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
