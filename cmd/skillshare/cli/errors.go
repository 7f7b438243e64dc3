// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/skillshare-academy/skillshare/api"
)

// ErrorCategory classifies command errors so that scripts can make
// programmatic decisions from the exit code without parsing error
// message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required arguments, wrong argument count, unparseable
	// values. Exit code 2.
	CategoryValidation ErrorCategory = "validation"

	// CategoryAuth indicates the command requires a signed-in session
	// and there is none, or the saved session was rejected. Exit code 3.
	CategoryAuth ErrorCategory = "auth"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown course ID, missing mentor session. Exit code 4.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the operation was refused: not
	// enrolled, insufficient credits. Exit code 5.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with current
	// state: already enrolled, chapter already completed, session
	// already booked. Exit code 6.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryInternal indicates an unexpected error: network failure,
	// backend fault, I/O error. Exit code 1.
	CategoryInternal ErrorCategory = "internal"
)

// exitCodes maps categories to process exit codes. Zero means "use the
// default" (handled by ExitCode).
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryAuth:       3,
	CategoryNotFound:   4,
	CategoryForbidden:  5,
	CategoryConflict:   6,
	CategoryInternal:   1,
}

// CommandError is a categorized error returned by CLI commands. It
// wraps an inner error, preserving the chain for errors.Is/As while
// adding the category that determines the exit code.
type CommandError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying error message. The category is not
// included in the string; it travels via the exit code.
func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for this error's category. main
// checks for this interface on returned errors.
func (e *CommandError) ExitCode() int {
	if code, ok := exitCodes[e.Category]; ok {
		return code
	}
	return 1
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Auth creates an auth error: no usable session.
func Auth(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryAuth, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the backend refused the operation.
func Forbidden(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with current state.
func Conflict(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromAPI converts an API error into a categorized command error with
// the backend's message, using the status code to pick the category.
// Network failures and other non-status errors become internal errors.
func FromAPI(err error, operation string) *CommandError {
	message := api.ErrorMessage(err)
	switch {
	case api.IsUnauthorized(err):
		return Auth("%s: %s (run 'skillshare login')", operation, message)
	case api.IsNotFound(err):
		return NotFound("%s: %s", operation, message)
	case api.IsForbidden(err):
		return Forbidden("%s: %s", operation, message)
	case api.IsConflict(err), api.IsDuplicate(err):
		return Conflict("%s: %s", operation, message)
	case api.IsValidation(err):
		return Validation("%s: %s", operation, message)
	default:
		return Internal("%s: %w", operation, err)
	}
}
