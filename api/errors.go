// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the backend. Callers use
// errors.As to extract it and branch on the status code, or the
// Is* helpers below for the common cases:
//
//	if api.IsForbidden(err) { // already enrolled / already completed
//	    ...
//	}
//
// A network-level failure is never an *Error — it stays a plain
// wrapped transport error, so "the server said no" and "the server
// was unreachable" remain distinguishable.
type Error struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Message is the backend's "message" field when the error body
	// parsed as JSON, or the raw body text otherwise. May be empty.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api: backend returned %d: %s", e.StatusCode, e.Message)
}

// newError builds an *Error from a non-2xx response. The backend's
// error bodies carry a "message" field; bodies that are not JSON (or
// JSON without a message) fall back to the raw text so diagnostics
// are never silently dropped.
func newError(statusCode int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &Error{StatusCode: statusCode, Message: payload.Message}
	}
	return &Error{StatusCode: statusCode, Message: string(body)}
}

// statusIs reports whether err is a *Error with the given status code.
func statusIs(err error, statusCode int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsUnauthorized reports whether err is a 401 response: the token is
// missing, invalid, or revoked, or credentials were wrong.
func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 response. The backend uses
// 403 for "already done" conditions: already enrolled, chapter already
// completed, insufficient credit on booking.
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports whether err is a 404 response: the course,
// chapter, or mentor session no longer exists.
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }

// IsConflict reports whether err is a 409 response: a booking raced
// with another student and lost.
func IsConflict(err error) bool { return statusIs(err, http.StatusConflict) }

// IsValidation reports whether err is a 422 response. The Message
// field carries the backend's validation text and should be shown to
// the user verbatim.
func IsValidation(err error) bool { return statusIs(err, http.StatusUnprocessableEntity) }

// IsDuplicate reports whether err is a 400 response. Registration uses
// 400 for duplicate accounts.
func IsDuplicate(err error) bool { return statusIs(err, http.StatusBadRequest) }

// ErrorMessage returns the backend message carried by err, or the
// empty string when err is not a *Error or has no message.
func ErrorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
