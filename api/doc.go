// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the SkillShare Academy REST
// backend. It builds authenticated JSON requests against a fixed
// origin (all paths live under /api/v1), attaches the session token
// via the X-API-TOKEN header, and converts non-2xx responses into
// structured *Error values that callers inspect by status code.
//
// The client performs no status-code interpretation beyond error
// construction: whether a 403 means "already enrolled" or "already
// completed" is the caller's business. Network-level failures (DNS,
// connection refused, timeout) surface as ordinary wrapped transport
// errors, never as *Error — callers distinguish the two with
// errors.As.
//
// There are no retries, no backoff, and no caching anywhere in this
// package. Every retry in the application is user-initiated.
package api
