// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the process-wide authentication state: the
// opaque backend token and the current user profile. The token is
// persisted to a session file under the user's config directory
// (analogous to SSH keys — log in once, then every command and view
// uses the saved session transparently); the profile lives only in
// memory and is re-fetched from the backend whenever the token
// becomes present or balances may have changed.
//
// A Store is constructed explicitly and passed down to its consumers.
// There is no package-level state: lifecycle (Initialize, Logout) is
// explicit and the Store is testable in isolation against an
// httptest backend.
//
// Invariant: the profile is never valid without the token. Any
// response indicating the backend rejected the token during
// rehydration clears both, atomically.
package session
