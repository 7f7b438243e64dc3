// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive SkillShare Academy terminal
// interface: a navigation stack of pages (dashboard, course catalog,
// course detail, mentor sessions) over a bubbletea event loop.
//
// Session state lives in the session.Store; the store's watcher feeds
// SessionChangedMsg into the program loop, and a route guard
// re-evaluates the visible page on every transition. Pages that
// require authentication are replaced by the login page the moment the
// session ends, and held behind a spinner while a persisted session is
// still being restored at startup.
package tui
