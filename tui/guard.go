// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/skillshare-academy/skillshare/session"

// routeDecision is the outcome of checking a page against the current
// session state.
type routeDecision int

const (
	// routeAllow renders the requested page.
	routeAllow routeDecision = iota
	// routePending holds rendering while the session is still being
	// restored. No redirect happens in this state: redirecting before
	// the persisted token has been checked would bounce a returning
	// user through the login page on every launch.
	routePending
	// routeRedirect replaces the navigation stack with the login page.
	// Replacement rather than push means backing out of login cannot
	// land on a protected page.
	routeRedirect
)

// decideRoute checks whether a page may render under the current
// session state. Pages that do not require authentication always
// render. The decision is re-evaluated on every session change, so a
// session that expires mid-use redirects on the next transition.
func decideRoute(store *session.Store, requiresAuth bool) routeDecision {
	if !requiresAuth {
		return routeAllow
	}
	if store.Loading() {
		return routePending
	}
	if !store.Authenticated() {
		return routeRedirect
	}
	return routeAllow
}
