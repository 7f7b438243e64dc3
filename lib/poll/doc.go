// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package poll provides a fixed-interval polling primitive for views
// that re-fetch server state where no push channel exists (the
// mentor-session list). A Poller invokes its callback once immediately
// on Start and then on every interval tick until Stop.
//
// The callback lives behind a mutable cell: each tick dereferences
// the cell and calls whatever is there now, so a consumer can swap
// behavior between ticks with SetCallback without restarting the
// timer. Start while running and Stop while stopped are both no-ops,
// which makes ownership simple — a view starts its poller on entry
// and stops it on exit, and a poller that outlives its view is a
// resource leak by definition.
package poll
