// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction so that timer
// code can be tested deterministically. Production code injects
// Real(); tests inject Fake(initial) and drive time forward with
// Advance.
//
// The surface is intentionally small — Now, After, and NewTicker are
// all the polling code needs. Code that wants time should take a
// clock.Clock (or hold one in a struct field) instead of calling the
// time package directly.
//
// The fake clock's WaitForTimers blocks until a goroutine has
// registered a ticker or timer, which removes the race between "the
// poller started its ticker" and "the test advanced the clock" without
// resorting to time.Sleep in tests.
package clock
