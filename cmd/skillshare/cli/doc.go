// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the skillshare CLI:
// a lightweight command tree with flag parsing, structured help,
// typo suggestions, and categorized errors that map to exit codes.
// Commands are assembled into a tree in cmd/skillshare/commands and
// dispatched from main.
package cli
