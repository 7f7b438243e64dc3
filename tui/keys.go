// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the SkillShare TUI.
type KeyMap struct {
	// Navigation within lists.
	Up   key.Binding
	Down key.Binding

	// Page navigation.
	Select  key.Binding // Open the highlighted item.
	Back    key.Binding // Return to the previous page.
	Courses key.Binding // Jump to the course catalog.
	Mentors key.Binding // Jump to mentor sessions.

	// Actions.
	Enroll  key.Binding // Enroll in the highlighted course.
	Book    key.Binding // Book the highlighted mentor session.
	Refresh key.Binding // Reload the current page's data.
	Filter  key.Binding // Focus the course search input.
	Cycle   key.Binding // Cycle the difficulty filter.

	Logout key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Courses: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "courses"),
	),
	Mentors: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mentors"),
	),
	Enroll: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "enroll"),
	),
	Book: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "book"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "difficulty"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "log out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
