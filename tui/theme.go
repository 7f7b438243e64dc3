// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the SkillShare terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Course difficulty badges.
	DifficultyBeginner     lipgloss.Color
	DifficultyIntermediate lipgloss.Color
	DifficultyAdvanced     lipgloss.Color

	// Chapter and booking state.
	Completed lipgloss.Color
	Pending   lipgloss.Color

	// Credits balance and earned-credit notices.
	CreditAccent lipgloss.Color

	// Transient feedback.
	NoticeText lipgloss.Color
	ErrorText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Markdown rendering.
	HeadingForeground lipgloss.Color
	CodeForeground    lipgloss.Color
	CodeBackground    lipgloss.Color
	LinkForeground    lipgloss.Color
}

// DifficultyColor returns the badge color for a course difficulty.
// Unknown values return FaintText.
func (theme Theme) DifficultyColor(difficulty string) lipgloss.Color {
	switch difficulty {
	case "beginner":
		return theme.DifficultyBeginner
	case "intermediate":
		return theme.DifficultyIntermediate
	case "advanced":
		return theme.DifficultyAdvanced
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	DifficultyBeginner:     lipgloss.Color("114"), // green
	DifficultyIntermediate: lipgloss.Color("220"), // amber
	DifficultyAdvanced:     lipgloss.Color("196"), // red

	Completed: lipgloss.Color("114"),
	Pending:   lipgloss.Color("245"),

	CreditAccent: lipgloss.Color("220"),

	NoticeText: lipgloss.Color("114"),
	ErrorText:  lipgloss.Color("196"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HeadingForeground: lipgloss.Color("75"),
	CodeForeground:    lipgloss.Color("222"),
	CodeBackground:    lipgloss.Color("236"),
	LinkForeground:    lipgloss.Color("75"),
}
