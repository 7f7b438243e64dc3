// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdown(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := renderMarkdown("", DefaultTheme, 80); got != "" {
			t.Errorf("expected empty output, got %q", got)
		}
	})

	t.Run("paragraph reflows at width", func(t *testing.T) {
		input := "This is a long paragraph that was hard-wrapped\nin the source text and should reflow."
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 30))

		for _, line := range strings.Split(output, "\n") {
			if width := ansi.StringWidth(line); width > 30 {
				t.Errorf("line exceeds width 30 (%d): %q", width, line)
			}
		}
		// The soft break must not survive as a mid-sentence split at
		// the original wrap point.
		if strings.Contains(output, "hard-wrapped\nin") {
			t.Error("soft line break was not reflowed")
		}
	})

	t.Run("heading and list", func(t *testing.T) {
		input := "# What you'll learn\n\n- goroutines\n- channels\n"
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 60))

		if !strings.Contains(output, "What you'll learn") {
			t.Errorf("heading missing from output:\n%s", output)
		}
		if !strings.Contains(output, "• goroutines") {
			t.Errorf("bullet missing from output:\n%s", output)
		}
	})

	t.Run("ordered list numbering", func(t *testing.T) {
		input := "1. install Go\n2. write code\n"
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 60))

		if !strings.Contains(output, "1. install Go") || !strings.Contains(output, "2. write code") {
			t.Errorf("ordered list misnumbered:\n%s", output)
		}
	})

	t.Run("fenced code block", func(t *testing.T) {
		input := "Example:\n\n```go\nfunc main() {}\n```\n"
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 60))

		if !strings.Contains(output, "func main() {}") {
			t.Errorf("code block content missing:\n%s", output)
		}
	})

	t.Run("unknown code language does not panic", func(t *testing.T) {
		input := "```nosuchlanguage\nhello\n```\n"
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 60))
		if !strings.Contains(output, "hello") {
			t.Errorf("code content missing:\n%s", output)
		}
	})

	t.Run("link shows destination", func(t *testing.T) {
		input := "See [the docs](https://example.com/docs) for more."
		output := ansi.Strip(renderMarkdown(input, DefaultTheme, 80))

		if !strings.Contains(output, "the docs") || !strings.Contains(output, "https://example.com/docs") {
			t.Errorf("link text or destination missing:\n%s", output)
		}
	})
}
