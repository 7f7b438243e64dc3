// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "skillshare",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "courses",
				Run: func(args []string) error {
					called = "courses"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"courses"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "courses" {
		t.Errorf("dispatched to %q, want %q", called, "courses")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "skillshare",
		Subcommands: []*Command{
			{
				Name: "courses",
				Subcommands: []*Command{
					{
						Name: "enroll",
						Run: func(args []string) error {
							called = "courses enroll"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"courses", "enroll", "3"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "courses enroll" {
		t.Errorf("dispatched to %q, want %q", called, "courses enroll")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "3" {
		t.Errorf("args = %v, want [3]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var difficulty string
	var positional string

	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&difficulty, "difficulty", "", "difficulty filter")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				positional = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--difficulty", "beginner", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if difficulty != "beginner" {
		t.Errorf("difficulty = %q, want %q", difficulty, "beginner")
	}
	if positional != "extra" {
		t.Errorf("positional = %q, want %q", positional, "extra")
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "skillshare",
		Subcommands: []*Command{
			{Name: "courses", Run: func(args []string) error { return nil }},
			{Name: "mentors", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"course"})
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "courses"`) {
		t.Errorf("error lacks suggestion: %v", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.String("difficulty", "", "difficulty filter")
			flagSet.String("search", "", "search filter")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--dificulty", "beginner"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--difficulty") {
		t.Errorf("error lacks flag suggestion: %v", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "skillshare",
		Subcommands: []*Command{
			{Name: "courses", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute(nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("expected subcommand-required error, got %v", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "skillshare",
		Summary: "SkillShare Academy terminal client",
		Subcommands: []*Command{
			{Name: "courses", Summary: "Browse courses"},
			{Name: "mentors", Summary: "Book mentors"},
		},
		Examples: []Example{
			{Description: "Open the TUI", Command: "skillshare tui"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{"courses", "Browse courses", "mentors", "skillshare tui", "Commands:"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"courses", "courses", 0},
		{"course", "courses", 1},
		{"mentors", "mentor", 1},
		{"enrol", "enroll", 1},
		{"kitten", "sitting", 3},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
