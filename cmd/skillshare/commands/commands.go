// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete skillshare CLI command tree.
package commands

import (
	"fmt"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/cli"
	"github.com/skillshare-academy/skillshare/lib/version"
)

// Root builds and returns the complete skillshare CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "skillshare",
		Description: `SkillShare Academy: learn skills, earn credits, book mentors.

Browse the course catalog, complete chapters to earn credits, and
spend credits on one-on-one mentor sessions. Run with no command to
open the interactive terminal interface.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			coursesCommand(),
			mentorsCommand(),
			tuiCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("skillshare %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Sign in (prompts for password)",
				Command:     "skillshare login alice@example.com",
			},
			{
				Description: "Open the interactive interface",
				Command:     "skillshare tui",
			},
			{
				Description: "Browse beginner courses",
				Command:     "skillshare courses list --difficulty beginner",
			},
			{
				Description: "Complete a chapter and earn credits",
				Command:     "skillshare courses complete 3 12",
			},
			{
				Description: "See available mentor sessions",
				Command:     "skillshare mentors list",
			},
		},
	}
}
