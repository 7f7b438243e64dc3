// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// skillshare is the SkillShare Academy terminal client: course
// browsing, chapter completion, and mentor session booking from the
// command line, plus a full-screen interactive interface.
package main

import (
	"fmt"
	"os"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/commands"
)

func main() {
	if err := run(); err != nil {
		// Categorized command errors carry their own exit code.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	// Bare invocation opens the interactive interface.
	if len(args) == 0 {
		args = []string{"tui"}
	}

	return commands.Root().Execute(args)
}
