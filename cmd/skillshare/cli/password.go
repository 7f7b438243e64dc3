// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassword reads a password for the login and register commands.
// If passwordFile is empty or "-", prompts interactively on the
// terminal with echo disabled. Otherwise, reads from the file path.
func ReadPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		return readPasswordFile(passwordFile)
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", Internal("reading password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return "", Validation("password is empty")
	}
	return string(passwordBytes), nil
}

// readPasswordFile reads a password from a file path, stripping
// trailing newlines (common with echo/printf pipelines).
func readPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Internal("reading %s: %w", path, err)
	}

	for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
		data = data[:len(data)-1]
	}

	if len(data) == 0 {
		return "", Validation("file %s is empty (after stripping trailing newlines)", path)
	}
	return string(data), nil
}
