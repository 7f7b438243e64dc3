// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/cli"
	"github.com/skillshare-academy/skillshare/tui"
)

// tuiCommand opens the interactive terminal interface. Unlike the
// other commands it does not require a session up front: the TUI's
// route guard redirects to its login form when the restored session
// is absent.
func tuiCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "tui",
		Summary: "Open the interactive terminal interface",
		Usage:   "skillshare tui [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("tui", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			env, err := cli.LoadEnvironment(configPath)
			if err != nil {
				return err
			}

			err = tui.Run(tui.Options{
				Client:       env.Client,
				Store:        env.Store,
				PollInterval: env.Config.Mentors.PollInterval,
			})
			if err != nil {
				return cli.Internal("terminal interface: %w", err)
			}
			return nil
		},
	}
}
