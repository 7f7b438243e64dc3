// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/cli"
)

func mentorsCommand() *cli.Command {
	return &cli.Command{
		Name:    "mentors",
		Summary: "Browse and book mentor sessions",
		Subcommands: []*cli.Command{
			mentorsListCommand(),
			mentorsBookCommand(),
		},
	}
}

func mentorsListCommand() *cli.Command {
	var configPath string
	var availableOnly bool

	return &cli.Command{
		Name:    "list",
		Summary: "List mentor sessions",
		Usage:   "skillshare mentors list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.BoolVar(&availableOnly, "available", false, "show only bookable sessions")
			return flagSet
		},
		Run: func(args []string) error {
			env, err := cli.LoadEnvironment(configPath)
			if err != nil {
				return err
			}
			ctx, cancel := env.CommandContext()
			defer cancel()
			if err := env.RequireSession(ctx); err != nil {
				return err
			}

			sessions, err := env.Client.MentorSessions(ctx, env.Store.Token())
			if err != nil {
				return cli.FromAPI(err, "list mentor sessions")
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tMENTOR\tEXPERTISE\tLEVEL\tDATE\tMINUTES\tCREDITS\tAVAILABLE")
			for _, mentorSession := range sessions {
				if availableOnly && !mentorSession.IsAvailable {
					continue
				}
				available := ""
				if mentorSession.IsAvailable {
					available = "yes"
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
					mentorSession.ID,
					mentorSession.MentorName,
					mentorSession.Expertise,
					mentorSession.ExperienceLevel,
					mentorSession.SessionDate.Format("2006-01-02 15:04"),
					mentorSession.DurationMinutes,
					mentorSession.CreditCost,
					available)
			}
			return writer.Flush()
		},
	}
}

func mentorsBookCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "book",
		Summary: "Book a mentor session with credits",
		Usage:   "skillshare mentors book <session-id>",
		Examples: []cli.Example{
			{
				Description: "Book session 7",
				Command:     "skillshare mentors book 7",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("book", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			sessionID, err := parseID(args, "session-id")
			if err != nil {
				return err
			}

			env, err := cli.LoadEnvironment(configPath)
			if err != nil {
				return err
			}
			ctx, cancel := env.CommandContext()
			defer cancel()
			if err := env.RequireSession(ctx); err != nil {
				return err
			}

			result, err := env.Client.BookSession(ctx, env.Store.Token(), sessionID)
			if err != nil {
				return cli.FromAPI(err, "book session")
			}

			message := "Session booked."
			if result != nil && result.Message != "" {
				message = result.Message
			}
			fmt.Fprintln(os.Stderr, message)

			if err := env.Store.RefreshUser(ctx); err == nil {
				fmt.Fprintf(os.Stderr, "Balance: %d credits\n", env.Store.User().Credits)
			}
			return nil
		},
	}
}
