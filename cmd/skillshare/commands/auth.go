// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/cli"
	"github.com/skillshare-academy/skillshare/session"
)

// loginCommand authenticates against the backend and saves the session
// token locally. Subsequent commands (courses, mentors, tui) use the
// saved session transparently.
func loginCommand() *cli.Command {
	var configPath string
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Sign in and save the session locally",
		Description: `Sign in to SkillShare Academy and save the session locally.

After login, commands like "skillshare courses" use the saved session
transparently. The session file is stored at
~/.config/skillshare/session.json (or $SKILLSHARE_SESSION_FILE if set)
with mode 0600, since it contains an access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "skillshare login <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Sign in interactively",
				Command:     "skillshare login alice@example.com",
			},
			{
				Description: "Sign in with password from a file",
				Command:     "skillshare login alice@example.com --password-file ~/.skillshare-pw",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&passwordFile, "password-file", "", "path to file containing password, or - to prompt")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return cli.Validation("email is required\n\nUsage: skillshare login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := cli.ReadPassword(passwordFile)
			if err != nil {
				return err
			}

			env, err := cli.LoadEnvironment(configPath)
			if err != nil {
				return err
			}

			ctx, cancel := env.CommandContext()
			defer cancel()

			if err := env.Store.Initialize(ctx); err != nil {
				return cli.Internal("restore session: %w", err)
			}
			if err := env.Store.Login(ctx, email, password); err != nil {
				if errors.Is(err, session.ErrInvalidCredentials) {
					return cli.Auth("invalid email or password")
				}
				return cli.FromAPI(err, "login")
			}

			user := env.Store.User()
			fmt.Fprintf(os.Stderr, "Signed in as %s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(os.Stderr, "Credits: %d\n", user.Credits)
			return nil
		},
	}
}

// registerCommand creates a new account. If the backend issues a token
// on registration the session is saved immediately; otherwise the user
// is told to sign in.
func registerCommand() *cli.Command {
	var configPath string
	var passwordFile string

	return &cli.Command{
		Name:    "register",
		Summary: "Create a new account",
		Usage:   "skillshare register <name> <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create an account (prompts for password)",
				Command:     "skillshare register \"Alice Chen\" alice@example.com",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&passwordFile, "password-file", "", "path to file containing password, or - to prompt")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("name and email are required\n\nUsage: skillshare register <name> <email> [flags]")
			}
			name, email := args[0], args[1]
			if len(args) > 2 {
				return cli.Validation("unexpected argument: %s", args[2])
			}

			password, err := cli.ReadPassword(passwordFile)
			if err != nil {
				return err
			}
			if len(password) < 6 {
				return cli.Validation("password must be at least 6 characters")
			}

			env, err := cli.LoadEnvironment(configPath)
			if err != nil {
				return err
			}

			ctx, cancel := env.CommandContext()
			defer cancel()

			if err := env.Store.Initialize(ctx); err != nil {
				return cli.Internal("restore session: %w", err)
			}
			authenticated, err := env.Store.Register(ctx, name, email, password)
			if err != nil {
				if errors.Is(err, session.ErrAccountExists) {
					return cli.Conflict("an account with this email already exists")
				}
				return cli.FromAPI(err, "register")
			}

			if authenticated {
				fmt.Fprintf(os.Stderr, "Account created; signed in as %s\n", email)
			} else {
				fmt.Fprintf(os.Stderr, "Account created. Run 'skillshare login %s' to sign in.\n", email)
			}
			return nil
		},
	}
}

// logoutCommand ends the session. The local token is removed even if
// the backend cannot be reached.
func logoutCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "logout",
		Summary: "Sign out and remove the saved session",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("logout", pflag.ContinueOnError)
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

			ctx, cancel := env.CommandContext()
			defer cancel()

			if err := env.Store.Initialize(ctx); err != nil {
				return cli.Internal("restore session: %w", err)
			}
			env.Store.Logout(ctx)
			fmt.Fprintln(os.Stderr, "Signed out.")
			return nil
		},
	}
}

// whoamiCommand prints the current session's profile.
func whoamiCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the signed-in user and credit balance",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
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

			user := env.Store.User()
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			fmt.Printf("Credits: %d\n", user.Credits)
			fmt.Printf("Enrolled courses: %d\n", user.Stats.EnrolledCourses)
			fmt.Printf("Completed chapters: %d\n", user.Stats.CompletedChapters)
			fmt.Printf("Upcoming bookings: %d\n", user.Stats.UpcomingBookings)
			return nil
		},
	}
}
