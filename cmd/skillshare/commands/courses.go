// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/skillshare-academy/skillshare/cmd/skillshare/cli"
)

func coursesCommand() *cli.Command {
	return &cli.Command{
		Name:    "courses",
		Summary: "Browse, enroll in, and progress through courses",
		Subcommands: []*cli.Command{
			coursesListCommand(),
			coursesShowCommand(),
			coursesEnrollCommand(),
			coursesCompleteCommand(),
		},
	}
}

func coursesListCommand() *cli.Command {
	var configPath string
	var difficulty string
	var search string

	return &cli.Command{
		Name:    "list",
		Summary: "List the course catalog",
		Usage:   "skillshare courses list [flags]",
		Examples: []cli.Example{
			{
				Description: "All courses",
				Command:     "skillshare courses list",
			},
			{
				Description: "Beginner courses about Go",
				Command:     "skillshare courses list --difficulty beginner --search go",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			flagSet.StringVar(&difficulty, "difficulty", "", "filter by difficulty (beginner, intermediate, advanced)")
			flagSet.StringVar(&search, "search", "", "filter by title or description substring")
			return flagSet
		},
		Run: func(args []string) error {
			if difficulty != "" && difficulty != "beginner" && difficulty != "intermediate" && difficulty != "advanced" {
				return cli.Validation("invalid difficulty %q (expected beginner, intermediate, or advanced)", difficulty)
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

			courses, err := env.Client.Courses(ctx, env.Store.Token())
			if err != nil {
				return cli.FromAPI(err, "list courses")
			}

			query := strings.ToLower(search)
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tTITLE\tDIFFICULTY\tCHAPTERS\tCREDITS\tENROLLED")
			for _, course := range courses {
				if difficulty != "" && course.Difficulty != difficulty {
					continue
				}
				if query != "" &&
					!strings.Contains(strings.ToLower(course.Title), query) &&
					!strings.Contains(strings.ToLower(course.Description), query) {
					continue
				}
				enrolled := ""
				if course.IsEnrolled {
					enrolled = "yes"
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%d\t%d\t%s\n",
					course.ID, course.Title, course.Difficulty,
					course.ChaptersCount, course.TotalCredits, enrolled)
			}
			return writer.Flush()
		},
	}
}

func coursesShowCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "show",
		Summary: "Show a course with its chapters",
		Usage:   "skillshare courses show <course-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			courseID, err := parseID(args, "course-id")
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

			course, err := env.Client.Course(ctx, env.Store.Token(), courseID)
			if err != nil {
				return cli.FromAPI(err, "show course")
			}

			fmt.Printf("%s [%s]\n", course.Title, course.Difficulty)
			if course.Description != "" {
				fmt.Printf("\n%s\n", course.Description)
			}
			fmt.Printf("\nChapters (%d, %d credits total):\n", len(course.Chapters), course.TotalCredits)
			for _, chapter := range course.Chapters {
				marker := " "
				if chapter.IsCompleted {
					marker = "x"
				}
				fmt.Printf("  [%s] %d. %s (%d credits)\n", marker, chapter.ID, chapter.Title, chapter.Credits)
			}
			if !course.IsEnrolled {
				fmt.Printf("\nNot enrolled. Run 'skillshare courses enroll %d' to start.\n", course.ID)
			}
			return nil
		},
	}
}

func coursesEnrollCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "enroll",
		Summary: "Enroll in a course",
		Usage:   "skillshare courses enroll <course-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("enroll", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			courseID, err := parseID(args, "course-id")
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

			if err := env.Client.Enroll(ctx, env.Store.Token(), courseID); err != nil {
				return cli.FromAPI(err, "enroll")
			}
			fmt.Fprintf(os.Stderr, "Enrolled in course %d.\n", courseID)
			return nil
		},
	}
}

func coursesCompleteCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "complete",
		Summary: "Mark a chapter complete and earn its credits",
		Usage:   "skillshare courses complete <course-id> <chapter-id>",
		Examples: []cli.Example{
			{
				Description: "Complete chapter 12 of course 3",
				Command:     "skillshare courses complete 3 12",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("complete", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("course-id and chapter-id are required\n\nUsage: skillshare courses complete <course-id> <chapter-id>")
			}
			courseID, err := strconv.Atoi(args[0])
			if err != nil {
				return cli.Validation("invalid course-id %q", args[0])
			}
			chapterID, err := strconv.Atoi(args[1])
			if err != nil {
				return cli.Validation("invalid chapter-id %q", args[1])
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

			result, err := env.Client.CompleteChapter(ctx, env.Store.Token(), courseID, chapterID)
			if err != nil {
				return cli.FromAPI(err, "complete chapter")
			}

			fmt.Fprintf(os.Stderr, "Chapter complete: +%d credits\n", result.CreditsEarned)

			// Refresh so the printed balance is the post-completion one.
			if err := env.Store.RefreshUser(ctx); err == nil {
				fmt.Fprintf(os.Stderr, "Balance: %d credits\n", env.Store.User().Credits)
			}
			return nil
		},
	}
}

// parseID extracts a single positive integer argument.
func parseID(args []string, name string) (int, error) {
	if len(args) != 1 {
		return 0, cli.Validation("%s is required", name)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid %s %q", name, args[0])
	}
	return id, nil
}
