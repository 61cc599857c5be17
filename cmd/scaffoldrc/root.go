// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/cmd/scaffoldrc/commands"
	"github.com/walteh/scaffoldrc/cmd/scaffoldrc/opts"
	"github.com/walteh/scaffoldrc/pkg/log"
)

// newRootCmd creates the root command; user-facing output goes to console
func newRootCmd(console io.Writer) (*cobra.Command, *opts.RootOpts) {
	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "scaffoldrc",
		Short: "Post-process a freshly generated project",
		Long: `scaffoldrc finishes a project generated from a template: it drops files and
directories the user opted out of, activates or removes marked comment blocks,
and rewrites text with literal or regex replacements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := setupLogging(ro.Debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))

			level := zerolog.WarnLevel
			if ro.Debug {
				level = zerolog.DebugLevel
			}
			ro.Logger = log.New(console, level)
		},
	}

	addRootFlags(rootCmd, ro)

	rootCmd.AddCommand(
		commands.NewApplyCmd(ro),
		commands.NewEditCommentCmd(ro),
		commands.NewReplaceCmd(ro),
		commands.NewRegexReplaceCmd(ro),
		commands.NewDeleteCmd(ro),
		newVersionCmd(console),
	)

	rootCmd.SetOut(console)
	rootCmd.SetErr(console)

	return rootCmd, ro
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.Root, "root", "r", ".", "project root directory")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&ro.DryRun, "dry-run", false, "show what would change without writing")
	cmd.PersistentFlags().StringVar(&ro.LineEndings, "line-endings", "auto", "line endings for comment edits: auto keeps each file's own, lf or crlf")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}

func newVersionCmd(console io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(console, FormatVersion())
		},
	}
}
