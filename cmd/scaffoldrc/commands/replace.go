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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/cmd/scaffoldrc/opts"
	"github.com/walteh/scaffoldrc/pkg/operation"
)

// NewReplaceCmd creates a new replace command
func NewReplaceCmd(o *opts.RootOpts) *cobra.Command {
	var scope opts.Scope

	cmd := &cobra.Command{
		Use:   "replace <old> <new>",
		Short: "Replace literal text",
		Long:  `Replace substitutes every occurrence of <old> with <new>, in every file or only those selected by --file or --pattern.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "replace").Logger().WithContext(cmd.Context())

			return o.Run(ctx, o.Root, func(ctx context.Context, p *operation.Project) error {
				if scope.File != "" {
					return p.ReplaceInFile(ctx, args[0], args[1], scope.File)
				}
				return p.ReplaceByPattern(ctx, args[0], args[1], scope.Pattern)
			})
		},
	}

	scope.AddFlags(cmd)
	return cmd
}

// NewRegexReplaceCmd creates a new regex-replace command
func NewRegexReplaceCmd(o *opts.RootOpts) *cobra.Command {
	var scope opts.Scope

	cmd := &cobra.Command{
		Use:   "regex-replace <pattern> <replacement>",
		Short: "Replace text matching a regular expression",
		Long: `Regex-replace rewrites every match of <pattern> (Go regexp syntax).
<replacement> may reference capture groups as $1 or ${name}.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "regex-replace").Logger().WithContext(cmd.Context())

			return o.Run(ctx, o.Root, func(ctx context.Context, p *operation.Project) error {
				if scope.File != "" {
					return p.RegexReplaceInFile(ctx, args[0], args[1], scope.File)
				}
				return p.RegexReplaceByPattern(ctx, args[0], args[1], scope.Pattern)
			})
		},
	}

	scope.AddFlags(cmd)
	return cmd
}
