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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/cmd/scaffoldrc/opts"
	"github.com/walteh/scaffoldrc/pkg/comment"
	"github.com/walteh/scaffoldrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewEditCommentCmd creates a new edit-comment command
func NewEditCommentCmd(o *opts.RootOpts) *cobra.Command {
	var (
		mode  string
		scope opts.Scope
	)

	cmd := &cobra.Command{
		Use:   "edit-comment <name>",
		Short: "Keep, uncomment or delete a marked comment block",
		Long: `Edit-comment rewrites the block called <name>, delimited by
"$Start-<name>$" and "$End-<name>$" markers written in the file's comment syntax:

	// $Start-Https$
	// app.UseHttpsRedirection();
	// $End-Https$

The markers are always removed. --mode decides what happens to the lines between them:
keep leaves them as they are, uncomment strips one layer of comment, delete drops them.
Files whose extension has no known comment syntax are skipped.

Supported extensions: ` + strings.Join(comment.Extensions(), " "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "edit-comment").Logger().WithContext(cmd.Context())

			m, err := comment.ParseMode(mode)
			if err != nil {
				return errors.Errorf("parsing --mode: %w", err)
			}

			name := args[0]
			return o.Run(ctx, o.Root, func(ctx context.Context, p *operation.Project) error {
				if scope.File != "" {
					return p.EditCommentInFile(ctx, name, m, scope.File)
				}
				return p.EditCommentByPattern(ctx, name, m, scope.Pattern)
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "keep, uncomment or delete")
	_ = cmd.MarkFlagRequired("mode")
	scope.AddFlags(cmd)

	return cmd
}
