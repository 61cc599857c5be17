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

// NewDeleteCmd creates a new delete command
func NewDeleteCmd(o *opts.RootOpts) *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a file or directory if it exists",
		Long:  `Delete removes <path> relative to the root. With --dir the path is a directory and is removed with everything below it. A missing path is not an error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "delete").Logger().WithContext(cmd.Context())

			return o.Run(ctx, o.Root, func(ctx context.Context, p *operation.Project) error {
				if dir {
					return p.DeleteDirectory(ctx, args[0])
				}
				return p.DeleteFile(ctx, args[0])
			})
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, "delete a directory recursively")
	return cmd
}
