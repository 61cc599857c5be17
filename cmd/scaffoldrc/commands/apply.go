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
	"github.com/walteh/scaffoldrc/pkg/config"
	"github.com/walteh/scaffoldrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <recipe>",
		Short: "Apply a recipe to a generated project",
		Long: `Apply runs every step of a recipe file (.yaml, .yml, .json or .hcl) against
the project tree. It will:
1. Load and validate the recipe
2. Resolve the project root (recipe root, or --root when given)
3. Run the steps in order, stopping at the first failure
4. Print a summary of the changed files`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			recipe, err := config.Load(ctx, args[0])
			if err != nil {
				return errors.Errorf("loading recipe: %w", err)
			}

			root := recipe.ResolveRoot()
			if cmd.Flags().Changed("root") {
				root = o.Root
			}

			o.Logger.Header("applying " + recipe.Location())
			return o.Run(ctx, root, func(ctx context.Context, p *operation.Project) error {
				return p.Apply(ctx, recipe.Steps)
			})
		},
	}

	return cmd
}
