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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/comment"
	"github.com/walteh/scaffoldrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 📜 Apply runs recipe steps in order and stops at the first failure
func (p *Project) Apply(ctx context.Context, steps []config.Step) error {
	logger := zerolog.Ctx(ctx)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("step %d (%s): %w", i, step.Kind(), err)
		}

		logger.Debug().Int("step", i).Str("step_desc", step.String()).Msg("applying step")

		if err := p.applyStep(ctx, step); err != nil {
			return errors.Errorf("step %d (%s): %w", i, step.Kind(), err)
		}
	}
	return nil
}

func (p *Project) applyStep(ctx context.Context, step config.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	switch step.Kind() {
	case config.KindDeleteFile:
		return p.DeleteFile(ctx, step.DeleteFile.Path)

	case config.KindDeleteDirectory:
		return p.DeleteDirectory(ctx, step.DeleteDirectory.Path)

	case config.KindEditComment:
		args := step.EditComment
		mode, err := comment.ParseMode(args.Mode)
		if err != nil {
			return err
		}
		if args.File != "" {
			return p.EditCommentInFile(ctx, args.Name, mode, args.File)
		}
		return p.EditCommentByPattern(ctx, args.Name, mode, args.Glob)

	case config.KindReplace:
		args := step.Replace
		if args.File != "" {
			return p.ReplaceInFile(ctx, args.Old, args.New, args.File)
		}
		return p.ReplaceByPattern(ctx, args.Old, args.New, args.Glob)

	case config.KindRegexReplace:
		args := step.RegexReplace
		if args.File != "" {
			return p.RegexReplaceInFile(ctx, args.Pattern, args.Replacement, args.File)
		}
		return p.RegexReplaceByPattern(ctx, args.Pattern, args.Replacement, args.Glob)
	}

	return errors.Errorf("unknown step kind %q", step.Kind())
}
