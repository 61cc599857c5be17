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
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/comment"
	"github.com/walteh/scaffoldrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 💬 EditComment applies a marked block edit to every file in the project
func (p *Project) EditComment(ctx context.Context, name string, mode comment.Mode) error {
	return p.EditCommentByPattern(ctx, name, mode, "")
}

// 💬 EditCommentByPattern applies a marked block edit to every file matching pattern
func (p *Project) EditCommentByPattern(ctx context.Context, name string, mode comment.Mode, pattern string) error {
	if !mode.Valid() {
		return errors.Errorf("invalid edit mode %d", mode)
	}
	return p.eachFile(ctx, "edit_comment", pattern, func(ctx context.Context, path string) error {
		return p.editComment(ctx, name, mode, path)
	})
}

// 💬 EditCommentInFile applies a marked block edit to a single file.
// Files with no known comment dialect and missing files are left alone.
func (p *Project) EditCommentInFile(ctx context.Context, name string, mode comment.Mode, relPath string) error {
	if !mode.Valid() {
		return errors.Errorf("invalid edit mode %d", mode)
	}
	path := p.resolve(relPath)

	if _, ok := comment.ForFile(path); !ok {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no comment dialect, skipping")
		return nil
	}

	exists, err := p.fs.FileExists(ctx, path)
	if err != nil {
		return errors.Errorf("checking file %s: %w", relPath, err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("file does not exist, skipping")
		return nil
	}

	if err := p.editComment(ctx, name, mode, path); err != nil {
		return errors.Errorf("edit_comment %s: %w", relPath, err)
	}
	return nil
}

func (p *Project) editComment(ctx context.Context, name string, mode comment.Mode, path string) error {
	d, ok := comment.ForFile(path)
	if !ok {
		return nil
	}

	lines, err := p.fs.ReadAllLines(ctx, path)
	if err != nil {
		return errors.Errorf("reading lines: %w", err)
	}

	edited := comment.Edit(lines, name, mode, d)
	modified := !slices.Equal(lines, edited)

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("op", "edit_comment").
		Str("name", name).
		Stringer("mode", mode).
		Bool("modified", modified).
		Msg("edited comment blocks")

	if !modified {
		return nil
	}

	if err := p.fs.WriteAllLines(ctx, path, edited); err != nil {
		return errors.Errorf("writing lines: %w", err)
	}

	p.report(ctx, log.FileOperation{
		Path:       path,
		Kind:       "edit_comment",
		Detail:     fmt.Sprintf("%s (%s)", name, mode),
		IsModified: true,
	})
	return nil
}
