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
	"github.com/walteh/scaffoldrc/pkg/log"
	"github.com/walteh/scaffoldrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// replacement binds a replacer to one validated rule
type replacement struct {
	replacer text.Replacer
	rule     text.Rule
}

func newReplacement(replacer text.Replacer, find, with string) (*replacement, error) {
	rule := text.Rule{Find: find, With: with}
	if err := replacer.Validate(rule); err != nil {
		return nil, errors.Errorf("validating %s: %w", replacer.Kind(), err)
	}
	return &replacement{replacer: replacer, rule: rule}, nil
}

func (r *replacement) kind() string {
	return r.replacer.Kind()
}

// 🔁 Replace substitutes every occurrence of oldText with newText in every file of the project
func (p *Project) Replace(ctx context.Context, oldText, newText string) error {
	return p.ReplaceByPattern(ctx, oldText, newText, "")
}

// 🔁 ReplaceInFile substitutes every occurrence of oldText with newText in one file
func (p *Project) ReplaceInFile(ctx context.Context, oldText, newText, relPath string) error {
	r, err := newReplacement(text.NewLiteral(), oldText, newText)
	if err != nil {
		return err
	}
	return p.replaceInFile(ctx, r, relPath)
}

// 🔁 ReplaceByPattern substitutes every occurrence of oldText with newText in files matching pattern
func (p *Project) ReplaceByPattern(ctx context.Context, oldText, newText, pattern string) error {
	r, err := newReplacement(text.NewLiteral(), oldText, newText)
	if err != nil {
		return err
	}
	return p.replaceByPattern(ctx, r, pattern)
}

// 🧩 RegexReplace rewrites every match of pattern in every file of the project.
// replacement may reference groups as $1 or ${name}.
func (p *Project) RegexReplace(ctx context.Context, pattern, replacement string) error {
	return p.RegexReplaceByPattern(ctx, pattern, replacement, "")
}

// 🧩 RegexReplaceInFile rewrites every match of pattern in one file
func (p *Project) RegexReplaceInFile(ctx context.Context, pattern, replacement, relPath string) error {
	r, err := newReplacement(text.NewRegex(), pattern, replacement)
	if err != nil {
		return err
	}
	return p.replaceInFile(ctx, r, relPath)
}

// 🧩 RegexReplaceByPattern rewrites every match of pattern in files matching glob
func (p *Project) RegexReplaceByPattern(ctx context.Context, pattern, replacement, glob string) error {
	r, err := newReplacement(text.NewRegex(), pattern, replacement)
	if err != nil {
		return err
	}
	return p.replaceByPattern(ctx, r, glob)
}

func (p *Project) replaceInFile(ctx context.Context, r *replacement, relPath string) error {
	path := p.resolve(relPath)

	exists, err := p.fs.FileExists(ctx, path)
	if err != nil {
		return errors.Errorf("checking file %s: %w", relPath, err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Str("op", r.kind()).Msg("file does not exist, skipping")
		return nil
	}

	if err := p.replace(ctx, r, path); err != nil {
		return errors.Errorf("%s %s: %w", r.kind(), relPath, err)
	}
	return nil
}

func (p *Project) replaceByPattern(ctx context.Context, r *replacement, pattern string) error {
	return p.eachFile(ctx, r.kind(), pattern, func(ctx context.Context, path string) error {
		return p.replace(ctx, r, path)
	})
}

func (p *Project) replace(ctx context.Context, r *replacement, path string) error {
	content, err := p.fs.ReadAllText(ctx, path)
	if err != nil {
		return errors.Errorf("reading text: %w", err)
	}

	result, err := r.replacer.Apply(ctx, content, r.rule)
	if err != nil {
		return errors.Errorf("replacing text: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("op", r.kind()).
		Bool("modified", result.Changed).
		Int("count", result.Count).
		Msg("replaced text")

	if !result.Changed {
		return nil
	}

	if err := p.fs.WriteAllText(ctx, path, result.Text); err != nil {
		return errors.Errorf("writing text: %w", err)
	}

	p.report(ctx, log.FileOperation{
		Path:         path,
		Kind:         r.kind(),
		Detail:       r.rule.String(),
		IsModified:   true,
		Replacements: result.Count,
	})
	return nil
}
