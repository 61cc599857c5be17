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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/comment"
	"github.com/walteh/scaffoldrc/pkg/filesystem"
	"github.com/walteh/scaffoldrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for recipe parsers
type Parser interface {
	// 📝 Parse parses the recipe from bytes
	Parse(ctx context.Context, data []byte) (*Recipe, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🏷️ StepKind names the operation a step performs
type StepKind string

const (
	KindDeleteFile      StepKind = "delete_file"
	KindDeleteDirectory StepKind = "delete_directory"
	KindEditComment     StepKind = "edit_comment"
	KindReplace         StepKind = "replace"
	KindRegexReplace    StepKind = "regex_replace"
)

// 🎯 Scope limits a text step to one file or a glob. Both empty means the whole tree.
type Scope struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Glob string `json:"glob,omitempty" yaml:"glob,omitempty"`
}

// PathArgs are the arguments of the delete steps
type PathArgs struct {
	Path string `json:"path" yaml:"path"`
}

// EditCommentArgs are the arguments of an edit_comment step
type EditCommentArgs struct {
	Name  string `json:"name" yaml:"name"`
	Mode  string `json:"mode" yaml:"mode"`
	Scope `yaml:",inline"`
}

// ReplaceArgs are the arguments of a replace step
type ReplaceArgs struct {
	Old   string `json:"old" yaml:"old"`
	New   string `json:"new" yaml:"new"`
	Scope `yaml:",inline"`
}

// RegexReplaceArgs are the arguments of a regex_replace step
type RegexReplaceArgs struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
	Scope       `yaml:",inline"`
}

// 🪜 Step is one recipe operation. Exactly one field is set.
type Step struct {
	DeleteFile      *PathArgs         `json:"delete_file,omitempty" yaml:"delete_file,omitempty"`
	DeleteDirectory *PathArgs         `json:"delete_directory,omitempty" yaml:"delete_directory,omitempty"`
	EditComment     *EditCommentArgs  `json:"edit_comment,omitempty" yaml:"edit_comment,omitempty"`
	Replace         *ReplaceArgs      `json:"replace,omitempty" yaml:"replace,omitempty"`
	RegexReplace    *RegexReplaceArgs `json:"regex_replace,omitempty" yaml:"regex_replace,omitempty"`
}

// Kind returns the kind of the step, or "" when no field or more than one is set
func (s Step) Kind() StepKind {
	var kinds []StepKind
	if s.DeleteFile != nil {
		kinds = append(kinds, KindDeleteFile)
	}
	if s.DeleteDirectory != nil {
		kinds = append(kinds, KindDeleteDirectory)
	}
	if s.EditComment != nil {
		kinds = append(kinds, KindEditComment)
	}
	if s.Replace != nil {
		kinds = append(kinds, KindReplace)
	}
	if s.RegexReplace != nil {
		kinds = append(kinds, KindRegexReplace)
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// 📚 Recipe is an ordered list of edits for one generated project
type Recipe struct {
	Root  string `json:"root,omitempty" yaml:"root,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`

	location string
}

// Location returns the file the recipe was loaded from, if any
func (r *Recipe) Location() string {
	return r.location
}

// 📁 ResolveRoot returns the project root. A relative root is taken relative to the
// recipe file; an empty root means the recipe's own directory.
func (r *Recipe) ResolveRoot() string {
	base := "."
	if r.location != "" {
		base = filepath.Dir(r.location)
	}
	if r.Root == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(r.Root) {
		return filepath.Clean(r.Root)
	}
	return filepath.Join(base, r.Root)
}

// 🎯 Load loads a recipe from a file
func Load(ctx context.Context, path string) (*Recipe, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading recipe")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading recipe file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	recipe, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing recipe: %w", err)
	}
	recipe.location = path

	if err := recipe.Validate(); err != nil {
		return nil, errors.Errorf("validating recipe: %w", err)
	}

	logger.Debug().Str("path", path).Int("steps", len(recipe.Steps)).Msg("loaded recipe")
	return recipe, nil
}

// 🔍 Validate checks every step and reports the first invalid one
func (r *Recipe) Validate() error {
	for i, step := range r.Steps {
		if err := step.Validate(); err != nil {
			return errors.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// 🔍 Validate checks a single step
func (s Step) Validate() error {
	switch s.Kind() {
	case KindDeleteFile:
		if s.DeleteFile.Path == "" {
			return errors.Errorf("delete_file.path is required")
		}
	case KindDeleteDirectory:
		if s.DeleteDirectory.Path == "" {
			return errors.Errorf("delete_directory.path is required")
		}
	case KindEditComment:
		if s.EditComment.Name == "" {
			return errors.Errorf("edit_comment.name is required")
		}
		if _, err := comment.ParseMode(s.EditComment.Mode); err != nil {
			return errors.Errorf("edit_comment.mode: %w", err)
		}
		return s.EditComment.Scope.validate("edit_comment")
	case KindReplace:
		if err := text.NewLiteral().Validate(text.Rule{Find: s.Replace.Old, With: s.Replace.New}); err != nil {
			return errors.Errorf("replace.old: %w", err)
		}
		return s.Replace.Scope.validate("replace")
	case KindRegexReplace:
		if err := text.NewRegex().Validate(text.Rule{Find: s.RegexReplace.Pattern, With: s.RegexReplace.Replacement}); err != nil {
			return errors.Errorf("regex_replace.pattern: %w", err)
		}
		return s.RegexReplace.Scope.validate("regex_replace")
	default:
		return errors.Errorf("exactly one operation must be set")
	}
	return nil
}

func (s Scope) validate(kind string) error {
	if s.File != "" && s.Glob != "" {
		return errors.Errorf("%s: file and glob are mutually exclusive", kind)
	}
	if s.Glob != "" && !doublestar.ValidatePattern(filesystem.GlobFor(s.Glob)) {
		return errors.Errorf("%s.glob: invalid glob pattern %q", kind, s.Glob)
	}
	return nil
}

// 📝 String returns a short description of the step
func (s Step) String() string {
	switch s.Kind() {
	case KindDeleteFile:
		return fmt.Sprintf("delete_file %s", s.DeleteFile.Path)
	case KindDeleteDirectory:
		return fmt.Sprintf("delete_directory %s", s.DeleteDirectory.Path)
	case KindEditComment:
		return fmt.Sprintf("edit_comment %s (%s)%s", s.EditComment.Name, s.EditComment.Mode, s.EditComment.Scope)
	case KindReplace:
		return fmt.Sprintf("replace %q -> %q%s", s.Replace.Old, s.Replace.New, s.Replace.Scope)
	case KindRegexReplace:
		return fmt.Sprintf("regex_replace %q -> %q%s", s.RegexReplace.Pattern, s.RegexReplace.Replacement, s.RegexReplace.Scope)
	default:
		return "invalid step"
	}
}

// String renders the scope as a suffix for Step.String
func (s Scope) String() string {
	switch {
	case s.File != "":
		return " in " + s.File
	case s.Glob != "":
		return " in " + s.Glob
	default:
		return ""
	}
}
