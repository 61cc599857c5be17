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

package opts

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/pkg/filesystem"
	"github.com/walteh/scaffoldrc/pkg/log"
	"github.com/walteh/scaffoldrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Root        string
	Debug       bool
	DryRun      bool
	LineEndings string
	Logger      *log.Logger
}

// fileSystem builds the OS file system for the --line-endings flag
func (o *RootOpts) fileSystem() (*filesystem.OS, error) {
	switch o.LineEndings {
	case "", "auto":
		return filesystem.NewOS(), nil
	case "lf":
		return filesystem.NewOS(filesystem.WithNewline("\n")), nil
	case "crlf":
		return filesystem.NewOS(filesystem.WithNewline("\r\n")), nil
	default:
		return nil, errors.Errorf("unknown --line-endings %q (want auto, lf or crlf)", o.LineEndings)
	}
}

// 🏃 Run edits the project at root with fn, then prints the pending diffs (dry run)
// and a summary of what changed.
func (o *RootOpts) Run(ctx context.Context, root string, fn func(ctx context.Context, p *operation.Project) error) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Errorf("resolving project root: %w", err)
	}

	osfs, err := o.fileSystem()
	if err != nil {
		return err
	}

	var fs filesystem.FileSystem = osfs
	var dry *filesystem.DryRun
	if o.DryRun {
		dry = filesystem.NewDryRun(fs)
		fs = dry
	}

	exists, err := fs.DirectoryExists(ctx, abs)
	if err != nil {
		return errors.Errorf("checking project root: %w", err)
	}
	if !exists {
		return errors.Errorf("project root %s does not exist", abs)
	}

	p, err := operation.New(operation.Options{
		Root:       abs,
		FileSystem: fs,
		Reporter:   o.Logger,
	})
	if err != nil {
		return errors.Errorf("creating project: %w", err)
	}

	o.Logger.StartRun(ctx, p.Root(), o.DryRun)
	if err := fn(ctx, p); err != nil {
		return err
	}
	o.Logger.EndRun(ctx)

	if dry != nil {
		o.printDryRun(dry, p.Root())
	}

	if len(o.Logger.Operations()) == 0 {
		o.Logger.Info("nothing to change")
		return nil
	}

	o.Logger.Newline()
	if err := o.Logger.Summary(); err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}
	return nil
}

func (o *RootOpts) printDryRun(dry *filesystem.DryRun, root string) {
	changes := dry.Changes()
	if len(changes) == 0 {
		return
	}

	o.Logger.Newline()
	seen := map[string]bool{}
	for _, change := range changes {
		rel, err := filepath.Rel(root, change.Path)
		if err != nil {
			rel = change.Path
		}
		rel = filepath.ToSlash(rel)

		switch change.Kind {
		case filesystem.ChangeWrite:
			if seen[change.Path] {
				continue
			}
			seen[change.Path] = true
			if diff := dry.Diff(change.Path); diff != "" {
				o.Logger.Diff(rel, diff)
			}
		default:
			o.Logger.Warn("would %s %s", change.Kind, rel)
		}
	}
}

// 🎯 Scope holds the --file and --pattern flags shared by the text commands
type Scope struct {
	File    string
	Pattern string
}

// AddFlags registers --file and --pattern on cmd
func (s *Scope) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.File, "file", "f", "", "edit a single file, relative to the root")
	cmd.Flags().StringVarP(&s.Pattern, "pattern", "p", "", "edit files matching a glob (e.g. *.cs or src/**/*.json)")
	cmd.MarkFlagsMutuallyExclusive("file", "pattern")
}
