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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/filesystem"
	"github.com/walteh/scaffoldrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📣 Reporter receives one event per file a Project changed
type Reporter interface {
	Report(ctx context.Context, op log.FileOperation)
}

// 🔧 Options contains configuration for a Project
type Options struct {
	// Root is the directory every relative path is resolved against
	Root string
	// FileSystem defaults to the local disk
	FileSystem filesystem.FileSystem
	// Reporter is optional
	Reporter Reporter
}

// 🏗️ Project edits one generated project tree
type Project struct {
	root     string
	fs       filesystem.FileSystem
	reporter Reporter
}

// 🏭 New creates a Project with the given options
func New(opts Options) (*Project, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return &Project{
		root:     opts.Root,
		fs:       opts.FileSystem,
		reporter: opts.Reporter,
	}, nil
}

// Root returns the project root
func (p *Project) Root() string {
	return p.root
}

// resolve joins a relative path onto the root. Absolute paths are returned as-is.
func (p *Project) resolve(relPath string) string {
	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath)
	}
	return filepath.Join(p.root, relPath)
}

// display returns path relative to the root when possible
func (p *Project) display(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// 🔄 eachFile runs fn for every file under the root matching pattern, one at a time.
// The first error stops the walk; files already handled keep their changes.
func (p *Project) eachFile(ctx context.Context, op, pattern string, fn func(ctx context.Context, path string) error) error {
	files, err := p.fs.ListFiles(ctx, p.root, pattern)
	if err != nil {
		return errors.Errorf("listing files: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("op", op).
		Str("pattern", pattern).
		Int("files", len(files)).
		Msg("processing files")

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("%s cancelled: %w", op, err)
		}
		if err := fn(ctx, path); err != nil {
			return errors.Errorf("%s %s: %w", op, p.display(path), err)
		}
	}
	return nil
}

func (p *Project) report(ctx context.Context, op log.FileOperation) {
	op.Path = p.display(op.Path)
	p.reporter.Report(ctx, op)
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, log.FileOperation) {}
