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

package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 OS implements FileSystem on the local disk
type OS struct {
	newline string
}

// Option configures an OS file system
type Option func(*OS)

// WithNewline forces the line terminator used by WriteAllLines.
// By default the terminator of the file being replaced is kept, falling back to "\n".
func WithNewline(newline string) Option {
	return func(o *OS) {
		o.newline = newline
	}
}

// 🏭 NewOS creates a new OS file system
func NewOS(opts ...Option) *OS {
	o := &OS{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ FileSystem = (*OS)(nil)

func (o *OS) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (o *OS) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking directory existence: %w", err)
}

func (o *OS) ReadAllText(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading file: %w", err)
	}
	return string(content), nil
}

// WriteAllText replaces the file through a uniquely named temp file in the same
// directory and a rename, keeping the permissions of the file it replaces.
func (o *OS) WriteAllText(ctx context.Context, path string, text string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	committed = true

	zerolog.Ctx(ctx).Trace().Str("path", path).Int("bytes", len(text)).Msg("wrote file")
	return nil
}

func (o *OS) ReadAllLines(ctx context.Context, path string) ([]string, error) {
	text, err := o.ReadAllText(ctx, path)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

func (o *OS) WriteAllLines(ctx context.Context, path string, lines []string) error {
	newline := o.newline
	if newline == "" {
		newline = "\n"
		if existing, err := os.ReadFile(path); err == nil {
			newline = DetectNewline(string(existing))
		}
	}
	return o.WriteAllText(ctx, path, JoinLines(lines, newline))
}

func (o *OS) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

func (o *OS) DeleteDirectory(ctx context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Errorf("removing directory: %w", err)
	}
	return nil
}

// 🔍 ListFiles walks dir and returns the matching files as paths joined onto dir,
// sorted lexically.
//
// A pattern without a slash is matched case-insensitively against file names at any
// depth, so "*.cs" finds "src/App/Program.cs" and "Startup.CS". A pattern with a slash
// is matched case-sensitively against the path relative to dir using doublestar
// syntax, e.g. "src/**/*.json".
func (o *OS) ListFiles(ctx context.Context, dir string, pattern string) ([]string, error) {
	glob := GlobFor(pattern)
	if !doublestar.ValidatePattern(glob) {
		return nil, errors.Errorf("invalid glob pattern %q", pattern)
	}

	nameOnly := pattern != "" && !strings.Contains(pattern, "/")
	namePattern := strings.ToLower(pattern)
	if nameOnly {
		glob = "**"
	}

	var files []string
	err := doublestar.GlobWalk(os.DirFS(dir), glob, func(rel string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		if nameOnly && !doublestar.MatchUnvalidated(namePattern, strings.ToLower(filepath.Base(rel))) {
			return nil
		}
		files = append(files, filepath.Join(dir, filepath.FromSlash(rel)))
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, errors.Errorf("listing files in %s: %w", dir, err)
	}

	sort.Strings(files)

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Str("pattern", pattern).Int("count", len(files)).Msg("listed files")
	return files, nil
}

// GlobFor turns a search pattern into the doublestar pattern used against paths
// relative to the listed directory.
func GlobFor(pattern string) string {
	switch {
	case pattern == "":
		return "**"
	case strings.Contains(pattern, "/"):
		return pattern
	default:
		return "**/" + pattern
	}
}
