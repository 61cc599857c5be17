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
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
)

// 📊 ChangeKind is the kind of mutation recorded by DryRun
type ChangeKind int

const (
	ChangeWrite ChangeKind = iota
	ChangeDeleteFile
	ChangeDeleteDirectory
)

// String returns a string representation of ChangeKind
func (k ChangeKind) String() string {
	switch k {
	case ChangeWrite:
		return "write"
	case ChangeDeleteFile:
		return "delete file"
	case ChangeDeleteDirectory:
		return "delete directory"
	default:
		return "unknown"
	}
}

// Change is one recorded mutation
type Change struct {
	Kind ChangeKind
	Path string
}

// 🧪 DryRun wraps a FileSystem and records writes and deletes instead of applying them.
// Reads see the recorded state, so a sequence of operations behaves as it would for real.
type DryRun struct {
	inner   FileSystem
	newline string

	written  map[string]string
	original map[string]string
	deleted  []string
	changes  []Change
}

// 🏭 NewDryRun creates a DryRun over inner
func NewDryRun(inner FileSystem) *DryRun {
	return &DryRun{
		inner:    inner,
		newline:  "\n",
		written:  make(map[string]string),
		original: make(map[string]string),
	}
}

var _ FileSystem = (*DryRun)(nil)

// isDeleted reports whether path or one of its parents was deleted
func (d *DryRun) isDeleted(path string) bool {
	path = filepath.Clean(path)
	for _, del := range d.deleted {
		if path == del || strings.HasPrefix(path, del+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (d *DryRun) FileExists(ctx context.Context, path string) (bool, error) {
	if d.isDeleted(path) {
		return false, nil
	}
	if _, ok := d.written[filepath.Clean(path)]; ok {
		return true, nil
	}
	return d.inner.FileExists(ctx, path)
}

func (d *DryRun) DirectoryExists(ctx context.Context, path string) (bool, error) {
	if d.isDeleted(path) {
		return false, nil
	}
	return d.inner.DirectoryExists(ctx, path)
}

func (d *DryRun) ReadAllText(ctx context.Context, path string) (string, error) {
	if d.isDeleted(path) {
		return "", errors.Errorf("reading file: %w", fs.ErrNotExist)
	}
	if text, ok := d.written[filepath.Clean(path)]; ok {
		return text, nil
	}
	return d.inner.ReadAllText(ctx, path)
}

func (d *DryRun) WriteAllText(ctx context.Context, path string, text string) error {
	key := filepath.Clean(path)
	if _, seen := d.original[key]; !seen {
		before, err := d.ReadAllText(ctx, path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		d.original[key] = before
	}
	d.written[key] = text
	d.changes = append(d.changes, Change{Kind: ChangeWrite, Path: key})
	return nil
}

func (d *DryRun) ReadAllLines(ctx context.Context, path string) ([]string, error) {
	text, err := d.ReadAllText(ctx, path)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

func (d *DryRun) WriteAllLines(ctx context.Context, path string, lines []string) error {
	newline := d.newline
	if existing, err := d.ReadAllText(ctx, path); err == nil {
		newline = DetectNewline(existing)
	}
	return d.WriteAllText(ctx, path, JoinLines(lines, newline))
}

func (d *DryRun) DeleteFile(ctx context.Context, path string) error {
	key := filepath.Clean(path)
	delete(d.written, key)
	d.deleted = append(d.deleted, key)
	d.changes = append(d.changes, Change{Kind: ChangeDeleteFile, Path: key})
	return nil
}

func (d *DryRun) DeleteDirectory(ctx context.Context, path string) error {
	key := filepath.Clean(path)
	for p := range d.written {
		if p == key || strings.HasPrefix(p, key+string(filepath.Separator)) {
			delete(d.written, p)
		}
	}
	d.deleted = append(d.deleted, key)
	d.changes = append(d.changes, Change{Kind: ChangeDeleteDirectory, Path: key})
	return nil
}

// ListFiles lists inner, leaving out anything deleted during the run
func (d *DryRun) ListFiles(ctx context.Context, dir string, pattern string) ([]string, error) {
	files, err := d.inner.ListFiles(ctx, dir, pattern)
	if err != nil {
		return nil, err
	}
	kept := files[:0]
	for _, f := range files {
		if !d.isDeleted(f) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// Changes returns the recorded mutations in order
func (d *DryRun) Changes() []Change {
	return append([]Change(nil), d.changes...)
}

// 🔍 Diff renders a line diff between the original content of path and its pending
// content. Lines are prefixed with "-", "+" or " ". It is empty when nothing changed.
func (d *DryRun) Diff(path string) string {
	key := filepath.Clean(path)
	before, ok := d.original[key]
	if !ok {
		return ""
	}
	after := d.written[key]
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}
