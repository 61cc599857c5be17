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
	"strings"
)

// 💾 FileSystem is everything the project editor needs from storage.
// Paths are passed through untouched; callers resolve them first.
type FileSystem interface {
	// Existence checks
	FileExists(ctx context.Context, path string) (bool, error)
	DirectoryExists(ctx context.Context, path string) (bool, error)

	// Whole-file text access
	ReadAllText(ctx context.Context, path string) (string, error)
	WriteAllText(ctx context.Context, path string, text string) error

	// Line access, line-ending agnostic on read
	ReadAllLines(ctx context.Context, path string) ([]string, error)
	WriteAllLines(ctx context.Context, path string, lines []string) error

	// Tree operations
	DeleteFile(ctx context.Context, path string) error
	DeleteDirectory(ctx context.Context, path string) error

	// ListFiles returns every file under dir matching pattern, recursively.
	// An empty pattern matches all files.
	ListFiles(ctx context.Context, dir string, pattern string) ([]string, error)
}

// ✂️ SplitLines splits text on \r\n, \n or \r. A trailing line break does not
// produce a final empty line, and empty text has no lines.
func SplitLines(text string) []string {
	lines := []string{}
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return lines
}

// 🔗 JoinLines terminates every line with newline
func JoinLines(lines []string, newline string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(newline)
	}
	return b.String()
}

// DetectNewline returns "\r\n" when text uses Windows line endings and "\n" otherwise
func DetectNewline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
