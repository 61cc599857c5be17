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
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffoldrc/pkg/testutils"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "no_trailing_newline", text: "a\nb", want: []string{"a", "b"}},
		{name: "trailing_newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "bare_cr", text: "a\rb", want: []string{"a", "b"}},
		{name: "blank_lines_kept", text: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
		{name: "only_newline", text: "\n", want: []string{""}},
		{name: "mixed", text: "a\r\nb\nc\rd", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", JoinLines(nil, "\n"))
	assert.Equal(t, "a\nb\n", JoinLines([]string{"a", "b"}, "\n"))
	assert.Equal(t, "a\r\n", JoinLines([]string{"a"}, "\r\n"))
	assert.Equal(t, "\r\n", DetectNewline("x\r\ny"))
	assert.Equal(t, "\n", DetectNewline("x\ny"))
}

func TestOSExistence(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{"sub/file.txt": "x"})
	o := NewOS()

	ok, err := o.FileExists(ctx, filepath.Join(dir, "sub", "file.txt"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.FileExists(ctx, filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.False(t, ok, "a directory is not a file")

	ok, err = o.FileExists(ctx, filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = o.DirectoryExists(ctx, filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.DirectoryExists(ctx, filepath.Join(dir, "sub", "file.txt"))
	require.NoError(t, err)
	assert.False(t, ok, "a file is not a directory")

	ok, err = o.DirectoryExists(ctx, filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOSReadWrite(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{
		"unix.cs": "a\nb\n",
		"dos.cs":  "a\r\nb\r\n",
	})
	o := NewOS()

	lines, err := o.ReadAllLines(ctx, filepath.Join(dir, "dos.cs"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	require.NoError(t, o.WriteAllLines(ctx, filepath.Join(dir, "dos.cs"), []string{"c"}))
	text, err := o.ReadAllText(ctx, filepath.Join(dir, "dos.cs"))
	require.NoError(t, err)
	assert.Equal(t, "c\r\n", text, "line endings of the replaced file are kept")

	require.NoError(t, o.WriteAllLines(ctx, filepath.Join(dir, "unix.cs"), []string{"c", "d"}))
	text, err = o.ReadAllText(ctx, filepath.Join(dir, "unix.cs"))
	require.NoError(t, err)
	assert.Equal(t, "c\nd\n", text)

	forced := NewOS(WithNewline("\r\n"))
	require.NoError(t, forced.WriteAllLines(ctx, filepath.Join(dir, "unix.cs"), []string{"e"}))
	text, err = forced.ReadAllText(ctx, filepath.Join(dir, "unix.cs"))
	require.NoError(t, err)
	assert.Equal(t, "e\r\n", text)

	assert.ElementsMatch(t, []string{"dos.cs", "unix.cs"}, mapKeys(testutils.ReadTree(t, dir)), "no temp files left behind")

	_, err = o.ReadAllText(ctx, filepath.Join(dir, "missing.cs"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSWriteKeepsMode(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{"run.txt": "x"})
	path := filepath.Join(dir, "run.txt")
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, NewOS().WriteAllText(ctx, path, "y"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}

func TestOSWriteLeavesSiblingsAlone(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{
		"notes.txt":          "MyTemplate",
		"notes.txt.tmp":      "user data",
		".notes.txt.tmp-123": "more user data",
	})
	o := NewOS()

	require.NoError(t, o.WriteAllText(ctx, filepath.Join(dir, "notes.txt"), "Contoso"))
	require.NoError(t, o.WriteAllLines(ctx, filepath.Join(dir, "notes.txt"), []string{"Fabrikam"}))

	assert.Equal(t, map[string]string{
		"notes.txt":          "Fabrikam\n",
		"notes.txt.tmp":      "user data",
		".notes.txt.tmp-123": "more user data",
	}, testutils.ReadTree(t, dir))
}

func TestOSWriteMissingDirectory(t *testing.T) {
	ctx := testutils.Context(t)
	dir := t.TempDir()

	err := NewOS().WriteAllText(ctx, filepath.Join(dir, "missing", "a.txt"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
	assert.Empty(t, testutils.ReadTree(t, dir))
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestOSDelete(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{
		"a.txt":         "x",
		"sub/b.txt":     "x",
		"sub/deep/c.cs": "x",
	})
	o := NewOS()

	require.NoError(t, o.DeleteFile(ctx, filepath.Join(dir, "a.txt")))
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))

	require.NoError(t, o.DeleteDirectory(ctx, filepath.Join(dir, "sub")))
	assert.NoDirExists(t, filepath.Join(dir, "sub"))

	err := o.DeleteFile(ctx, filepath.Join(dir, "a.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting file")
}

func TestOSListFiles(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{
		"Program.cs":               "",
		"README.txt":               "",
		"src/App/Startup.cs":       "",
		"src/App/appsettings.json": "",
		"src/Web/site.css":         "",
		"test/Tests.cs":            "",
	})
	o := NewOS()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "all_files",
			pattern: "",
			want: []string{
				"Program.cs", "README.txt", "src/App/Startup.cs", "src/App/appsettings.json",
				"src/Web/site.css", "test/Tests.cs",
			},
		},
		{
			name:    "name_pattern_any_depth",
			pattern: "*.cs",
			want:    []string{"Program.cs", "src/App/Startup.cs", "test/Tests.cs"},
		},
		{
			name:    "name_pattern_braces",
			pattern: "*.{json,css}",
			want:    []string{"src/App/appsettings.json", "src/Web/site.css"},
		},
		{
			name:    "path_pattern",
			pattern: "src/**/*.cs",
			want:    []string{"src/App/Startup.cs"},
		},
		{
			name:    "path_pattern_root_only",
			pattern: "test/*",
			want:    []string{"test/Tests.cs"},
		},
		{
			name:    "no_match",
			pattern: "*.vb",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.ListFiles(ctx, dir, tt.pattern)
			require.NoError(t, err)

			var want []string
			for _, rel := range tt.want {
				want = append(want, filepath.Join(dir, filepath.FromSlash(rel)))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestOSListFilesNameCase(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, map[string]string{
		"Startup.CS":         "",
		"src/Program.cs":     "",
		"src/Views/Index.Cs": "",
		"Lib/Other.cs":       "",
		"notes.txt":          "",
	})
	o := NewOS()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "name_pattern_ignores_case",
			pattern: "*.cs",
			want:    []string{"Lib/Other.cs", "Startup.CS", "src/Program.cs", "src/Views/Index.Cs"},
		},
		{
			name:    "upper_case_name_pattern",
			pattern: "STARTUP.*",
			want:    []string{"Startup.CS"},
		},
		{
			name:    "path_pattern_keeps_case",
			pattern: "src/**/*.cs",
			want:    []string{"src/Program.cs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := o.ListFiles(ctx, dir, tt.pattern)
			require.NoError(t, err)

			got := make([]string, 0, len(files))
			for _, f := range files {
				rel, err := filepath.Rel(dir, f)
				require.NoError(t, err)
				got = append(got, filepath.ToSlash(rel))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSListFilesBadPattern(t *testing.T) {
	ctx := testutils.Context(t)
	_, err := NewOS().ListFiles(ctx, t.TempDir(), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestGlobFor(t *testing.T) {
	assert.Equal(t, "**", GlobFor(""))
	assert.Equal(t, "**/*.cs", GlobFor("*.cs"))
	assert.Equal(t, "src/*.cs", GlobFor("src/*.cs"))
}
