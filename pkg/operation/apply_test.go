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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffoldrc/pkg/config"
	"github.com/walteh/scaffoldrc/pkg/filesystem"
	"github.com/walteh/scaffoldrc/pkg/testutils"
)

var wizardTree = map[string]string{
	"Startup.cs":                     startupCS,
	"Bluetooth/Device.cs":            "class Device {}\n",
	"Properties/launchSettings.json": "{}\n",
	"README.txt":                     "MyTemplate\n# $Start-Bluetooth$\n# Pair your device first.\n# $End-Bluetooth$\n",
	"version.xml":                    "<v Version=\"0.0.1\" />\n",
}

var wizardSteps = []config.Step{
	{DeleteFile: &config.PathArgs{Path: "Properties/launchSettings.json"}},
	{DeleteDirectory: &config.PathArgs{Path: "Bluetooth"}},
	{EditComment: &config.EditCommentArgs{Name: "Bluetooth", Mode: "delete"}},
	{EditComment: &config.EditCommentArgs{Name: "Https", Mode: "uncomment", Scope: config.Scope{Glob: "*.cs"}}},
	{EditComment: &config.EditCommentArgs{Name: "Auth", Mode: "keep_code", Scope: config.Scope{File: "Startup.cs"}}},
	{Replace: &config.ReplaceArgs{Old: "MyTemplate", New: "Contoso", Scope: config.Scope{File: "README.txt"}}},
	{RegexReplace: &config.RegexReplaceArgs{Pattern: `Version="[^"]*"`, Replacement: `Version="1.0.0"`, Scope: config.Scope{Glob: "*.xml"}}},
}

func TestApply(t *testing.T) {
	ctx := testutils.Context(t)
	p, reporter, dir := newTestProject(t, wizardTree)

	require.NoError(t, p.Apply(ctx, wizardSteps))

	assert.Equal(t, map[string]string{
		"Startup.cs":  "public class Startup\n{\n    app.UseHttpsRedirection();\n    app.UseAuthentication();\n}\n",
		"README.txt":  "Contoso\n",
		"version.xml": "<v Version=\"1.0.0\" />\n",
	}, testutils.ReadTree(t, dir))

	kinds := make([]string, 0, len(reporter.ops))
	for _, op := range reporter.ops {
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []string{
		"delete_file",
		"delete_directory",
		"edit_comment",
		"edit_comment",
		"edit_comment",
		"replace",
		"regex_replace",
	}, kinds)

	// running the same recipe again changes nothing
	require.NoError(t, p.Apply(ctx, wizardSteps))
	assert.Len(t, reporter.ops, 7)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	ctx := testutils.Context(t)
	p, reporter, dir := newTestProject(t, wizardTree)

	steps := []config.Step{
		{DeleteFile: &config.PathArgs{Path: "README.txt"}},
		{RegexReplace: &config.RegexReplaceArgs{Pattern: `(`, Replacement: "x"}},
		{DeleteDirectory: &config.PathArgs{Path: "Bluetooth"}},
	}

	err := p.Apply(ctx, steps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (regex_replace)")

	got := testutils.ReadTree(t, dir)
	assert.NotContains(t, got, "README.txt")
	assert.Contains(t, got, "Bluetooth/Device.cs")
	assert.Len(t, reporter.ops, 1)
}

func TestApplyRejectsInvalidSteps(t *testing.T) {
	tests := []struct {
		name        string
		step        config.Step
		errContains string
	}{
		{name: "empty", step: config.Step{}, errContains: "step 0 (): exactly one operation must be set"},
		{
			name:        "bad_mode",
			step:        config.Step{EditComment: &config.EditCommentArgs{Name: "A", Mode: "toggle"}},
			errContains: "step 0 (edit_comment)",
		},
		{
			name:        "file_and_glob",
			step:        config.Step{Replace: &config.ReplaceArgs{Old: "a", Scope: config.Scope{File: "a", Glob: "*"}}},
			errContains: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestProject(t, nil)
			err := p.Apply(testutils.Context(t), []config.Step{tt.step})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestApplyDryRun(t *testing.T) {
	ctx := testutils.Context(t)
	dir := testutils.SetupTree(t, wizardTree)
	dry := filesystem.NewDryRun(filesystem.NewOS())
	reporter := &recordingReporter{}

	p, err := New(Options{Root: dir, FileSystem: dry, Reporter: reporter})
	require.NoError(t, err)

	require.NoError(t, p.Apply(ctx, wizardSteps))

	assert.Equal(t, wizardTree, testutils.ReadTree(t, dir), "dry run must not touch the disk")
	assert.Len(t, reporter.ops, 7)

	changes := dry.Changes()
	require.NotEmpty(t, changes)
	assert.Equal(t, filesystem.Change{Kind: filesystem.ChangeDeleteFile, Path: filepath.Join(dir, "Properties", "launchSettings.json")}, changes[0])
	assert.Equal(t, filesystem.Change{Kind: filesystem.ChangeDeleteDirectory, Path: filepath.Join(dir, "Bluetooth")}, changes[1])

	diff := dry.Diff(filepath.Join(dir, "README.txt"))
	assert.Contains(t, diff, "-MyTemplate")
	assert.Contains(t, diff, "+Contoso")

	_, err = os.Stat(filepath.Join(dir, "Bluetooth", "Device.cs"))
	require.NoError(t, err)
}
