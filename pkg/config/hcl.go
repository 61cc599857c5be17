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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files.
// Steps are labelled blocks and may read environment variables through env:
//
//	root = "./${env.PROJECT_NAME}"
//
//	step "edit_comment" {
//	  name = "Bluetooth"
//	  mode = "delete"
//	  glob = "*.cs"
//	}
type HCLParser struct {
	// Environ overrides os.Environ for the env variable
	Environ func() []string
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the recipe from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Recipe, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "recipe.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": p.envValue(),
		},
	}

	// Define HCL schema
	type hclStep struct {
		Kind        string `hcl:"kind,label"`
		Path        string `hcl:"path,optional"`
		Name        string `hcl:"name,optional"`
		Mode        string `hcl:"mode,optional"`
		Old         string `hcl:"old,optional"`
		New         string `hcl:"new,optional"`
		Pattern     string `hcl:"pattern,optional"`
		Replacement string `hcl:"replacement,optional"`
		File        string `hcl:"file,optional"`
		Glob        string `hcl:"glob,optional"`
	}
	type hclRecipe struct {
		Root  string    `hcl:"root,optional"`
		Steps []hclStep `hcl:"step,block"`
	}

	var hclCfg hclRecipe
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	recipe := &Recipe{Root: hclCfg.Root}
	for i, s := range hclCfg.Steps {
		scope := Scope{File: s.File, Glob: s.Glob}
		var step Step
		switch StepKind(s.Kind) {
		case KindDeleteFile:
			step.DeleteFile = &PathArgs{Path: s.Path}
		case KindDeleteDirectory:
			step.DeleteDirectory = &PathArgs{Path: s.Path}
		case KindEditComment:
			step.EditComment = &EditCommentArgs{Name: s.Name, Mode: s.Mode, Scope: scope}
		case KindReplace:
			step.Replace = &ReplaceArgs{Old: s.Old, New: s.New, Scope: scope}
		case KindRegexReplace:
			step.RegexReplace = &RegexReplaceArgs{Pattern: s.Pattern, Replacement: s.Replacement, Scope: scope}
		default:
			return nil, errors.Errorf("decoding HCL: step %d: unknown step kind %q", i, s.Kind)
		}
		recipe.Steps = append(recipe.Steps, step)
	}

	return recipe, nil
}

// envValue exposes the environment as a map of strings
func (p *HCLParser) envValue() cty.Value {
	environ := os.Environ
	if p.Environ != nil {
		environ = p.Environ
	}

	vars := map[string]cty.Value{}
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
