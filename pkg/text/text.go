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

// Package text rewrites file contents with literal or regular expression substitutions.
package text

import (
	"context"
	"fmt"
)

// 🔁 Rule is a single substitution. Find is literal text or a pattern,
// depending on the Replacer applying it.
type Rule struct {
	Find string
	With string
}

func (r Rule) String() string {
	return fmt.Sprintf("%q -> %q", r.Find, r.With)
}

// 📝 Result is the outcome of applying rules to one piece of text
type Result struct {
	// Text is the content after every rule ran
	Text string

	// Count is the number of matches replaced across all rules
	Count int

	// Changed is false when Text equals the input, even if Count > 0
	Changed bool
}

// Replacer applies rules to text
type Replacer interface {
	// Kind names the operation, e.g. "replace"
	Kind() string

	// Validate rejects rules that could never be applied
	Validate(rules ...Rule) error

	// Apply runs rules in order, each one seeing the output of the previous
	Apply(ctx context.Context, content string, rules ...Rule) (*Result, error)
}

var (
	_ Replacer = (*Literal)(nil)
	_ Replacer = (*Regex)(nil)
)
