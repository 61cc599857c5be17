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

package text

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🧩 Regex treats Find as a Go regexp pattern. With may reference groups as $1 or ${name}.
//
// Patterns are compiled once and kept for the lifetime of the value, so one Regex
// can be validated up front and then applied to many files. Not safe for concurrent use.
type Regex struct {
	compiled map[string]*regexp.Regexp
}

// NewRegex creates a regex replacer with an empty pattern cache
func NewRegex() *Regex {
	return &Regex{compiled: map[string]*regexp.Regexp{}}
}

func (r *Regex) Kind() string {
	return "regex_replace"
}

func (r *Regex) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := r.compiled[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}
	r.compiled[pattern] = re
	return re, nil
}

// Validate compiles every pattern
func (r *Regex) Validate(rules ...Rule) error {
	for i, rule := range rules {
		if _, err := r.compile(rule.Find); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

func (r *Regex) Apply(ctx context.Context, content string, rules ...Rule) (*Result, error) {
	res := &Result{Text: content}

	for i, rule := range rules {
		re, err := r.compile(rule.Find)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}

		matches := re.FindAllStringSubmatchIndex(res.Text, -1)
		if len(matches) == 0 {
			continue
		}

		src := res.Text
		out := make([]byte, 0, len(src))
		last := 0
		for _, m := range matches {
			out = append(out, src[last:m[0]]...)
			out = re.ExpandString(out, rule.With, src, m)
			last = m[1]
		}
		out = append(out, src[last:]...)

		res.Text = string(out)
		res.Count += len(matches)

		zerolog.Ctx(ctx).Trace().Str("rule", rule.String()).Int("count", len(matches)).Msg("regex rule matched")
	}

	res.Changed = res.Text != content
	return res, nil
}
