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
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Literal replaces exact, case-sensitive occurrences of Find,
// leftmost first and without overlap.
type Literal struct{}

// NewLiteral creates a literal replacer
func NewLiteral() *Literal {
	return &Literal{}
}

func (l *Literal) Kind() string {
	return "replace"
}

// Validate requires a non-empty Find; an empty one would match between every rune
func (l *Literal) Validate(rules ...Rule) error {
	for i, rule := range rules {
		if rule.Find == "" {
			return errors.Errorf("rule %d: find text is required", i)
		}
	}
	return nil
}

func (l *Literal) Apply(ctx context.Context, content string, rules ...Rule) (*Result, error) {
	if err := l.Validate(rules...); err != nil {
		return nil, err
	}

	res := &Result{Text: content}
	for _, rule := range rules {
		n := strings.Count(res.Text, rule.Find)
		if n == 0 {
			continue
		}
		res.Text = strings.ReplaceAll(res.Text, rule.Find, rule.With)
		res.Count += n

		zerolog.Ctx(ctx).Trace().Str("rule", rule.String()).Int("count", n).Msg("literal rule matched")
	}

	res.Changed = res.Text != content
	return res, nil
}
