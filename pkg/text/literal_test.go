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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffoldrc/pkg/testutils"
)

func TestLiteralApply(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		rules       []Rule
		want        string
		wantCount   int
		wantChanged bool
	}{
		{
			name:        "every_occurrence",
			content:     "MyTemplate uses MyTemplate.Core",
			rules:       []Rule{{Find: "MyTemplate", With: "Contoso"}},
			want:        "Contoso uses Contoso.Core",
			wantCount:   2,
			wantChanged: true,
		},
		{
			name:        "case_sensitive",
			content:     "mytemplate MyTemplate",
			rules:       []Rule{{Find: "MyTemplate", With: "Contoso"}},
			want:        "mytemplate Contoso",
			wantCount:   1,
			wantChanged: true,
		},
		{
			name:        "non_overlapping",
			content:     "aaaa",
			rules:       []Rule{{Find: "aaa", With: "b"}},
			want:        "ba",
			wantCount:   1,
			wantChanged: true,
		},
		{
			name:        "no_pattern_semantics",
			content:     "v1.0 or v1x0",
			rules:       []Rule{{Find: "1.0", With: "2.0"}},
			want:        "v2.0 or v1x0",
			wantCount:   1,
			wantChanged: true,
		},
		{
			name:    "rules_run_in_order",
			content: "alpha",
			rules: []Rule{
				{Find: "alpha", With: "beta"},
				{Find: "beta", With: "gamma"},
			},
			want:        "gamma",
			wantCount:   2,
			wantChanged: true,
		},
		{
			name:        "same_text_counts_but_does_not_change",
			content:     "keep keep",
			rules:       []Rule{{Find: "keep", With: "keep"}},
			want:        "keep keep",
			wantCount:   2,
			wantChanged: false,
		},
		{
			name:    "rules_that_cancel_out",
			content: "x",
			rules: []Rule{
				{Find: "x", With: "y"},
				{Find: "y", With: "x"},
			},
			want:        "x",
			wantCount:   2,
			wantChanged: false,
		},
		{
			name:    "no_match",
			content: "nothing here",
			rules:   []Rule{{Find: "MyTemplate", With: "Contoso"}},
			want:    "nothing here",
		},
		{
			name:  "empty_content",
			rules: []Rule{{Find: "a", With: "b"}},
		},
		{
			name:    "no_rules",
			content: "untouched",
			want:    "untouched",
		},
		{
			name:        "line_endings_untouched",
			content:     "a\r\nb\r\n",
			rules:       []Rule{{Find: "b", With: "c"}},
			want:        "a\r\nc\r\n",
			wantCount:   1,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewLiteral().Apply(testutils.Context(t), tt.content, tt.rules...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.wantCount, res.Count)
			assert.Equal(t, tt.wantChanged, res.Changed)
		})
	}
}

func TestLiteralValidate(t *testing.T) {
	l := NewLiteral()
	assert.Equal(t, "replace", l.Kind())

	require.NoError(t, l.Validate())
	require.NoError(t, l.Validate(Rule{Find: "a"}, Rule{Find: "b", With: ""}))

	err := l.Validate(Rule{Find: "a"}, Rule{With: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1: find text is required")

	_, err = l.Apply(testutils.Context(t), "abc", Rule{With: "x"})
	require.Error(t, err, "apply must refuse an empty find text")
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, `"a\"b" -> "c"`, Rule{Find: `a"b`, With: "c"}.String())
}
