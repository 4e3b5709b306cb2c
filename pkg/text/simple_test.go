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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		rules     []ReplacementRule
		want      string
		wantCount int
		wantError string
	}{
		{
			name:    "project_placeholders",
			content: "project ( %project_name% LANGUAGES %languages% )\nadd_executable( %project_name% )\n",
			rules: []ReplacementRule{
				{FromText: "%project_name%", ToText: "demo"},
				{FromText: "%languages%", ToText: "C/CXX"},
			},
			want:      "project ( demo LANGUAGES C/CXX )\nadd_executable( demo )\n",
			wantCount: 3,
		},
		{
			name:    "value_inserted_verbatim",
			content: "name=%n%",
			rules: []ReplacementRule{
				{FromText: "%n%", ToText: `a "quoted" ${name}`},
			},
			want:      `name=a "quoted" ${name}`,
			wantCount: 1,
		},
		{
			name:    "value_containing_later_placeholder_is_substituted_again",
			content: "%a% %b%",
			rules: []ReplacementRule{
				{FromText: "%a%", ToText: "%b%"},
				{FromText: "%b%", ToText: "x"},
			},
			want:      "x x",
			wantCount: 3,
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "%missing%", ToText: "Hi"},
			},
			want:      "Hello World",
			wantCount: 0,
		},
		{
			name:    "empty_content",
			content: "",
			rules: []ReplacementRule{
				{FromText: "%x%", ToText: "y"},
			},
			want:      "",
			wantCount: 0,
		},
		{
			name:      "empty_rules",
			content:   "Hello World",
			rules:     []ReplacementRule{},
			want:      "Hello World",
			wantCount: 0,
		},
		{
			name:    "invalid_rules",
			content: "Hello World",
			rules: []ReplacementRule{
				{ToText: "x"},
			},
			wantError: "from_text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			result, err := replacer.ReplaceText(
				context.Background(),
				strings.NewReader(tt.content),
				tt.rules,
			)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
		})
	}
}

func TestSimpleTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []ReplacementRule{
				{FromText: "%a%", ToText: "x"},
				{FromText: "%b%", ToText: ""},
			},
		},
		{
			name: "missing_from_text",
			rules: []ReplacementRule{
				{ToText: "bar"},
			},
			wantError: "from_text is required",
		},
		{
			name: "duplicate_placeholder",
			rules: []ReplacementRule{
				{FromText: "%a%", ToText: "x"},
				{FromText: "%a%", ToText: "y"},
			},
			wantError: "rule 1: duplicate placeholder",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			err := replacer.ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUnresolved(t *testing.T) {
	rules := []ReplacementRule{
		{FromText: "%a%"},
		{FromText: "%b%"},
	}
	assert.Equal(t, []string{"%b%"}, Unresolved([]byte("x %b% y"), rules))
	assert.Empty(t, Unresolved([]byte("nothing left"), rules))
}
