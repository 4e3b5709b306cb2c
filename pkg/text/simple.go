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
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer substitutes placeholders with strings.ReplaceAll
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText applies the rules to the content.
// Rules run in order, so a value that contains a later placeholder is substituted again.
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{}

	current := string(originalContent)
	for _, rule := range rules {
		n := strings.Count(current, rule.FromText)
		if n == 0 {
			zerolog.Ctx(ctx).Debug().Str("placeholder", rule.FromText).Msg("placeholder not present")
			continue
		}
		current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
		result.ReplacementCount += n
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// ValidateRules checks that every rule has a unique, non-empty placeholder
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if prev, ok := seen[rule.FromText]; ok {
			return errors.Errorf("rule %d: duplicate placeholder %q (first used by rule %d)", i, rule.FromText, prev)
		}
		seen[rule.FromText] = i
	}
	return nil
}

// Unresolved returns the placeholders of rules that still occur in content
func Unresolved(content []byte, rules []ReplacementRule) []string {
	var left []string
	s := string(content)
	for _, rule := range rules {
		if rule.FromText != "" && strings.Contains(s, rule.FromText) {
			left = append(left, rule.FromText)
		}
	}
	return left
}
