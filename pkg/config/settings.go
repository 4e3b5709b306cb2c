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
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultExpandedSpaces is the indentation width used when no settings file says otherwise
	DefaultExpandedSpaces = 2

	keyUseTabs        = "use_tabs"
	keyExpandedSpaces = "expanded_spaces"
	keyIgnore         = "ignore"
)

// ⚙️ Settings holds the user-tunable formatting preferences of one run
type Settings struct {
	UseTabs        bool     `json:"use_tabs" yaml:"use_tabs" hcl:"use_tabs,optional"`
	ExpandedSpaces int      `json:"expanded_spaces" yaml:"expanded_spaces" hcl:"expanded_spaces,optional"`
	Ignore         []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
}

// 🏭 Defaults returns the settings used when no settings file exists
func Defaults() *Settings {
	return &Settings{
		UseTabs:        false,
		ExpandedSpaces: DefaultExpandedSpaces,
	}
}

// Indent returns one indentation unit: a tab, or ExpandedSpaces spaces
func (s *Settings) Indent() string {
	if s == nil {
		return strings.Repeat(" ", DefaultExpandedSpaces)
	}
	if s.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", s.ExpandedSpaces)
}

// 🔍 Validate checks the values that can not be expressed by the file formats themselves
func (s *Settings) Validate() error {
	if s.ExpandedSpaces < 0 {
		return errors.Errorf("%s must not be negative, got %d", keyExpandedSpaces, s.ExpandedSpaces)
	}
	for _, pattern := range s.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid %s pattern %q", keyIgnore, pattern)
		}
	}
	return nil
}

// 📝 String returns a string representation of the settings
func (s *Settings) String() string {
	mode := "spaces"
	if s.UseTabs {
		mode = "tabs"
	}
	return fmt.Sprintf("indent=%s width=%d ignore=%v", mode, s.ExpandedSpaces, s.Ignore)
}

// parseBool accepts the y/yes/t/true/on/1 and n/no/f/false/off/0 spellings
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, errors.Errorf("invalid truth value %q", value)
}

func parseSpaces(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("invalid integer %q: %w", value, err)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid integer %q: must not be negative", value)
	}
	return n, nil
}
