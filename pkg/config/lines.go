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
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&LineParser{})
}

// 🔧 LineParser implements the Parser interface for the plain ".np" format:
//
//	# comment
//	use_tabs: yes
//	expanded_spaces: 4
//	ignore: generated/**, *_test.c
type LineParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *LineParser) CanParse(filename string) bool {
	return filepath.Base(filename) == ".np"
}

// 📝 Parse parses "key: value" lines. Bad lines become warnings, bad values abort.
func (p *LineParser) Parse(ctx context.Context, filename string, data []byte) (*Settings, []*Warning, error) {
	settings := Defaults()
	var warnings []*Warning

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(raw, ":")
		if len(fields) != 2 {
			warnings = append(warnings, &Warning{File: filename, Line: lineNo, Text: raw, Reason: "invalid syntax"})
			continue
		}

		key := strings.ToLower(strings.TrimSpace(fields[0]))
		value := strings.TrimSpace(fields[1])

		fail := func(err error) (*Settings, []*Warning, error) {
			return nil, warnings, &ParseError{File: filename, Line: lineNo, Text: raw, Key: key, Err: err}
		}

		switch key {
		case keyUseTabs:
			b, err := parseBool(value)
			if err != nil {
				return fail(err)
			}
			settings.UseTabs = b
		case keyExpandedSpaces:
			n, err := parseSpaces(value)
			if err != nil {
				return fail(err)
			}
			settings.ExpandedSpaces = n
		case keyIgnore:
			for _, pattern := range strings.Split(value, ",") {
				pattern = strings.TrimSpace(pattern)
				if pattern == "" {
					continue
				}
				settings.Ignore = append(settings.Ignore, pattern)
			}
			if err := settings.Validate(); err != nil {
				return fail(err)
			}
		default:
			warnings = append(warnings, &Warning{File: filename, Line: lineNo, Text: raw, Reason: "invalid setting"})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, errors.Errorf("scanning %s: %w", filename, err)
	}

	return settings, warnings, nil
}
