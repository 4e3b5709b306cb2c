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
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for ".np.yaml" files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	base := filepath.Base(filename)
	return base == ".np.yaml" || base == ".np.yml"
}

// 📝 Parse walks the top-level mapping so every key keeps its line number
func (p *YAMLParser) Parse(ctx context.Context, filename string, data []byte) (*Settings, []*Warning, error) {
	settings := Defaults()

	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return settings, nil, nil
		}
		return nil, nil, &ParseError{File: filename, Err: errors.Errorf("parsing YAML: %w", err)}
	}

	if len(doc.Content) == 0 {
		return settings, nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, &ParseError{File: filename, Line: root.Line, Err: errors.New("top level must be a mapping")}
	}

	var warnings []*Warning
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		key := strings.ToLower(strings.TrimSpace(keyNode.Value))

		fail := func(err error) (*Settings, []*Warning, error) {
			return nil, warnings, &ParseError{File: filename, Line: keyNode.Line, Text: valueNode.Value, Key: key, Err: err}
		}

		switch key {
		case keyUseTabs:
			b, err := parseBool(strings.TrimSpace(valueNode.Value))
			if err != nil {
				return fail(err)
			}
			settings.UseTabs = b
		case keyExpandedSpaces:
			n, err := parseSpaces(strings.TrimSpace(valueNode.Value))
			if err != nil {
				return fail(err)
			}
			settings.ExpandedSpaces = n
		case keyIgnore:
			switch valueNode.Kind {
			case yaml.SequenceNode:
				var patterns []string
				if err := valueNode.Decode(&patterns); err != nil {
					return fail(errors.Errorf("decoding YAML: %w", err))
				}
				settings.Ignore = append(settings.Ignore, patterns...)
			case yaml.ScalarNode:
				for _, pattern := range strings.Split(valueNode.Value, ",") {
					if pattern = strings.TrimSpace(pattern); pattern != "" {
						settings.Ignore = append(settings.Ignore, pattern)
					}
				}
			default:
				return fail(errors.New("expected a list of patterns"))
			}
		default:
			warnings = append(warnings, &Warning{File: filename, Line: keyNode.Line, Text: keyNode.Value, Reason: "invalid setting"})
		}
	}

	return settings, warnings, nil
}
