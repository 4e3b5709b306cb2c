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
	"path/filepath"
	"sort"
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

// 🔧 HCLParser implements the Parser interface for ".np.hcl" files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return filepath.Base(filename) == ".np.hcl"
}

// 📝 Parse parses the settings from HCL attributes
func (p *HCLParser) Parse(ctx context.Context, filename string, data []byte) (*Settings, []*Warning, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, nil, &ParseError{File: filename, Line: diagLine(diags), Err: errors.Errorf("parsing HCL: %s", diags.Error())}
	}

	attrs, diags := hclFile.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, nil, &ParseError{File: filename, Line: diagLine(diags), Err: errors.Errorf("decoding HCL: %s", diags.Error())}
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Line < ordered[j].Range.Start.Line
	})

	settings := Defaults()
	var warnings []*Warning
	for _, attr := range ordered {
		key := strings.ToLower(attr.Name)
		line := attr.Range.Start.Line
		text := string(attr.Range.SliceBytes(data))

		fail := func(err error) (*Settings, []*Warning, error) {
			return nil, warnings, &ParseError{File: filename, Line: line, Text: text, Key: key, Err: err}
		}

		switch key {
		case keyUseTabs:
			var value string
			if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &value); diags.HasErrors() {
				return fail(errors.New(diags.Error()))
			}
			b, err := parseBool(value)
			if err != nil {
				return fail(err)
			}
			settings.UseTabs = b
		case keyExpandedSpaces:
			var value string
			if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &value); diags.HasErrors() {
				return fail(errors.New(diags.Error()))
			}
			n, err := parseSpaces(value)
			if err != nil {
				return fail(err)
			}
			settings.ExpandedSpaces = n
		case keyIgnore:
			var patterns []string
			if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &patterns); diags.HasErrors() {
				return fail(errors.New(diags.Error()))
			}
			settings.Ignore = append(settings.Ignore, patterns...)
		default:
			warnings = append(warnings, &Warning{File: filename, Line: line, Text: text, Reason: "invalid setting"})
		}
	}

	return settings, warnings, nil
}

func diagLine(diags hcl.Diagnostics) int {
	for _, d := range diags {
		if d.Subject != nil {
			return d.Subject.Start.Line
		}
	}
	return 0
}
