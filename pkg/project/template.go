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

package project

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/np/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	// BuildFileName is the build description written at the project root
	BuildFileName = "CMakeLists.txt"

	// PlaceholderName and PlaceholderLanguages are replaced literally, without escaping.
	// A project name that itself contains one of them renders incorrectly.
	PlaceholderName      = "%project_name%"
	PlaceholderLanguages = "%languages%"
)

// DefaultTemplate is the CMakeLists.txt skeleton of a new project.
// The "set ( SRCS" and "set ( HDRS" lists are the regions np update maintains.
const DefaultTemplate = `#
# %project_name% CMakeLists.txt
#

project ( %project_name% LANGUAGES %languages% )

cmake_minimum_required( VERSION 3.18 )

set ( SRCS 
  # project sources
)
set ( HDRS
  # project headers
)

add_executable( %project_name% ${SRCS} ${HDRS} )
target_include_directories( %project_name% PRIVATE include )
`

// 🖨️ Render substitutes the project name and language tag into tmpl
func Render(ctx context.Context, tmpl, name, languages string) ([]byte, error) {
	rules := []text.ReplacementRule{
		{FromText: PlaceholderName, ToText: name},
		{FromText: PlaceholderLanguages, ToText: languages},
	}

	result, err := text.NewSimpleTextReplacer().ReplaceText(ctx, bytes.NewReader([]byte(tmpl)), rules)
	if err != nil {
		return nil, errors.Errorf("rendering template: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("replacements", result.ReplacementCount).Msg("rendered template")

	return result.ModifiedContent, nil
}
