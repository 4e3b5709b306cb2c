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
	"fmt"
	"strings"
)

// DefaultLanguages is the LANGUAGES value used when no language is selected
const DefaultLanguages = "C/CXX"

// SupportedLanguages are the values accepted by ValidateLanguage, lower case
var SupportedLanguages = []string{"c", "cxx"}

// ❌ UnsupportedLanguageError is returned by ValidateLanguage
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %s not supported, options are 'C' or 'CXX'", e.Language)
}

// 🔍 ValidateLanguage checks lang against SupportedLanguages, ignoring case,
// and returns the upper-case tag written into the template
func ValidateLanguage(lang string) (string, error) {
	lower := strings.ToLower(lang)
	for _, l := range SupportedLanguages {
		if lower == l {
			return strings.ToUpper(lower), nil
		}
	}
	return "", &UnsupportedLanguageError{Language: lang}
}
