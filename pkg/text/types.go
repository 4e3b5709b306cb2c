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

// Package text renders templates by literal placeholder substitution.
package text

// ReplacementRule substitutes every occurrence of a placeholder
type ReplacementRule struct {
	// FromText is the placeholder, e.g. "%project_name%"
	FromText string

	// ToText is inserted verbatim, without any escaping
	ToText string
}

// ReplacementResult contains the results of a substitution run
type ReplacementResult struct {
	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}
