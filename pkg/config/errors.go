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
)

// ❌ ParseError is returned when a recognized setting has a malformed value
type ParseError struct {
	File string // Settings file name
	Line int    // 1-based line number, 0 when unknown
	Text string // Raw line text
	Key  string // Setting key, empty when the whole file failed to decode
	Err  error  // Underlying parse failure
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	if e.Key == "" {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: invalid value for %s: %q: %v", e.File, e.Line, e.Key, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ⚠️ Warning describes a settings line that was skipped
type Warning struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s at line %d: %s", w.Reason, w.Line, w.Text)
}
