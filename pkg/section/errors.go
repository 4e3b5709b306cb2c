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

package section

import (
	"fmt"
	"strings"
)

// Reason says why a region could not be resolved
type Reason int

const (
	ReasonMarkerMissing   Reason = iota // no line carries every marker
	ReasonMarkerAmbiguous               // another marker line sits inside the region
	ReasonCloseMissing                  // no ")" line after the marker line
)

func (r Reason) String() string {
	switch r {
	case ReasonMarkerMissing:
		return "marker line not found"
	case ReasonMarkerAmbiguous:
		return "marker line is ambiguous"
	case ReasonCloseMissing:
		return "closing line not found"
	default:
		return "unknown"
	}
}

// ❌ RegionNotFoundError is returned when a region can not be located
type RegionNotFoundError struct {
	Region  string   // Region name, filled in by Rewrite
	Markers []string // Marker tokens searched for
	Reason  Reason
	Line    int    // 1-based line of the offending marker line, 0 when none
	Text    string // Text of that line
}

func (e *RegionNotFoundError) Error() string {
	name := e.Region
	if name == "" {
		name = strings.Join(e.Markers, " ")
	}
	if e.Line == 0 {
		return fmt.Sprintf("region %s: %s (markers %q)", name, e.Reason, e.Markers)
	}
	return fmt.Sprintf("region %s: %s at line %d: %s", name, e.Reason, e.Line, e.Text)
}
