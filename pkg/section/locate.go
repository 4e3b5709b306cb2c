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
	"strings"
)

// 📍 Bounds is the half-open range [Start, End) of replaceable lines.
// Start is the line after the marker line, End is the closing line.
type Bounds struct {
	Marker int // index of the marker line
	Start  int
	End    int
}

// Len returns the number of lines inside the region
func (b Bounds) Len() int {
	return b.End - b.Start
}

// 🔍 Locate finds the region introduced by the first line that contains all
// markers. The region ends at the first later line whose trimmed text starts
// with ")". Neither the marker line nor the closing line is part of the region.
//
// Later lines carrying the markers (e.g. "add_executable( dataset ${SRCS} )")
// are ignored unless they sit inside the region, in which case it is
// impossible to tell which line opens the list.
func Locate(lines []string, markers []string) (Bounds, error) {
	marker := -1
	for i, line := range lines {
		if containsAll(line, markers) {
			marker = i
			break
		}
	}
	if marker < 0 {
		return Bounds{}, &RegionNotFoundError{Markers: markers, Reason: ReasonMarkerMissing}
	}

	start := marker + 1
	for i := start; i < len(lines); i++ {
		if isClosing(lines[i]) {
			return Bounds{Marker: marker, Start: start, End: i}, nil
		}
		if containsAll(lines[i], markers) {
			return Bounds{}, &RegionNotFoundError{
				Markers: markers,
				Reason:  ReasonMarkerAmbiguous,
				Line:    i + 1,
				Text:    strings.TrimRight(lines[i], "\r\n"),
			}
		}
	}

	return Bounds{}, &RegionNotFoundError{
		Markers: markers,
		Reason:  ReasonCloseMissing,
		Line:    marker + 1,
		Text:    strings.TrimRight(lines[marker], "\r\n"),
	}
}

func containsAll(line string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !strings.Contains(line, m) {
			return false
		}
	}
	return true
}

func isClosing(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ")")
}

// ✂️ Replace returns a new slice with lines[b.Start:b.End] swapped for repl.
// lines itself is left untouched.
func Replace(lines []string, b Bounds, repl []string) []string {
	out := make([]string, 0, len(lines)-b.Len()+len(repl))
	out = append(out, lines[:b.Start]...)
	out = append(out, repl...)
	out = append(out, lines[b.End:]...)
	return out
}
