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

package status

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffContext is the number of unchanged lines shown around each hunk
const DiffContext = 3

// 🔍 Diff returns a unified diff between two buffers, or "" when they are equal
func Diff(name string, before, after []string) string {
	if equalLines(before, after) {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        terminated(before),
		B:        terminated(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  DiffContext,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		// difflib only fails on writer errors, which a string builder never returns
		return ""
	}
	return text
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// terminated makes sure the last line ends with a newline, so the diff output
// stays line oriented
func terminated(lines []string) []string {
	if len(lines) == 0 || strings.HasSuffix(lines[len(lines)-1], "\n") {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[len(out)-1] += "\n"
	return out
}

// 🎨 ColorizeDiff colors added, removed and hunk header lines of a unified diff
func ColorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)
	header := color.New(color.Bold)

	var sb strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			sb.WriteString(header.Sprint(body))
		case strings.HasPrefix(body, "@@"):
			sb.WriteString(hunk.Sprint(body))
		case strings.HasPrefix(body, "+"):
			sb.WriteString(add.Sprint(body))
		case strings.HasPrefix(body, "-"):
			sb.WriteString(del.Sprint(body))
		default:
			sb.WriteString(body)
		}
		sb.WriteString(nl)
	}
	return sb.String()
}
