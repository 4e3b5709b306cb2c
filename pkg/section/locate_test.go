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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		markers    []string
		want       Bounds
		wantReason *Reason
		wantLine   int
	}{
		{
			name:    "template_sources",
			content: "project ( x )\nset ( SRCS \n  # project sources\n)\nset ( HDRS\n  # project headers\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 1, Start: 2, End: 3},
		},
		{
			name:    "template_headers",
			content: "project ( x )\nset ( SRCS \n  # project sources\n)\nset ( HDRS\n  # project headers\n)\n",
			markers: []string{"set", "HDR"},
			want:    Bounds{Marker: 4, Start: 5, End: 6},
		},
		{
			name:    "token_order_irrelevant",
			content: "SRCS are set below (\n  a.c\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 2},
		},
		{
			name:    "indented_closing_line",
			content: "set(SRCS\n  a.c\n  b.c\n    )  # end\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 3},
		},
		{
			name:    "empty_region",
			content: "set(SRCS\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 1},
		},
		{
			name:    "closing_without_newline",
			content: "set(SRCS\n  a.c\n)",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 2},
		},
		{
			name:    "closing_before_marker_ignored",
			content: ")\nset(SRCS\n  a.c\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 1, Start: 2, End: 3},
		},
		{
			name:    "paren_inside_entry_not_closing",
			content: "set(SRCS\n  a(1).c\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 2},
		},
		{
			name:       "marker_missing",
			content:    "set ( HDRS\n)\n",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonMarkerMissing),
		},
		{
			name:       "marker_needs_every_token",
			content:    "SRCS\n)\n",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonMarkerMissing),
		},
		{
			name:    "later_marker_line_ignored",
			content: "set(SRCS\n)\n# set SRCS again\nset(SRCS\n)\n",
			markers: []string{"set", "SRCS"},
			want:    Bounds{Marker: 0, Start: 1, End: 1},
		},
		{
			name:    "project_name_containing_set",
			content: "set ( SRCS \n  # project sources\n)\nset ( HDRS\n  # project headers\n)\n\nadd_executable( dataset ${SRCS} ${HDRS} )\n",
			markers: []string{"set", "HDR"},
			want:    Bounds{Marker: 3, Start: 4, End: 5},
		},
		{
			name:       "marker_line_inside_region",
			content:    "set(SRCS\n  a.c\n# set SRCS note\n)\n",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonMarkerAmbiguous),
			wantLine:   3,
		},
		{
			name:       "closing_missing",
			content:    "set(SRCS\n  a.c\n",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonCloseMissing),
			wantLine:   1,
		},
		{
			name:       "closing_missing_marker_last_line",
			content:    "x\nset(SRCS",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonCloseMissing),
			wantLine:   2,
		},
		{
			name:       "no_markers_never_match",
			content:    "set(SRCS\n)\n",
			markers:    nil,
			wantReason: reasonPtr(ReasonMarkerMissing),
		},
		{
			name:       "empty_file",
			content:    "",
			markers:    []string{"set", "SRCS"},
			wantReason: reasonPtr(ReasonMarkerMissing),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(SplitLines(tt.content), tt.markers)

			if tt.wantReason != nil {
				require.Error(t, err)
				var rerr *RegionNotFoundError
				require.True(t, errors.As(err, &rerr), "error should be a RegionNotFoundError")
				assert.Equal(t, *tt.wantReason, rerr.Reason)
				assert.Equal(t, tt.wantLine, rerr.Line)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplace(t *testing.T) {
	lines := []string{"a\n", "b\n", "c\n", "d\n"}
	orig := append([]string(nil), lines...)

	got := Replace(lines, Bounds{Marker: 0, Start: 1, End: 3}, []string{"x\n", "y\n", "z\n"})

	assert.Equal(t, []string{"a\n", "x\n", "y\n", "z\n", "d\n"}, got)
	assert.Equal(t, orig, lines, "input must not be modified")

	got = Replace(lines, Bounds{Marker: 0, Start: 1, End: 1}, nil)
	assert.Equal(t, orig, got, "empty replacement of empty range is a copy")
}

func TestSplitJoinLines(t *testing.T) {
	for _, content := range []string{"", "a", "a\n", "a\nb", "a\r\nb\r\n", "\n\n"} {
		assert.Equal(t, content, JoinLines(SplitLines(content)), "round trip of %q", content)
	}
	assert.Equal(t, []string{"a\n", "b"}, SplitLines("a\nb"))
}

func reasonPtr(r Reason) *Reason {
	return &r
}
