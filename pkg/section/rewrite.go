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

// Package section locates the file lists of a build file and replaces their
// contents with freshly discovered entries.
package section

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/np/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 📦 Region is one list inside the build file
type Region struct {
	Name      string   // Human readable name, e.g. "sources"
	Directory string   // Project subdirectory whose files fill the list
	Markers   []string // Tokens that must all appear on the line opening the list
}

// 🗂️ DefaultRegions returns the sources and headers regions, in processing order
func DefaultRegions() []Region {
	return []Region{
		{Name: "sources", Directory: "src", Markers: []string{"set", "SRCS"}},
		{Name: "headers", Directory: "include", Markers: []string{"set", "HDR"}},
	}
}

// 🔌 Discoverer produces the list entries of one project subdirectory
type Discoverer interface {
	Discover(ctx context.Context, subdir string, settings *config.Settings) ([]string, error)
}

// 📝 Change records what happened to one region
type Change struct {
	Region Region
	Bounds Bounds   // Bounds in the buffer the region was located in
	Old    []string // Lines removed
	New    []string // Lines inserted
}

// Modified reports whether the region content changed
func (c Change) Modified() bool {
	if len(c.Old) != len(c.New) {
		return true
	}
	for i := range c.Old {
		if c.Old[i] != c.New[i] {
			return true
		}
	}
	return false
}

// Added and Removed count entries by value, ignoring order
func (c Change) Added() int {
	return countMissing(c.New, c.Old)
}

func (c Change) Removed() int {
	return countMissing(c.Old, c.New)
}

func countMissing(from, in []string) int {
	have := make(map[string]int, len(in))
	for _, l := range in {
		have[l]++
	}
	n := 0
	for _, l := range from {
		if have[l] > 0 {
			have[l]--
			continue
		}
		n++
	}
	return n
}

// 🎯 Rewrite replaces the content of every region with the discoverer's lines.
//
// Regions are handled in order. Each one is located again from the top of the
// buffer produced by the previous region, so no index survives a splice.
// The input slice is never modified. On any error nothing is returned, which
// lets the caller skip the write entirely.
func Rewrite(ctx context.Context, lines []string, regions []Region, settings *config.Settings, d Discoverer) ([]string, []Change, error) {
	logger := zerolog.Ctx(ctx)

	if d == nil {
		return nil, nil, errors.New("discoverer is required")
	}

	buf := lines
	changes := make([]Change, 0, len(regions))

	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Errorf("rewrite cancelled: %w", err)
		}

		bounds, err := Locate(buf, region.Markers)
		if err != nil {
			var rerr *RegionNotFoundError
			if errors.As(err, &rerr) {
				rerr.Region = region.Name
			}
			return nil, nil, err
		}

		logger.Debug().
			Str("region", region.Name).
			Int("marker_line", bounds.Marker+1).
			Int("start", bounds.Start).
			Int("end", bounds.End).
			Msg("located region")

		fresh, err := d.Discover(ctx, region.Directory, settings)
		if err != nil {
			return nil, nil, errors.Errorf("discovering %s in %s: %w", region.Name, region.Directory, err)
		}

		old := make([]string, bounds.Len())
		copy(old, buf[bounds.Start:bounds.End])

		buf = Replace(buf, bounds, fresh)
		changes = append(changes, Change{
			Region: region,
			Bounds: bounds,
			Old:    old,
			New:    fresh,
		})
	}

	if len(regions) == 0 {
		buf = append([]string(nil), lines...)
	}

	return buf, changes, nil
}
