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

// Package discover collects the source and header files of a project
// subdirectory and formats them as build file list entries.
package discover

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/np/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// Extensions are the name suffixes that make a file part of the lists.
// Only ".c" carries its dot, so "foo.cpp" and "xcpp" both match.
var Extensions = []string{".c", "cpp", "cxx", "h", "hpp", "hxx"}

// SourcesDir is the subdirectory whose fallback comment reads "# project sources"
const SourcesDir = "src"

// 🔍 Matches reports whether name ends with one of the recognized extensions
func Matches(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// 📝 FormatLine returns one list entry: indentation, subdir/rel, newline
func FormatLine(subdir, rel string, settings *config.Settings) string {
	rel = strings.ReplaceAll(rel, "\\", "/")
	return settings.Indent() + subdir + "/" + rel + "\n"
}

// 📝 FallbackLine returns the comment written when subdir holds no matching files
func FallbackLine(subdir string, settings *config.Settings) string {
	kind := "headers"
	if subdir == SourcesDir {
		kind = "sources"
	}
	return settings.Indent() + "# project " + kind + "\n"
}

// 🎯 Discover walks root/subdir and returns one formatted line per matching file,
// in walk order. It never returns an empty slice: with no matches the single
// fallback comment line is returned.
func Discover(ctx context.Context, root, subdir string, settings *config.Settings) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if settings == nil {
		settings = config.Defaults()
	}

	files, err := walk(ctx, root, subdir, settings.Ignore)
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", subdir, err)
	}

	lines := make([]string, 0, len(files))
	for _, rel := range files {
		lines = append(lines, FormatLine(subdir, rel, settings))
	}

	if len(lines) == 0 {
		logger.Debug().Str("dir", subdir).Msg("no matching files, writing placeholder")
		lines = append(lines, FallbackLine(subdir, settings))
	}

	logger.Debug().Str("dir", subdir).Int("files", len(files)).Msg("discovered files")

	return lines, nil
}

// 🚶 Walker discovers files relative to a fixed project root
type Walker struct {
	Root string
}

// 🏭 NewWalker creates a walker rooted at the project directory
func NewWalker(root string) *Walker {
	return &Walker{Root: root}
}

// Discover implements section.Discoverer
func (w *Walker) Discover(ctx context.Context, subdir string, settings *config.Settings) ([]string, error) {
	return Discover(ctx, w.Root, subdir, settings)
}
