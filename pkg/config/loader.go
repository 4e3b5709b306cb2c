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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// FileNames lists the settings files looked up in a project directory, in priority order
var FileNames = []string{".np", ".np.yaml", ".np.yml", ".np.hcl"}

// 🔌 Parser is the interface for settings parsers
type Parser interface {
	// 📝 Parse parses the settings from bytes
	Parse(ctx context.Context, filename string, data []byte) (*Settings, []*Warning, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔎 Find returns the path of the first settings file present in dir, or "" if there is none
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", errors.Errorf("checking settings file %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", nil
}

// 🎯 Load reads the settings of the project in dir.
// A missing settings file is not an error: the defaults are returned.
func Load(ctx context.Context, dir string) (*Settings, []*Warning, error) {
	logger := zerolog.Ctx(ctx)

	path, err := Find(dir)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		logger.Debug().Str("dir", dir).Msg("no settings file, using defaults")
		return Defaults(), nil, nil
	}

	logger.Debug().Str("path", path).Msg("loading settings")

	p := GetParser(path)
	if p == nil {
		return nil, nil, errors.Errorf("no parser found for file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Errorf("reading settings file: %w", err)
	}

	settings, warnings, err := p.Parse(ctx, filepath.Base(path), data)

	// warnings found before a failing line are still reported
	for _, w := range warnings {
		logger.Warn().
			Str("file", w.File).
			Int("line", w.Line).
			Str("text", w.Text).
			Str("reason", w.Reason).
			Msg("skipping settings line")
	}

	if err != nil {
		return nil, warnings, err
	}

	if err := settings.Validate(); err != nil {
		return nil, warnings, &ParseError{File: filepath.Base(path), Err: err}
	}

	logger.Debug().Stringer("settings", settings).Msg("settings loaded")

	return settings, warnings, nil
}
