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

// Package project creates new project skeletons.
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Subdirectories are created inside every new project
var Subdirectories = []string{"src", "include"}

// ❌ TargetExistsError is returned when the project directory is already there
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("file path %s already exists", e.Path)
}

// 🔧 Options configures Initialize
type Options struct {
	// Name is the project name written into the template
	Name string
	// Path is the directory to create; Name is used when empty
	Path string
	// Language is the LANGUAGES value; DefaultLanguages when empty.
	// It is not validated here, see ValidateLanguage.
	Language string
	// Template overrides DefaultTemplate
	Template string
}

// 📦 Result describes what Initialize created
type Result struct {
	Path      string   // Project directory
	BuildFile string   // Path of the written build file
	Created   []string // Every directory and file created, in order
}

// 🏗️ Initialize creates the project directory, its subdirectories and the build file.
//
// Nothing is touched when the target exists. Creation is not transactional:
// if writing the build file fails the directories stay in place.
func Initialize(ctx context.Context, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if opts.Name == "" {
		return nil, errors.New("project name is required")
	}

	target := opts.Path
	if target == "" {
		target = opts.Name
	}
	languages := opts.Language
	if languages == "" {
		languages = DefaultLanguages
	}
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}

	if _, err := os.Lstat(target); err == nil {
		return nil, &TargetExistsError{Path: target}
	} else if !os.IsNotExist(err) {
		return nil, errors.Errorf("checking target: %w", err)
	}

	// render before touching the filesystem so a bad template creates nothing
	content, err := Render(ctx, tmpl, opts.Name, languages)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: target}

	if err := os.Mkdir(target, 0755); err != nil {
		return nil, errors.Errorf("creating %s: %w", target, err)
	}
	result.Created = append(result.Created, target)
	logger.Debug().Str("path", target).Msg("created project directory")

	for _, sub := range Subdirectories {
		dir := filepath.Join(target, sub)
		if err := os.Mkdir(dir, 0755); err != nil {
			return result, errors.Errorf("creating %s: %w", dir, err)
		}
		result.Created = append(result.Created, dir)
		logger.Debug().Str("path", dir).Msg("created directory")
	}

	buildFile := filepath.Join(target, BuildFileName)
	if err := writeFile(buildFile, content); err != nil {
		return result, err
	}
	result.BuildFile = buildFile
	result.Created = append(result.Created, buildFile)

	logger.Info().
		Str("name", opts.Name).
		Str("path", target).
		Str("languages", languages).
		Msg("project created")

	return result, nil
}

func writeFile(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return errors.Errorf("syncing %s: %w", path, err)
	}
	return nil
}
