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

package operation

import (
	"context"

	"github.com/walteh/np/pkg/config"
	"github.com/walteh/np/pkg/discover"
	"github.com/walteh/np/pkg/project"
	"github.com/walteh/np/pkg/section"
	"github.com/walteh/np/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrBuildFileMissing is returned when the project directory has no build file
var ErrBuildFileMissing = errors.Base("build file missing")

// 🎯 Operator defines the main interface for np operations
type Operator interface {
	// Update rewrites the file lists of the build file
	Update(ctx context.Context) (*Report, error)
	// Status is Update without the write, indicating if the file lists are stale
	Status(ctx context.Context) (*Report, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Dir is the project directory, "." when empty
	Dir string
	// BuildFile is the build file name inside Dir, CMakeLists.txt when empty
	BuildFile string
	// Regions are the lists to rewrite, section.DefaultRegions() when nil
	Regions []section.Region
	// Discoverer produces region entries, a discover.Walker on Dir when nil
	Discoverer section.Discoverer
	// DryRun computes the report without writing
	DryRun bool
}

// 📊 Report describes the outcome of one run
type Report struct {
	BuildFile string            // Path of the build file, relative to Dir
	Settings  *config.Settings  // Settings the run used
	Warnings  []*config.Warning // Skipped settings lines
	Changes   []section.Change  // One entry per region, in order
	Diff      string            // Unified diff of the build file, "" when unchanged
	Modified  bool              // Whether the rewritten buffer differs from the file
	Written   bool              // Whether the file on disk was replaced
}

// InSync reports whether the build file already lists the current tree
func (r *Report) InSync() bool {
	return !r.Modified
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.BuildFile == "" {
		opts.BuildFile = project.BuildFileName
	}
	if opts.Regions == nil {
		opts.Regions = section.DefaultRegions()
	}
	if len(opts.Regions) == 0 {
		return nil, errors.Errorf("at least one region is required")
	}
	if opts.Discoverer == nil {
		opts.Discoverer = discover.NewWalker(opts.Dir)
	}

	return &operator{
		dir:        opts.Dir,
		buildFile:  opts.BuildFile,
		regions:    opts.Regions,
		discoverer: opts.Discoverer,
		dryRun:     opts.DryRun,
		files:      status.NewFiles(opts.Dir),
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	dir        string
	buildFile  string
	regions    []section.Region
	discoverer section.Discoverer
	dryRun     bool
	files      *status.Files
}

// Update and Status are implemented in update.go
