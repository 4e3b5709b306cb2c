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

	"github.com/rs/zerolog"
	"github.com/walteh/np/pkg/config"
	"github.com/walteh/np/pkg/section"
	"github.com/walteh/np/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Update rewrites every region and writes the build file back in one piece
func (o *operator) Update(ctx context.Context) (*Report, error) {
	return o.run(ctx, !o.dryRun)
}

// 🔍 Status computes the same report as Update but never writes
func (o *operator) Status(ctx context.Context) (*Report, error) {
	return o.run(ctx, false)
}

func (o *operator) run(ctx context.Context, write bool) (*Report, error) {
	logger := zerolog.Ctx(ctx).With().Str("dir", o.dir).Str("build_file", o.buildFile).Logger()

	exists, err := o.files.FileExists(ctx, o.buildFile)
	if err != nil {
		return nil, errors.Errorf("checking build file: %w", err)
	}
	if !exists {
		return nil, errors.Errorf("%s in %s: %w", o.buildFile, o.dir, ErrBuildFileMissing)
	}

	settings, warnings, err := config.Load(ctx, o.dir)
	if err != nil {
		return nil, errors.Errorf("loading settings: %w", err)
	}

	before, err := o.files.ReadLines(ctx, o.buildFile)
	if err != nil {
		return nil, errors.Errorf("reading build file: %w", err)
	}

	after, changes, err := section.Rewrite(ctx, before, o.regions, settings, o.discoverer)
	if err != nil {
		return nil, errors.Errorf("rewriting %s: %w", o.buildFile, err)
	}

	oldContent := section.JoinLines(before)
	newContent := section.JoinLines(after)

	report := &Report{
		BuildFile: o.buildFile,
		Settings:  settings,
		Warnings:  warnings,
		Changes:   changes,
		Modified:  oldContent != newContent,
	}
	if report.Modified {
		report.Diff = status.Diff(o.buildFile, before, after)
	}

	logger.Debug().
		Bool("modified", report.Modified).
		Bool("write", write).
		Int("regions", len(changes)).
		Msg("rewrite complete")

	if !write || !report.Modified {
		return report, nil
	}

	if err := o.files.WriteFileAtomic(ctx, o.buildFile, []byte(newContent)); err != nil {
		return nil, errors.Errorf("writing build file: %w", err)
	}
	report.Written = true

	logger.Info().Msg("build file updated")

	return report, nil
}
