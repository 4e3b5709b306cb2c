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

package discover

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

type walkState struct {
	ctx       context.Context
	ignore    []string
	ancestors map[string]struct{} // resolved directories on the current recursion path
	files     []string
}

// walk returns the slash-separated paths, relative to root/subdir, of every
// matching file. Files of a directory come before its subdirectories.
// Directory symlinks are followed, so a directory reached through two links
// is listed under both paths. A link back to a directory on the current path
// is skipped.
func walk(ctx context.Context, root, subdir string, ignore []string) ([]string, error) {
	base := filepath.Join(root, subdir)

	info, err := os.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	ws := &walkState{
		ctx:       ctx,
		ignore:    ignore,
		ancestors: make(map[string]struct{}),
	}
	if err := ws.visit(base, "", true); err != nil {
		return nil, err
	}
	return ws.files, nil
}

func (ws *walkState) visit(dir, rel string, isRoot bool) error {
	logger := zerolog.Ctx(ws.ctx)

	if err := ws.ctx.Err(); err != nil {
		return errors.Errorf("walk cancelled: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if _, loop := ws.ancestors[resolved]; loop {
		logger.Debug().Str("dir", dir).Msg("symlink loop, skipping")
		return nil
	}
	ws.ancestors[resolved] = struct{}{}
	defer delete(ws.ancestors, resolved)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			return errors.Errorf("reading directory: %w", err)
		}
		logger.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return nil
	}

	var subdirs []fs.DirEntry
	for _, entry := range entries {
		childRel := path.Join(rel, entry.Name())
		if ws.ignored(childRel) {
			logger.Debug().Str("path", childRel).Msg("ignored")
			continue
		}
		if ws.isDir(filepath.Join(dir, entry.Name()), entry) {
			subdirs = append(subdirs, entry)
			continue
		}
		if Matches(entry.Name()) {
			ws.files = append(ws.files, childRel)
		}
	}

	for _, entry := range subdirs {
		if err := ws.visit(filepath.Join(dir, entry.Name()), path.Join(rel, entry.Name()), false); err != nil {
			return err
		}
	}

	return nil
}

// isDir resolves symlinks; a dangling link counts as a file
func (ws *walkState) isDir(full string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ignored matches rel against the ignore globs. Patterns without a slash
// also match the base name at any depth.
func (ws *walkState) ignored(rel string) bool {
	for _, pattern := range ws.ignore {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.Match(pattern, path.Base(rel)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
