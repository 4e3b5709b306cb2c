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

package project

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/np/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func chdir(t *testing.T, dir string) {
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// listTree returns every entry below root, slash separated and sorted
func listTree(t *testing.T, root string) []string {
	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		if rel != "." {
			entries = append(entries, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(entries)
	return entries
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		wantDir       string
		wantLanguages string
	}{
		{
			name:          "name_is_path",
			opts:          Options{Name: "demo"},
			wantDir:       "demo",
			wantLanguages: "C/CXX",
		},
		{
			name:          "explicit_path",
			opts:          Options{Name: "demo", Path: "elsewhere"},
			wantDir:       "elsewhere",
			wantLanguages: "C/CXX",
		},
		{
			name:          "language_forwarded",
			opts:          Options{Name: "tool", Language: "CXX"},
			wantDir:       "tool",
			wantLanguages: "CXX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestLogger(t)
			base := t.TempDir()
			if tt.opts.Path != "" {
				tt.opts.Path = filepath.Join(base, tt.opts.Path)
			} else {
				chdir(t, base)
			}

			result, err := Initialize(ctx, tt.opts)
			require.NoError(t, err)

			assert.Equal(t, []string{
				tt.wantDir,
				tt.wantDir + "/CMakeLists.txt",
				tt.wantDir + "/include",
				tt.wantDir + "/src",
			}, listTree(t, base))
			assert.Len(t, result.Created, 4)

			content, err := os.ReadFile(result.BuildFile)
			require.NoError(t, err)
			assert.NotContains(t, string(content), "%project_name%")
			assert.NotContains(t, string(content), "%languages%")
			assert.Contains(t, string(content), "project ( "+tt.opts.Name+" LANGUAGES "+tt.wantLanguages+" )")
			assert.Contains(t, string(content), "add_executable( "+tt.opts.Name+" ${SRCS} ${HDRS} )")
			assert.Contains(t, string(content), "target_include_directories( "+tt.opts.Name+" PRIVATE include )")
		})
	}
}

func TestInitializeTargetExists(t *testing.T) {
	ctx := setupTestLogger(t)
	base := t.TempDir()
	target := filepath.Join(base, "demo")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0644))

	before := listTree(t, base)

	result, err := Initialize(ctx, Options{Name: "demo", Path: target})
	require.Error(t, err)
	assert.Nil(t, result)

	var terr *TargetExistsError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, target, terr.Path)
	assert.Equal(t, before, listTree(t, base), "filesystem must be unchanged")
}

func TestInitializeTargetIsFile(t *testing.T) {
	ctx := setupTestLogger(t)
	target := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	_, err := Initialize(ctx, Options{Name: "demo", Path: target})
	var terr *TargetExistsError
	require.True(t, errors.As(err, &terr))
}

func TestInitializeRequiresName(t *testing.T) {
	_, err := Initialize(setupTestLogger(t), Options{})
	require.Error(t, err)
}

func TestInitializeMissingParentIsNotCreated(t *testing.T) {
	ctx := setupTestLogger(t)
	base := t.TempDir()

	_, err := Initialize(ctx, Options{Name: "demo", Path: filepath.Join(base, "missing", "demo")})
	require.Error(t, err)
	assert.Empty(t, listTree(t, base))
}

func TestRender(t *testing.T) {
	ctx := setupTestLogger(t)

	got, err := Render(ctx, DefaultTemplate, "demo", "C")
	require.NoError(t, err)

	rules := []text.ReplacementRule{{FromText: PlaceholderName}, {FromText: PlaceholderLanguages}}
	assert.Empty(t, text.Unresolved(got, rules))
	assert.Equal(t, 4, strings.Count(string(got), "demo"))
	assert.True(t, strings.HasPrefix(string(got), "#\n# demo CMakeLists.txt\n#\n"))
	assert.Contains(t, string(got), "set ( SRCS \n  # project sources\n)\nset ( HDRS\n  # project headers\n)\n")
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "c", want: "C"},
		{in: "C", want: "C"},
		{in: "cxx", want: "CXX"},
		{in: "CxX", want: "CXX"},
		{in: "rust", wantErr: true},
		{in: "C/CXX", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateLanguage(tt.in)
			if tt.wantErr {
				var lerr *UnsupportedLanguageError
				require.True(t, errors.As(err, &lerr))
				assert.Equal(t, tt.in, lerr.Language)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
