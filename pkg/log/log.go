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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/np/pkg/section"
	"github.com/walteh/np/pkg/status"
)

// 🎨 Display configuration
const (
	regionIndent = 2 // spaces to indent region lines
)

// 🎯 Logger prints user facing progress to the console and mirrors every
// message to the zerolog logger
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.RegionFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger writing to console, mirroring to the context logger
func New(ctx context.Context, console io.Writer) *Logger {
	return &Logger{
		zlog:      *zerolog.Ctx(ctx),
		console:   console,
		formatter: status.NewDefaultRegionFormatter(),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, falling back to stdout
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(ctx, os.Stdout)
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogRegionChange prints one region summary line
func (l *Logger) LogRegionChange(ctx context.Context, change section.Change) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%*s%s\n", regionIndent, "", l.formatter.FormatRegionChange(change))

	l.zlog.Info().
		Str("region", change.Region.Name).
		Str("directory", change.Region.Directory).
		Int("entries", len(change.New)).
		Int("added", change.Added()).
		Int("removed", change.Removed()).
		Bool("modified", change.Modified()).
		Msg("region rewritten")
}

// 📝 LogFileResult prints what happened to the build file
func (l *Logger) LogFileResult(ctx context.Context, path string, modified, written bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatFileResult(path, modified, written))

	l.zlog.Info().
		Str("file", path).
		Bool("modified", modified).
		Bool("written", written).
		Msg("build file processed")
}

// 📝 Diff prints a unified diff, colored when the console supports it
func (l *Logger) Diff(diff string) {
	if diff == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, status.ColorizeDiff(diff))
}

// 📝 LogError prints a failed command
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(l.formatter.FormatError(err)))
	l.zlog.Error().Err(err).Msg("command failed")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	npText := color.New(color.Bold, color.FgCyan).Sprint("np")
	fmt.Fprintf(l.console, "\n%s %s\n\n", npText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
