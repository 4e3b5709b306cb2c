package log

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger gives friendly feedback while a project is scaffolded
type UserLogger struct {
	log    zerolog.Logger // for debug/error logging
	writer io.Writer      // nil means pterm's default output
}

// 🎨 EntryKind is the kind of filesystem entry that was created
type EntryKind int

const (
	EntryDirectory EntryKind = iota
	EntryFile
)

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// WithWriter sends the printed output to w instead of stdout
func (u *UserLogger) WithWriter(w io.Writer) *UserLogger {
	return &UserLogger{log: u.log, writer: w}
}

func (u *UserLogger) printer(p pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	pp := p.WithPrefix(pterm.Prefix{Text: prefix, Style: p.Prefix.Style})
	if u.writer != nil {
		pp = pp.WithWriter(u.writer)
	}
	return pp
}

// 📝 LogCreated logs a created file or directory
func (u *UserLogger) LogCreated(kind EntryKind, path string) {
	prefix, action := "📁", "Created directory"
	if kind == EntryFile {
		prefix, action = "✨", "Created"
	}

	msg := fmt.Sprintf("%s %s", action, filepath.ToSlash(path))
	u.printer(pterm.Success, prefix).Println(msg)
	u.log.Info().Str("path", path).Msg(action)
}

// 🎉 LogDone prints the closing hint after a project was created
func (u *UserLogger) LogDone(name, path string) {
	msg := fmt.Sprintf("Done! Use `cd %s` to navigate to %s.", path, name)
	u.printer(pterm.Success, "🎉").Println(msg)
	u.log.Info().Str("name", name).Str("path", path).Msg("project created")
}

// ❌ LogFailure prints a failure with its cause
func (u *UserLogger) LogFailure(description string, err error) {
	u.printer(pterm.Error, "❌").Println(description)
	if err != nil {
		u.printer(pterm.Error, "").Println(err)
	}
	u.log.Error().Err(err).Msg(description)
}
