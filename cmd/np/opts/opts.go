package opts

import (
	"context"
	"io"
	"os"

	"github.com/walteh/np/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Dir   string    // Working directory, "." when empty
	Debug bool      // Enables debug logging
	Out   io.Writer // Console output, stdout when nil
}

// ProjectDir returns the directory commands operate on
func (o *RootOpts) ProjectDir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

func (o *RootOpts) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Console returns the logger used for update and status output
func (o *RootOpts) Console(ctx context.Context) *log.Logger {
	return log.New(ctx, o.out())
}

// UserLogger returns the logger used for project creation feedback
func (o *RootOpts) UserLogger(ctx context.Context) *log.UserLogger {
	return log.NewUserLogger(ctx).WithWriter(o.out())
}
