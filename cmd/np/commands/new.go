package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/np/cmd/np/opts"
	"github.com/walteh/np/pkg/log"
	"github.com/walteh/np/pkg/project"
	"gitlab.com/tozd/go/errors"
)

// NewArgs are the inputs of project creation
type NewArgs struct {
	Name     string
	Path     string
	Language string
}

// NewNewCmd creates a new new command
func NewNewCmd(opts *opts.RootOpts) *cobra.Command {
	args := &NewArgs{}

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a new CMake project",
		Long: `New scaffolds a CMake project.
It will:
1. Create the project directory (NAME, or --filepath)
2. Create the src and include subdirectories
3. Write a CMakeLists.txt with empty SRCS and HDRS lists`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			args.Name = a[0]
			return RunNew(cmd.Context(), opts, *args)
		},
	}

	cmd.Flags().StringVarP(&args.Path, "filepath", "f", "", "directory to create (defaults to NAME)")
	cmd.Flags().StringVarP(&args.Language, "language", "l", "", "project language, 'C' or 'CXX' (defaults to both)")

	return cmd
}

// RunNew validates the language and creates the project
func RunNew(ctx context.Context, opts *opts.RootOpts, args NewArgs) error {
	languages := ""
	if args.Language != "" {
		lang, err := project.ValidateLanguage(args.Language)
		if err != nil {
			opts.UserLogger(ctx).LogFailure("Invalid language", err)
			return &ExitError{Code: 1, Err: err}
		}
		languages = lang
	}

	display := args.Path
	if display == "" {
		display = args.Name
	}
	target := display
	if !filepath.IsAbs(target) {
		target = filepath.Join(opts.ProjectDir(), target)
	}

	result, err := project.Initialize(ctx, project.Options{
		Name:     args.Name,
		Path:     target,
		Language: languages,
	})
	u := opts.UserLogger(ctx)
	if err != nil {
		u.LogFailure("Could not create project "+args.Name, err)
		return &ExitError{Code: 1, Err: errors.Errorf("creating project %s: %w", args.Name, err)}
	}

	for _, created := range result.Created {
		kind := log.EntryDirectory
		if created == result.BuildFile {
			kind = log.EntryFile
		}
		u.LogCreated(kind, created)
	}
	u.LogDone(args.Name, display)

	return nil
}
