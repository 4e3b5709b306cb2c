package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/np/cmd/np/opts"
	"github.com/walteh/np/pkg/log"
	"github.com/walteh/np/pkg/operation"
	"github.com/walteh/np/pkg/project"
	"gitlab.com/tozd/go/errors"
)

// UpdateArgs are the inputs of an update run
type UpdateArgs struct {
	DryRun   bool
	ShowDiff bool
}

// NewUpdateCmd creates a new update command
func NewUpdateCmd(opts *opts.RootOpts) *cobra.Command {
	args := &UpdateArgs{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh the SRCS and HDRS lists of CMakeLists.txt",
		Long: `Update rewrites the file lists of the CMakeLists.txt in the working directory.
It will:
1. Load the .np settings, if any
2. List the source files under src and the headers under include
3. Replace the contents of the SRCS and HDRS lists
4. Write the file back, only if every list was found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, a []string) error {
			return RunUpdate(cmd.Context(), opts, *args)
		},
	}

	cmd.Flags().BoolVar(&args.DryRun, "dry-run", false, "show what would change without writing")
	cmd.Flags().BoolVar(&args.ShowDiff, "diff", false, "print a unified diff of the changes")

	return cmd
}

// RunUpdate rewrites the build file in the working directory
func RunUpdate(ctx context.Context, opts *opts.RootOpts, args UpdateArgs) error {
	con := opts.Console(ctx)
	con.Header("updating file lists")

	op, err := operation.New(operation.Options{Dir: opts.ProjectDir(), DryRun: args.DryRun})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	report, err := op.Update(ctx)
	if err != nil {
		if errors.Is(err, operation.ErrBuildFileMissing) {
			reportMissingBuildFile(con)
			return &ExitError{Code: 1}
		}
		return errors.Errorf("updating file lists: %w", err)
	}

	printReport(ctx, con, report, args.ShowDiff || args.DryRun)
	if args.DryRun && report.Modified {
		con.Infof("Dry run, %s was not written", report.BuildFile)
	}

	return nil
}

func reportMissingBuildFile(con *log.Logger) {
	con.Errorf("Current directory does not have a %s", project.BuildFileName)
}

func printReport(ctx context.Context, con *log.Logger, report *operation.Report, showDiff bool) {
	for _, w := range report.Warnings {
		con.Warningf("%s: skipped %s", w.File, w)
	}
	for _, change := range report.Changes {
		con.LogRegionChange(ctx, change)
	}
	if showDiff {
		con.Diff(report.Diff)
	}
	con.LogFileResult(ctx, report.BuildFile, report.Modified, report.Written)
}
