package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/np/cmd/np/opts"
	"github.com/walteh/np/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check if the file lists of CMakeLists.txt are up to date",
		Long: `Status compares the SRCS and HDRS lists with the project tree.
It will:
1. Run the same rewrite as update, in memory
2. Report the changes per list
3. Exit with status 1 when the build file is out of sync`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			con := opts.Console(ctx)
			con.Header("checking file lists")

			op, err := operation.New(operation.Options{Dir: opts.ProjectDir()})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			report, err := op.Status(ctx)
			if err != nil {
				if errors.Is(err, operation.ErrBuildFileMissing) {
					reportMissingBuildFile(con)
					return &ExitError{Code: 1}
				}
				return errors.Errorf("checking status: %w", err)
			}

			printReport(ctx, con, report, showDiff)

			if !report.InSync() {
				con.Warning("File lists are out of date, run `np update`")
				return &ExitError{Code: 1}
			}
			con.Successf("%s is up to date", report.BuildFile)

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff of the pending changes")

	return cmd
}
