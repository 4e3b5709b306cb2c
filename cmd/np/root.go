package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/np/cmd/np/commands"
	"github.com/walteh/np/cmd/np/opts"
)

// legacyFlags are the single command flags np accepted before it grew subcommands
type legacyFlags struct {
	name     string
	update   bool
	filepath string
	language string
}

const missingActionMessage = "You must either set a name or update the current folder."

// newRootCmd creates the np command tree
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}
	legacy := &legacyFlags{}

	rootCmd := &cobra.Command{
		Use:   "np",
		Short: "Create CMake projects and keep their file lists up to date",
		Long: `np scaffolds new CMake projects and refreshes the SRCS and HDRS lists
of an existing CMakeLists.txt from the files under src and include.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rootOpts.Out = cmd.OutOrStdout()
			setupLogging(rootOpts.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// --update wins over --name

			switch {
			case legacy.update:
				return commands.RunUpdate(ctx, rootOpts, commands.UpdateArgs{})
			case legacy.name != "":
				return commands.RunNew(ctx, rootOpts, commands.NewArgs{
					Name:     legacy.name,
					Path:     legacy.filepath,
					Language: legacy.language,
				})
			default:
				fmt.Fprintln(cmd.OutOrStdout(), missingActionMessage)
				return cmd.Help()
			}
		},
	}

	addRootFlags(rootCmd.PersistentFlags(), rootOpts)
	addLegacyFlags(rootCmd.Flags(), legacy)

	rootCmd.AddCommand(
		commands.NewNewCmd(rootOpts),
		commands.NewUpdateCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(flags *pflag.FlagSet, o *opts.RootOpts) {
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.StringVarP(&o.Dir, "dir", "C", ".", "run as if np was started in this directory")
}

// addLegacyFlags adds the flags of the original single command interface
func addLegacyFlags(flags *pflag.FlagSet, l *legacyFlags) {
	flags.StringVarP(&l.name, "name", "n", "", "name of the project to create")
	flags.BoolVarP(&l.update, "update", "u", false, "update the CMakeLists.txt of the current folder")
	flags.StringVarP(&l.filepath, "filepath", "f", "", "directory of the new project (defaults to the name)")
	flags.StringVarP(&l.language, "language", "l", "", "project language, 'C' or 'CXX'")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
