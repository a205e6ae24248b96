package cmd

import (
	"flatten/pkg/flatten"
	"flatten/pkg/logging"
	"flatten/pkg/version"

	"github.com/spf13/cobra"
)

var rootArgs = struct {
	output      string
	includes    []string
	excludes    []string
	allowHidden bool
	assumeYes   bool
	debug       bool
}{}

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "flatten [directory]",
	Short: "Flatten is a CLI tool for concatenating a directory tree into one document",
	Long: `Flatten walks a directory tree and concatenates the selected files into a
single markdown-style document, annotating each file with a header and a
syntax-aware code fence. Selection honors .gitignore/.ignore files, a
hidden-file policy, and explicit include/exclude overrides where an include
always wins.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.Setup(rootArgs.debug, "flatten", version.Get().Version)
		if err != nil {
			return err
		}
		defer func() { _ = logging.Sync(logger) }()

		directory := "./"
		if len(args) == 1 {
			directory = args[0]
		}

		return flatten.Run(&flatten.Arguments{
			Directory:   directory,
			Output:      rootArgs.output,
			Includes:    rootArgs.includes,
			Excludes:    rootArgs.excludes,
			AllowHidden: rootArgs.allowHidden,
			AssumeYes:   rootArgs.assumeYes,
		}, logger)
	},
}

// Execute runs the root command and reports whether it failed.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&rootArgs.output, "output", "o", "", "Output file (default: flatten-<dir>-<timestamp>.txt)")
	RootCmd.Flags().StringArrayVarP(&rootArgs.excludes, "exclude", "e", nil, "Paths to exclude (repeatable)")
	RootCmd.Flags().StringArrayVar(&rootArgs.includes, "include", nil, "Paths to include, overriding any exclusions (repeatable)")
	RootCmd.Flags().BoolVar(&rootArgs.allowHidden, "hidden", false, "Include hidden files and directories")
	RootCmd.Flags().BoolVarP(&rootArgs.assumeYes, "yes", "y", false, "Skip the large-directory confirmation prompt")
	RootCmd.PersistentFlags().BoolVar(&rootArgs.debug, "debug", false, "Enable debug logging")
}
