package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bracecheck/internal/config"
)

const rootLong = `bracecheck scans a CSS file and checks that its curly braces are balanced.

It reports every closing brace that has no pending opening brace, the total
number of opening and closing braces, and every block still open at the end
of the file. Braces inside strings and comments are counted like any other
brace: bracecheck is not a CSS parser.

The report is written to stdout. Findings do not change the exit status
unless --fail-on-imbalance is given.

Exit Codes:
  0  - Scan completed
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, flags or encoding
  11 - Input file missing, unreadable or not decodable
  12 - Braces unbalanced (only with --fail-on-imbalance)`

// newRootCmd builds the command tree. The root command accepts a file
// directly as a shortcut for "bracecheck check <file>".
func newRootCmd() *cobra.Command {
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:               "bracecheck [file]",
		Short:             "Check curly-brace balance in CSS files",
		Long:              rootLong,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeStylesheets,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCheck(cmd, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")
	rootCmd.PersistentFlags().String("color", "", "Colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./"+config.ConfigFileName+")")
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
	addCheckFlags(rootCmd, flags)

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return newRootCmd().Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
