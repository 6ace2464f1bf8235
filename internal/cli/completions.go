package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// stylesheetExtensions are offered first when completing the file argument.
var stylesheetExtensions = []string{"css", "scss", "less"}

// commonEncodings contains frequently used encoding labels for shell completion.
var commonEncodings = []string{"utf-8", "utf-16le", "utf-16be", "latin1", "windows-1252", "iso-8859-15", "shift_jis", "euc-kr", "gbk"}

// completeStylesheets restricts file completion to stylesheet extensions.
func completeStylesheets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return stylesheetExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeColorModes provides shell completion for the --color flag.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{bracecheck.ColorAuto, bracecheck.ColorOn, bracecheck.ColorOff}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeEncodings provides shell completion for the --encoding flag.
func completeEncodings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(commonEncodings, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, strings.ToLower(prefix)) {
			matches = append(matches, v)
		}
	}
	return matches
}
