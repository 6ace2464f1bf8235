package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bracecheck/internal/config"
	"github.com/vvka-141/bracecheck/internal/files/scanner"
	"github.com/vvka-141/bracecheck/internal/logging"
	"github.com/vvka-141/bracecheck/internal/report"
	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// checkFlags holds the flag values of a check run.
type checkFlags struct {
	encoding        string
	contextWidth    int
	failOnImbalance bool
}

func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	checkCmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check curly-brace balance of a CSS file",
		Long: `Scan a CSS file and report unmatched closing braces and unclosed blocks.

Settings are resolved from flags, then BRACECHECK_* environment variables
(a .env file in the working directory is loaded first), then ` + config.ConfigFileName + `,
then built-in defaults.`,
		Example: `  bracecheck check src/index.css
  bracecheck check --encoding latin1 legacy.css
  bracecheck check --fail-on-imbalance dist/app.css`,
		Args:              RequireFilePath,
		ValidArgsFunction: completeStylesheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
	}

	addCheckFlags(checkCmd, flags)
	return checkCmd
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Text encoding of the input file (WHATWG label, default utf-8)")
	cmd.Flags().IntVar(&flags.contextWidth, "context-width", 0, "Characters of context kept before an opening brace (default 50)")
	cmd.Flags().BoolVar(&flags.failOnImbalance, "fail-on-imbalance", false, "Exit with status 12 when braces are unbalanced")
	_ = cmd.RegisterFlagCompletionFunc("encoding", completeEncodings)
}

// runCheck scans path and writes the report to the command's stdout.
func runCheck(cmd *cobra.Command, path string, flags *checkFlags) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	cfg, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}

	checkCfg := bracecheck.CheckConfig{
		Path:            path,
		Encoding:        cfg.Encoding,
		ContextWidth:    cfg.ContextWidth,
		FailOnImbalance: cfg.FailOnImbalance,
	}
	if err := checkCfg.Validate(); err != nil {
		return err
	}
	logger.Verbose("Checking %s (encoding %s, context width %d)", checkCfg.Path, checkCfg.Encoding, checkCfg.ContextWidth)

	out := cmd.OutOrStdout()
	w := report.NewWriter(out, useColor(cfg.Color, out))

	result, err := scanner.NewScanner(logger).ScanFile(checkCfg, w.ExtraClose)
	if err != nil {
		return err
	}
	if err := w.Summary(result); err != nil {
		return err
	}

	if checkCfg.FailOnImbalance && !result.Balanced() {
		return fmt.Errorf("%s: %d unclosed block(s), %d extra closing brace(s): %w",
			path, len(result.Unclosed), len(result.Extra), bracecheck.ErrImbalanced)
	}
	return nil
}

// resolveSettings merges config file, environment and flags.
// Flags override everything else only when they were set explicitly.
func resolveSettings(cmd *cobra.Command, flags *checkFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(wd, configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("color") {
		if cfg.Color, err = cmd.Flags().GetString("color"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = flags.encoding
	}
	if cmd.Flags().Changed("context-width") {
		cfg.ContextWidth = flags.contextWidth
	}
	if cmd.Flags().Changed("fail-on-imbalance") {
		cfg.FailOnImbalance = flags.failOnImbalance
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
