package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eridu-basin/stratcheck/cmd/stratcheck/cmd/check"
	"github.com/eridu-basin/stratcheck/pkg/constants"
	"github.com/eridu-basin/stratcheck/pkg/errors"
	"github.com/eridu-basin/stratcheck/pkg/logging"
)

// Execute runs the stratcheck CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Running the root command without a subcommand performs a check.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stratcheck",
		Short:   "Stratigraphy organic content consistency checker",
		Version: a.version,
		Long: `Stratcheck cross-references the Eridu Basin stratigraphy records with the
organic material master list and reports samples whose organic content is
still "Undetermined" although the master list already has a classification.

Both documents are read from --data-dir (default ./data) unless their
locations are given explicitly with --records and --reference.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check.Run(cmd, a)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.stratcheck.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "text", "report format: text, table, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	flags.String("data-dir", constants.DefaultDataDir, "directory holding the default input documents")
	flags.String("reference", "", "organic material master list (default <data-dir>/"+constants.DefaultReferenceFile+")")
	flags.String("records", "", "stratigraphy records (default <data-dir>/"+constants.DefaultRecordsFile+")")
	flags.String("id-column", constants.DefaultIDColumn, "records column holding the sample identifier")
	flags.String("value-column", constants.DefaultValueColumn, "records column holding the organic content")
	flags.String("sentinel", constants.UndeterminedSentinel, "value marking organic content as not yet determined")
	flags.String("delimiter", ",", "records field delimiter (single character or \"tab\")")

	a.bindFlags(flags)

	rootCmd.SetVersionTemplate("stratcheck {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// bindFlags binds persistent flags to their config keys so flag values take
// precedence over environment variables and config files.
func (a *App) bindFlags(flags *pflag.FlagSet) {
	bindings := map[string]string{
		keyConfig:      "config",
		keyVerbose:     "verbose",
		keyQuiet:       "quiet",
		keyNoColor:     "no-color",
		keyFormat:      "format",
		keyLogLevel:    "log-level",
		keyDataDir:     "data-dir",
		keyReference:   "reference",
		keyRecords:     "records",
		keyIDColumn:    "id-column",
		keyValueColumn: "value-column",
		keySentinel:    "sentinel",
		keyDelimiter:   "delimiter",
	}
	for key, name := range bindings {
		if err := a.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic("programming error: failed to bind flag " + name + ": " + err.Error())
		}
	}
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.viper)
	if err != nil {
		return err
	}
	a.config = config

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	for _, warning := range logLevelWarnings(a.config) {
		logging.Warn().Msg(warning)
	}

	if a.config.ConfigFile != "" {
		a.logger.Debug().Str("file", a.config.ConfigFile).Msg("Using config file")
	}
	return nil
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return constants.ExitOK
	case errors.IsInconsistent(err):
		return constants.ExitInconsistent
	default:
		return constants.ExitFailure
	}
}

// ReportError writes err to w unless it only signals inconsistencies, which
// the report has already shown. It returns the exit status for err.
func ReportError(w io.Writer, err error) int {
	code := ExitCode(err)
	if code == constants.ExitFailure {
		_, _ = io.WriteString(w, "Error: "+err.Error()+"\n")
	}
	return code
}

// ExitOnError reports err on stderr and exits with its status.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		os.Exit(ReportError(os.Stderr, err))
	}
}
