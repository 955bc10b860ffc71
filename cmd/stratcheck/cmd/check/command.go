// Package check implements the command that cross-references the sample
// records against the organic material master list.
package check

import (
	"github.com/spf13/cobra"

	"github.com/eridu-basin/stratcheck/cmd/application"
	"github.com/eridu-basin/stratcheck/internal/cmd/output"
	"github.com/eridu-basin/stratcheck/pkg/errors"
)

// NewCommand creates the check command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		GroupID: "core",
		Short:   "Report samples still marked Undetermined that the master list knows",
		Long: `Check cross-references the stratigraphy records with the organic material
master list.

A sample is reported when its organic content is the sentinel value
("Undetermined" by default) while the master list has a known classification
for it. Samples missing from the master list are never reported.

Exit status is 0 when nothing is found, 1 when inconsistencies are reported
and 2 when an input cannot be loaded.`,
		Example: `  stratcheck check
  stratcheck check --data-dir ./data
  stratcheck check --records strata.csv --reference master.json --format table`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run executes a check and writes the report to the command's output.
func Run(cmd *cobra.Command, app application.Application) error {
	logger := app.Logger()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return errors.NewConfigError("format", err.Error(), err)
	}

	checker, err := app.Checker()
	if err != nil {
		return err
	}

	inputs := checker.Inputs()
	logger.Debug().
		Str("reference", inputs.ReferencePath).
		Str("records", inputs.RecordsPath).
		Str("format", string(format)).
		Msg("Running consistency check")

	result, err := checker.Run(cmd.Context())
	if err != nil {
		return err
	}

	if err := output.WriteResult(cmd.OutOrStdout(), format, result); err != nil {
		return errors.WrapIO("write", "report", err)
	}

	if !result.Consistent() {
		logger.Debug().Int("count", len(result.Mismatches)).Msg("Inconsistencies found")
		return errors.NewInconsistencyError(len(result.Mismatches))
	}
	return nil
}
