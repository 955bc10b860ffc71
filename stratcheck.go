// Package stratcheck cross-references stratigraphy sample records against the
// organic material master list and flags records whose organic content is
// still "Undetermined" although the master list already knows it.
//
//	checker, err := stratcheck.New(stratcheck.Inputs{
//	    ReferencePath: "data/organic_material_master_list.json",
//	    RecordsPath:   "data/eridu_basin_stratigraphy.csv",
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := checker.Run(ctx)
package stratcheck

import (
	"context"
	"strings"

	"github.com/eridu-basin/stratcheck/pkg/consistency"
	"github.com/eridu-basin/stratcheck/pkg/constants"
	"github.com/eridu-basin/stratcheck/pkg/errors"
	"github.com/eridu-basin/stratcheck/pkg/logging"
	"github.com/eridu-basin/stratcheck/pkg/records"
	"github.com/eridu-basin/stratcheck/pkg/reference"
)

const defaultSentinel = constants.UndeterminedSentinel

// Inputs locates the two documents a check reads. Both paths are used as
// given; resolving them is the caller's job.
type Inputs struct {
	ReferencePath string `json:"reference" yaml:"reference"`
	RecordsPath   string `json:"records" yaml:"records"`
}

// Validate checks that both locations are set.
func (in Inputs) Validate() error {
	if strings.TrimSpace(in.ReferencePath) == "" {
		return errors.NewConfigError("inputs", "reference table location is not set", nil)
	}
	if strings.TrimSpace(in.RecordsPath) == "" {
		return errors.NewConfigError("inputs", "records location is not set", nil)
	}
	return nil
}

// Checker runs the load, compare sequence over one pair of inputs.
type Checker struct {
	inputs Inputs
	config *config
}

// New creates a Checker for inputs with the given options
func New(inputs Inputs, opts ...Option) (*Checker, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Checker{inputs: inputs, config: cfg}, nil
}

// Inputs returns the locations the checker reads.
func (c *Checker) Inputs() Inputs {
	return c.inputs
}

// Run loads both inputs completely and then compares them. Any loading
// error aborts the run before comparison; a non-empty mismatch list is not
// an error.
func (c *Checker) Run(ctx context.Context) (*consistency.Result, error) {
	if c.config.logger != nil && logging.FromContext(ctx) == logging.Default() {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}
	logger := logging.FromContext(ctx)

	table, err := c.LoadReference(ctx)
	if err != nil {
		return nil, aborted(ctx, err)
	}

	recs, err := c.LoadRecords(ctx)
	if err != nil {
		return nil, aborted(ctx, err)
	}

	mismatches := consistency.FindMismatchesFor(table, recs, c.config.sentinel)
	logger.Debug().
		Int("records", len(recs)).
		Int("reference_entries", table.Len()).
		Int("inconsistencies", len(mismatches)).
		Msg("Comparison finished")

	return &consistency.Result{
		Mismatches:       mismatches,
		RecordCount:      len(recs),
		ReferenceEntries: table.Len(),
		Sentinel:         c.config.sentinel,
	}, nil
}

// aborted records a load failure that ends the run and returns it.
func aborted(ctx context.Context, err error) error {
	logging.FromContext(logging.WithError(ctx, err)).Debug().Msg("Check aborted before comparison")
	return err
}

// LoadReference loads the reference table.
func (c *Checker) LoadReference(ctx context.Context) (*reference.Table, error) {
	logger := logging.FromContext(logging.WithInput(ctx, "reference"))
	logger.Debug().Str("path", c.inputs.ReferencePath).Msg("Loading reference table")

	table, err := reference.Load(c.inputs.ReferencePath)
	if err != nil {
		logger.Debug().Err(err).Msg("Reference table failed to load")
		return nil, err
	}
	logger.Debug().Int("entries", table.Len()).Msg("Reference table loaded")
	return table, nil
}

// LoadRecords loads the sample records.
func (c *Checker) LoadRecords(ctx context.Context) ([]records.Record, error) {
	logger := logging.FromContext(logging.WithInput(ctx, "records"))
	logger.Debug().
		Str("path", c.inputs.RecordsPath).
		Str("id_column", c.config.columns.ID).
		Str("value_column", c.config.columns.Value).
		Msg("Loading records")

	var opts []records.Options
	if c.config.comma != 0 {
		opts = append(opts, records.Options{Comma: c.config.comma})
	}

	recs, err := records.Load(c.inputs.RecordsPath, c.config.columns, opts...)
	if err != nil {
		logger.Debug().Err(err).Msg("Records failed to load")
		return nil, err
	}
	logger.Debug().Int("rows", len(recs)).Msg("Records loaded")
	return recs, nil
}
