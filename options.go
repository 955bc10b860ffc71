package stratcheck

import (
	"github.com/rs/zerolog"

	"github.com/eridu-basin/stratcheck/pkg/errors"
	"github.com/eridu-basin/stratcheck/pkg/records"
)

// Option is a function that configures a Checker
type Option func(*config) error

// config holds everything a Checker needs besides its inputs
type config struct {
	columns  records.Columns
	sentinel string
	comma    rune
	logger   *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		columns:  records.DefaultColumns(),
		sentinel: defaultSentinel,
	}
}

// WithColumns configures which records columns hold the sample ID and the observed classification
func WithColumns(id, value string) Option {
	return func(c *config) error {
		columns := records.Columns{ID: id, Value: value}
		if err := columns.Validate(); err != nil {
			return err
		}
		c.columns = columns
		return nil
	}
}

// WithSentinel configures the value that marks a classification as not yet determined
func WithSentinel(sentinel string) Option {
	return func(c *config) error {
		if sentinel == "" {
			return errors.NewValidationError("sentinel", sentinel, "cannot be empty")
		}
		c.sentinel = sentinel
		return nil
	}
}

// WithDelimiter configures the records field delimiter
func WithDelimiter(comma rune) Option {
	return func(c *config) error {
		if comma == 0 || comma == '"' || comma == '\r' || comma == '\n' {
			return errors.NewValidationError("delimiter", string(comma), "invalid delimiter")
		}
		c.comma = comma
		return nil
	}
}

// WithLogger configures the logger used when the run context carries none
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
