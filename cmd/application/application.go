// Package application provides the application interface for stratcheck commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with internal/cmd/application.Mock.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            checker, err := app.Checker()
//	            if err != nil {
//	                return err
//	            }
//	            result, err := checker.Run(cmd.Context())
//	            // ...
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/eridu-basin/stratcheck"
)

// Application provides what commands need from the running CLI.
type Application interface {
	// Checker builds a checker for the configured inputs. Options are
	// applied after the ones derived from configuration.
	Checker(opts ...stratcheck.Option) (*stratcheck.Checker, error)

	// Inputs returns the resolved input locations.
	Inputs() stratcheck.Inputs

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured report format (text, table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
