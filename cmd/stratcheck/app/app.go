// Package app provides the application context and dependency management
// for the stratcheck CLI. It centralizes configuration, logging and the
// construction of checkers so commands only depend on cmd/application.
package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/eridu-basin/stratcheck"
	"github.com/eridu-basin/stratcheck/cmd/application"
)

var _ application.Application = (*App)(nil)

// App represents the stratcheck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	viper  *viper.Viper
	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config files; flags
// are applied when a command runs.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		viper:   viper.New(),
	}

	config, err := LoadConfig(app.viper)
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured report format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Inputs returns the resolved input locations.
func (a *App) Inputs() stratcheck.Inputs {
	return a.config.Inputs()
}

// Checker builds a checker from the current configuration.
func (a *App) Checker(opts ...stratcheck.Option) (*stratcheck.Checker, error) {
	base, err := a.config.CheckerOptions()
	if err != nil {
		return nil, err
	}
	base = append(base, stratcheck.WithLogger(a.logger))

	return stratcheck.New(a.Inputs(), append(base, opts...)...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
