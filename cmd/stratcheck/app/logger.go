package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eridu-basin/stratcheck/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag or STRATCHECK_LOG_LEVEL (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	logConfig := &logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	}

	return logging.NewLoggerFromConfig(logConfig)
}

// determineLogLevel determines the log level using clear precedence rules.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		return validateLogLevel(config.LogLevel)
	}

	// Quiet wins when both shortcuts are given.
	if config.Quiet {
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}

	return "info"
}

// logLevelWarnings describes log level settings that determineLogLevel had
// to override or ignore.
func logLevelWarnings(config *Config) []string {
	if config.LogLevel != "" {
		if validated := validateLogLevel(config.LogLevel); validated != config.LogLevel {
			return []string{fmt.Sprintf("invalid log level %q, using %q", config.LogLevel, validated)}
		}
		return nil
	}
	if config.Verbose && config.Quiet {
		return []string{"both --verbose and --quiet specified, using --quiet"}
	}
	return nil
}

// validateLogLevel validates a log level string and returns a valid level.
// If the input is invalid, returns "info" as a safe default.
func validateLogLevel(level string) string {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[level] {
		return level
	}

	return "info"
}
