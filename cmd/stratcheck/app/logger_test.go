package app

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "explicit log-level overrides quiet",
			config:   &Config{LogLevel: "trace", Quiet: true},
			expected: "trace",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "invalid log level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := determineLogLevel(tt.config)
			if result != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

// TestLogLevelWarnings tests which settings produce a warning.
func TestLogLevelWarnings(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{name: "defaults", config: &Config{}},
		{name: "valid level", config: &Config{LogLevel: "debug", Verbose: true, Quiet: true}},
		{name: "invalid level", config: &Config{LogLevel: "loud"}, want: `invalid log level "loud", using "info"`},
		{name: "verbose and quiet", config: &Config{Verbose: true, Quiet: true}, want: "both --verbose and --quiet specified, using --quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := logLevelWarnings(tt.config)
			if tt.want == "" {
				if len(warnings) != 0 {
					t.Errorf("logLevelWarnings() = %v, want none", warnings)
				}
				return
			}
			if len(warnings) != 1 || warnings[0] != tt.want {
				t.Errorf("logLevelWarnings() = %v, want [%s]", warnings, tt.want)
			}
		})
	}
}

// TestValidateLogLevel tests log level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q, expected %q", level, got, level)
		}
	}
	for _, level := range []string{"", "DEBUG", "Debug", "verbose"} {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%q) = %q, expected info", level, got)
		}
	}
}

// TestNewLogger tests that logger creation honours the resolved level.
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   zerolog.Level
	}{
		{"default", &Config{LogFormat: "json", LogOutput: "discard"}, zerolog.InfoLevel},
		{"verbose", &Config{LogFormat: "json", LogOutput: "discard", Verbose: true}, zerolog.DebugLevel},
		{"quiet", &Config{LogFormat: "console", LogOutput: "discard", Quiet: true, NoColor: true}, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.config)
			if logger.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}
