package app

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/eridu-basin/stratcheck"
	"github.com/eridu-basin/stratcheck/pkg/constants"
	"github.com/eridu-basin/stratcheck/pkg/errors"
)

// Config keys shared by viper, environment variables and flags.
const (
	keyConfig      = "config"
	keyVerbose     = "verbose"
	keyQuiet       = "quiet"
	keyNoColor     = "no_color"
	keyFormat      = "format"
	keyDataDir     = "data_dir"
	keyReference   = "reference"
	keyRecords     = "records"
	keyIDColumn    = "id_column"
	keyValueColumn = "value_column"
	keySentinel    = "sentinel"
	keyDelimiter   = "delimiter"
	keyLogLevel    = "log_level"
	keyLogFormat   = "log_format"
	keyLogOutput   = "log_output"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Input locations
	DataDir       string
	ReferencePath string
	RecordsPath   string

	// Records layout
	IDColumn    string
	ValueColumn string
	Sentinel    string
	Delimiter   string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration into v from all sources in order of precedence:
// 1. Command-line flags (bound to v by the root command)
// 2. Environment variables (STRATCHECK_*)
// 3. .env files
// 4. Config file (--config, or .stratcheck.yaml in $HOME or .)
// 5. Defaults
func LoadConfig(v *viper.Viper) (*Config, error) {
	loadEnvFiles()

	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	return &Config{
		Verbose:    v.GetBool(keyVerbose),
		Quiet:      v.GetBool(keyQuiet),
		NoColor:    v.GetBool(keyNoColor) || os.Getenv("NO_COLOR") != "",
		Format:     v.GetString(keyFormat),
		ConfigFile: v.ConfigFileUsed(),

		DataDir:       v.GetString(keyDataDir),
		ReferencePath: v.GetString(keyReference),
		RecordsPath:   v.GetString(keyRecords),

		IDColumn:    v.GetString(keyIDColumn),
		ValueColumn: v.GetString(keyValueColumn),
		Sentinel:    v.GetString(keySentinel),
		Delimiter:   v.GetString(keyDelimiter),

		LogLevel:  v.GetString(keyLogLevel),
		LogFormat: v.GetString(keyLogFormat),
		LogOutput: v.GetString(keyLogOutput),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyDataDir, constants.DefaultDataDir)
	v.SetDefault(keyIDColumn, constants.DefaultIDColumn)
	v.SetDefault(keyValueColumn, constants.DefaultValueColumn)
	v.SetDefault(keySentinel, constants.UndeterminedSentinel)
	v.SetDefault(keyDelimiter, ",")
	v.SetDefault(keyLogFormat, "auto")
	v.SetDefault(keyLogOutput, "stderr")
}

// readConfigFile reads an explicit config file, which must exist, or
// searches the standard locations, where a missing file is fine.
func readConfigFile(v *viper.Viper) error {
	if configFile := v.GetString(keyConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config file", err.Error(), err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.DefaultConfigName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config file", err.Error(), err)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// Inputs resolves the two input locations. An explicit path wins; otherwise
// the default file name is looked up in DataDir.
func (c *Config) Inputs() stratcheck.Inputs {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = constants.DefaultDataDir
	}

	in := stratcheck.Inputs{
		ReferencePath: c.ReferencePath,
		RecordsPath:   c.RecordsPath,
	}
	if in.ReferencePath == "" {
		in.ReferencePath = filepath.Join(dataDir, constants.DefaultReferenceFile)
	}
	if in.RecordsPath == "" {
		in.RecordsPath = filepath.Join(dataDir, constants.DefaultRecordsFile)
	}
	return in
}

// CheckerOptions translates the records layout settings into checker options.
func (c *Config) CheckerOptions() ([]stratcheck.Option, error) {
	opts := []stratcheck.Option{
		stratcheck.WithColumns(c.IDColumn, c.ValueColumn),
		stratcheck.WithSentinel(c.Sentinel),
	}

	comma, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return nil, err
	}
	if comma != 0 {
		opts = append(opts, stratcheck.WithDelimiter(comma))
	}
	return opts, nil
}

// parseDelimiter accepts a single character, or "tab" and `\t`.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.NewConfigError("delimiter", "must be a single character, got \""+s+"\"", nil)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
