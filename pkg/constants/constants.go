// Package constants provides shared constants used throughout the stratcheck codebase.
// This includes the sentinel classification, default column and file names,
// exit codes and file permissions that should be consistent across the application.
package constants

// Classification constants
const (
	// UndeterminedSentinel marks an organic-content field that has not yet been determined
	UndeterminedSentinel = "Undetermined"
)

// Column constants name the records columns the checker reads by default
const (
	// DefaultIDColumn holds the sample identifier
	DefaultIDColumn = "SampleID"

	// DefaultValueColumn holds the observed organic-content classification
	DefaultValueColumn = "OrganicContent"
)

// Path constants
const (
	// DefaultDataDir is the directory both default input documents live in
	DefaultDataDir = "data"

	// DefaultRecordsFile is the stratigraphy records document
	DefaultRecordsFile = "eridu_basin_stratigraphy.csv"

	// DefaultReferenceFile is the organic material master list
	DefaultReferenceFile = "organic_material_master_list.json"

	// DefaultConfigName is the config file base name searched in $HOME and "."
	DefaultConfigName = ".stratcheck"

	// EnvPrefix prefixes every environment variable the CLI reads
	EnvPrefix = "STRATCHECK"
)

// Exit codes
const (
	// ExitOK means the check ran and found nothing
	ExitOK = 0

	// ExitInconsistent means the check ran and found inconsistencies
	ExitInconsistent = 1

	// ExitFailure means the check could not run (missing or malformed input, bad config)
	ExitFailure = 2
)

// FilePermissions is the mode of a log file named by log_output (rw-r--r--)
const FilePermissions = 0644
