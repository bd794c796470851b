// =============================================================================
// People CSV Loader - Configuration Module
// =============================================================================
//
// This module loads the application configuration.
//
// SOURCES (later ones win):
//   1. Built-in defaults
//   2. The YAML file given with --config (config.yaml by default)
//   3. A .env file in the working directory
//   4. PEOPLE_* environment variables
//
// The result is validated before it is handed to the commands.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// OUTPUT FORMATS
// =============================================================================

// Output formats understood by the load command.
const (
	FormatText = "text"
	FormatXML  = "xml"
	FormatXLSX = "xlsx"
	FormatYAML = "yaml"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// InputFile is the people file loaded when no argument is given.
	// Default: "foreign_names.csv"
	InputFile string `yaml:"input_file" validate:"required"`

	// Encoding is the character encoding of the input file.
	// Any WHATWG name is accepted ("windows-1251", "koi8-r", ...).
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where xml, xlsx and yaml exports go.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// OutputFormat selects the report written by the load command.
	// Valid values: "text", "xml", "xlsx", "yaml"
	// Default: "text"
	OutputFormat string `yaml:"output_format" validate:"oneof=text xml xlsx yaml"`

	// FileNameFormat defines export file names.
	// Placeholders: {uuid}, {timestamp}, {date}, {input}
	// Default: "people_{timestamp}_{uuid}"
	FileNameFormat string `yaml:"file_name_format" validate:"required"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// Logging controls the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Encoding is "console" or "json".
	// Default: "console"
	Encoding string `yaml:"encoding" validate:"oneof=console json"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	config := &MainConfig{}
	applyMainConfigDefaults(config)
	return config
}

// LoadMainConfig loads the main configuration.
//
// PARAMETERS:
//   - configPath: The path to the YAML configuration file.
//   - required: When false, a missing file is not an error and the
//     defaults are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read or parsed, or if validation fails.
func LoadMainConfig(configPath string, required bool) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	// A missing .env file is fine.
	_ = godotenv.Load()
	applyEnvOverrides(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset option.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputFile == "" {
		config.InputFile = "foreign_names.csv"
	}
	if config.Encoding == "" {
		config.Encoding = "UTF-8"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.OutputFormat == "" {
		config.OutputFormat = FormatText
	}
	if config.FileNameFormat == "" {
		config.FileNameFormat = "people_{timestamp}_{uuid}"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Encoding == "" {
		config.Logging.Encoding = "console"
	}
}

// applyEnvOverrides replaces options set through PEOPLE_* variables.
func applyEnvOverrides(config *MainConfig) {
	config.InputFile = getEnv("PEOPLE_INPUT_FILE", config.InputFile)
	config.Encoding = getEnv("PEOPLE_ENCODING", config.Encoding)
	config.OutputDir = getEnv("PEOPLE_OUTPUT_DIR", config.OutputDir)
	config.OutputFormat = strings.ToLower(getEnv("PEOPLE_OUTPUT_FORMAT", config.OutputFormat))
	config.Logging.Level = strings.ToLower(getEnv("PEOPLE_LOG_LEVEL", config.Logging.Level))
}

// validate checks struct tags. The validator caches struct metadata and is
// safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	return validate.Struct(config)
}

// Validate re-checks a configuration after command-line flags changed it.
func (c *MainConfig) Validate() error {
	if err := validateMainConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
