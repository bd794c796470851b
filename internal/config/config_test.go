package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the tests see only the YAML file.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PEOPLE_INPUT_FILE",
		"PEOPLE_ENCODING",
		"PEOPLE_OUTPUT_DIR",
		"PEOPLE_OUTPUT_FORMAT",
		"PEOPLE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMainConfig(t *testing.T) {
	t.Run("Missing optional file uses defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadMainConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, "foreign_names.csv", cfg.InputFile)
		assert.Equal(t, FormatText, cfg.OutputFormat)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("Missing required file fails", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadMainConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("YAML values override defaults", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, `
input_file: staff.csv
encoding: windows-1251
output_dir: /tmp/exports
output_format: xlsx
logging:
  level: debug
  encoding: json
`)
		cfg, err := LoadMainConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, "staff.csv", cfg.InputFile)
		assert.Equal(t, "windows-1251", cfg.Encoding)
		assert.Equal(t, "/tmp/exports", cfg.OutputDir)
		assert.Equal(t, FormatXLSX, cfg.OutputFormat)
		assert.Equal(t, "people_{timestamp}_{uuid}", cfg.FileNameFormat)
		assert.Equal(t, LoggingConfig{Level: "debug", Encoding: "json"}, cfg.Logging)
	})

	t.Run("Environment overrides YAML", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PEOPLE_INPUT_FILE", "env.csv")
		t.Setenv("PEOPLE_OUTPUT_FORMAT", "XML")
		t.Setenv("PEOPLE_LOG_LEVEL", "WARN")

		path := writeConfig(t, "input_file: staff.csv\n")
		cfg, err := LoadMainConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, "env.csv", cfg.InputFile)
		assert.Equal(t, FormatXML, cfg.OutputFormat)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("Invalid output format", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, "output_format: pdf\n")
		_, err := LoadMainConfig(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "OutputFormat")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, "input_file: [unterminated\n")
		_, err := LoadMainConfig(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.OutputFormat = "csv"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Encoding = "logfmt"
	assert.Error(t, cfg.Validate())
}
