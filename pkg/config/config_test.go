package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridiandb/meridian/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meridian.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  encoding: console
formats:
  csv_delimiter: ";"
  json_quote_64bit_integers: false
  null_representation: "NULL"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)

	settings := cfg.FormatSettings()
	assert.Equal(t, byte(';'), settings.CSV.Delimiter)
	assert.False(t, settings.JSON.Quote64BitIntegers)
	assert.Equal(t, "NULL", settings.NullRepresentation)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ",", cfg.Formats.CSVDelimiter)
	assert.True(t, cfg.Formats.JSONQuote64BitIntegers)

	settings := cfg.FormatSettings()
	assert.Equal(t, byte(','), settings.CSV.Delimiter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Formats.CSVDelimiter = ";;"
	assert.True(t, errors.IsType(cfg.Validate(), errors.ErrorTypeConfig))

	cfg = Default()
	cfg.Logging.Encoding = "xml"
	assert.True(t, errors.IsType(cfg.Validate(), errors.ErrorTypeConfig))
}

func TestDefaultFormatSettings(t *testing.T) {
	settings := Default().FormatSettings()
	assert.Equal(t, byte(','), settings.CSV.Delimiter)
	assert.True(t, settings.JSON.Quote64BitIntegers)
	assert.Equal(t, `\N`, settings.NullRepresentation)
}
