// Package config loads Meridian configuration from YAML files and the
// environment. Format settings and logging are the two sections the type
// layer cares about; both have usable defaults so a missing file is not an
// error for tools that can run unconfigured.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/meridiandb/meridian/pkg/datatype"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/logger"
)

// Config is the root configuration structure
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Formats FormatsConfig `mapstructure:"formats"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level       string   `mapstructure:"level"`
	Development bool     `mapstructure:"development"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// FormatsConfig configures text-format escaping and quoting
type FormatsConfig struct {
	CSVDelimiter           string `mapstructure:"csv_delimiter"`
	CSVAllowSingleQuotes   bool   `mapstructure:"csv_allow_single_quotes"`
	JSONQuote64BitIntegers bool   `mapstructure:"json_quote_64bit_integers"`
	NullRepresentation     string `mapstructure:"null_representation"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Formats: FormatsConfig{
			CSVDelimiter:           ",",
			JSONQuote64BitIntegers: true,
			NullRepresentation:     `\N`,
		},
	}
}

// Load reads the configuration file at path, applying defaults and
// MERIDIAN_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MERIDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "json")
	v.SetDefault("formats.csv_delimiter", ",")
	v.SetDefault("formats.json_quote_64bit_integers", true)
	v.SetDefault("formats.null_representation", `\N`)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "cannot read config file "+path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "cannot parse config file "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if len(c.Formats.CSVDelimiter) > 1 {
		return errors.Newf(errors.ErrorTypeConfig,
			"csv_delimiter must be a single character, got %q", c.Formats.CSVDelimiter)
	}
	switch c.Logging.Encoding {
	case "", "json", "console":
	default:
		return errors.Newf(errors.ErrorTypeConfig,
			"logging encoding must be json or console, got %q", c.Logging.Encoding)
	}
	return nil
}

// FormatSettings converts the formats section into the settings bag the
// serialization layer consumes.
func (c *Config) FormatSettings() *datatype.FormatSettings {
	settings := &datatype.FormatSettings{
		JSON: datatype.JSONSettings{
			Quote64BitIntegers: c.Formats.JSONQuote64BitIntegers,
		},
		NullRepresentation: c.Formats.NullRepresentation,
	}
	if c.Formats.CSVDelimiter != "" {
		settings.CSV.Delimiter = c.Formats.CSVDelimiter[0]
	}
	settings.CSV.AllowSingleQuotes = c.Formats.CSVAllowSingleQuotes
	return settings
}

// LoggerConfig converts the logging section for logger.Init
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		Development: c.Logging.Development,
		Encoding:    c.Logging.Encoding,
		OutputPaths: c.Logging.OutputPaths,
	}
}
