// Package config provides configuration file support for safebackup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".safebackup.yaml"

// EnvPrefix prefixes environment overrides, e.g. SAFEBACKUP_AUDIT_LOG.
const EnvPrefix = "SAFEBACKUP"

// Config represents the safebackup configuration.
type Config struct {
	AuditLog     string        `yaml:"audit_log"`
	OutputFormat string        `yaml:"output_format"` // text, json
	NoColor      bool          `yaml:"no_color"`
	Logging      LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures diagnostic logging. It is separate from the
// audit trail.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		AuditLog:     "logfile.txt",
		OutputFormat: "text",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from path, or DefaultFile when path is empty.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil // No config file is OK, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// overrideKeys are the viper keys Resolve consults.
var overrideKeys = []string{"audit_log", "output_format", "no_color", "logging.level", "logging.format"}

// NewViper returns a viper instance reading SAFEBACKUP_* environment
// variables. Callers bind flags onto it with BindPFlag using the same keys
// as the YAML file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range overrideKeys {
		// AutomaticEnv only answers for keys viper already knows about.
		_ = v.BindEnv(key)
	}
	return v
}

// Resolve loads the file at path and applies every key set in v on top.
// Precedence: flag > environment > file > default.
func Resolve(path string, v *viper.Viper) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return cfg, nil
	}

	if v.IsSet("audit_log") {
		cfg.AuditLog = v.GetString("audit_log")
	}
	if v.IsSet("output_format") {
		cfg.OutputFormat = v.GetString("output_format")
	}
	if v.IsSet("no_color") {
		cfg.NoColor = v.GetBool("no_color")
	}
	if v.IsSet("logging.level") {
		cfg.Logging.Level = v.GetString("logging.level")
	}
	if v.IsSet("logging.format") {
		cfg.Logging.Format = v.GetString("logging.format")
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if c.AuditLog == "" {
		return fmt.Errorf("audit_log must not be empty")
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output_format %q (want text or json)", c.OutputFormat)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}
