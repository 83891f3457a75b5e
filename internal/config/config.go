package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// CaseInsensitiveEnv switches to case-insensitive search when present,
	// whatever its value.
	CaseInsensitiveEnv = "CASE_INSENSITIVE"
	// LogLevelEnv sets the diagnostic log level.
	LogLevelEnv = "MINIGREP_LOG_LEVEL"

	defaultLogLevel = "warn"
)

// ErrMissingArgument is returned when a required positional argument is absent.
var ErrMissingArgument = errors.New("missing argument")

// Config is the resolved search request. It is not modified after Load returns.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
	LogLevel      string
}

// yamlConfig represents the YAML configuration file structure.
// Pointer fields distinguish absent keys from zero values.
type yamlConfig struct {
	CaseInsensitive *bool   `yaml:"case_insensitive"`
	LogLevel        *string `yaml:"log_level"`
}

// CLIOverrides holds command-line values. Nil pointers were not given.
type CLIOverrides struct {
	ConfigFile string
	Query      *string
	Filename   *string
	IgnoreCase *bool
	LogLevel   *string
}

// LookupEnvFunc reports the value of an environment variable and whether it is set.
type LookupEnvFunc func(key string) (string, bool)

// Load builds a Config from the provided sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides, lookupEnv LookupEnvFunc) (Config, error) {
	if overrides == nil {
		overrides = &CLIOverrides{}
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if overrides.Query == nil {
		return Config{}, fmt.Errorf("%w: query string", ErrMissingArgument)
	}
	if overrides.Filename == nil {
		return Config{}, fmt.Errorf("%w: filename", ErrMissingArgument)
	}

	cfg := defaultConfig()
	cfg.Query = *overrides.Query
	cfg.Filename = *overrides.Filename

	applyEnvConfig(&cfg, lookupEnv)

	if overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyCLIOverrides(&cfg, overrides)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		CaseSensitive: true,
		LogLevel:      defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config, lookupEnv LookupEnvFunc) {
	if _, ok := lookupEnv(CaseInsensitiveEnv); ok {
		cfg.CaseSensitive = false
	}

	if level, ok := lookupEnv(LogLevelEnv); ok {
		if level = strings.TrimSpace(level); level != "" {
			cfg.LogLevel = level
		}
	}
}

// applyYAMLConfig applies keys present in the YAML file.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.CaseInsensitive != nil {
		cfg.CaseSensitive = !*yamlCfg.CaseInsensitive
	}

	if yamlCfg.LogLevel != nil && strings.TrimSpace(*yamlCfg.LogLevel) != "" {
		cfg.LogLevel = strings.TrimSpace(*yamlCfg.LogLevel)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.IgnoreCase != nil && *overrides.IgnoreCase {
		cfg.CaseSensitive = false
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}
