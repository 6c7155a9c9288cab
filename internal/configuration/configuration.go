package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger: logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Server: HTTP server configuration
	Server ServerConfig `mapstructure:"server"`
	// Corpus: source of suspects, crimes, facts and rules
	Corpus CorpusConfig `mapstructure:"corpus"`
	// Engine: evaluation engine configuration
	Engine EngineConfig `mapstructure:"engine"`
	// Cache: query cache configuration
	Cache CacheConfig `mapstructure:"cache"`
	// Journal: evaluation audit journal configuration
	Journal JournalConfig `mapstructure:"journal"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level: log level: debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	// Address: address and port where the server will listen (e.g., ":8080").
	Address string `mapstructure:"address"`
	// ReadTimeout: maximum duration for reading a request (default 3s).
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout: maximum duration for writing a response (default 3s).
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CorpusConfig defines where the corpus is loaded from.
type CorpusConfig struct {
	// File: path to a corpus YAML file. The embedded default corpus is used when empty.
	File string `mapstructure:"file"`
}

// EngineConfig defines evaluation parameters.
type EngineConfig struct {
	// StrictIdentifiers: reject queries naming unknown suspects or crimes.
	StrictIdentifiers bool `mapstructure:"strict_identifiers"`
	// Workers: concurrent evaluations during an investigation. 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// Weights: evidence importance overrides, each in [0, 1].
	Weights map[string]float64 `mapstructure:"weights"`
}

// CacheConfig defines query cache parameters.
type CacheConfig struct {
	// Window: number of recent lookups the approximate hit rate covers. 0 means the default.
	Window int `mapstructure:"window"`
}

// JournalConfig defines audit journal parameters.
type JournalConfig struct {
	// Journal file path (optional, journaling is disabled when empty)
	File string `mapstructure:"file"`
	// Maximal journal file size in MB (default 100)
	MaxSize int `mapstructure:"max_size"`
	// Number of rotated journal files to keep (default 20)
	MaxBackups int `mapstructure:"max_backups"`
}

// Validate checks the correctness of the entire application configuration.
// Calls validation for each nested structure and returns the first detected error.
// Returns nil if the configuration is valid.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Engine.Validate(); err != nil {
		return err
	}

	if err := c.Cache.Validate(); err != nil {
		return err
	}

	if err := c.Journal.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the correctness of the logger configuration.
// Verifies that the log level is set and is one of the supported values.
// Supported values: debug, info, warn, warning, error (case-insensitive).
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate checks the correctness of the server configuration.
// Verifies that the server address is set and fills in default timeouts.
func (s *ServerConfig) Validate() error {
	if s.Address == "" {
		return errors.New("server.address: must be specified")
	}

	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return errors.New("server: timeouts must not be negative")
	}

	if s.ReadTimeout == 0 {
		s.ReadTimeout = 3 * time.Second
	}

	if s.WriteTimeout == 0 {
		s.WriteTimeout = 3 * time.Second
	}

	return nil
}

// Validate checks the engine parameters.
func (e *EngineConfig) Validate() error {
	if e.Workers < 0 {
		return fmt.Errorf("engine.workers: must not be negative, got %d", e.Workers)
	}

	for kind, weight := range e.Weights {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("engine.weights.%s: must be within [0, 1], got %v", kind, weight)
		}
	}

	return nil
}

// Validate checks the cache parameters.
func (c *CacheConfig) Validate() error {
	if c.Window < 0 {
		return fmt.Errorf("cache.window: must not be negative, got %d", c.Window)
	}

	return nil
}

// Validate journal parameters
func (j *JournalConfig) Validate() error {
	if j.MaxBackups == 0 {
		j.MaxBackups = 20
	}

	if j.MaxSize == 0 {
		j.MaxSize = 100
	}

	return nil
}

// LoadConfig loads configuration from the specified file using Viper.
// Supports YAML format. Also includes environment variable loading (AutomaticEnv),
// which can override values from the file, e.g. SLEUTH_LOGGER_LEVEL for logger.level.
//
// Parameter configPath: path to the configuration file.
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("sleuth")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
