// Package config loads pathwalk settings from defaults, an optional config
// file, an optional .env file and PATHWALK_* environment variables, in
// increasing order of precedence. Command-line flags bound to the same viper
// instance win over all of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/asciipath/report"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PATHWALK"

// Keys understood by Load.
const (
	KeyLogLevel      = "log-level"
	KeyOutput        = "output"
	KeyLenient       = "lenient"
	KeyCheck         = "check"
	KeyServerAddr    = "server.addr"
	KeyServerMaxBody = "server.max-body"
	KeyWalkTimeout   = "server.walk-timeout"
	KeyMaxSteps      = "server.max-steps"
)

// Config holds the application's configuration values.
type Config struct {
	LogLevel string       `mapstructure:"log-level"` // logrus level name
	Output   string       `mapstructure:"output"`    // report format
	Lenient  bool         `mapstructure:"lenient"`   // accept any non-blank rune as path
	Check    bool         `mapstructure:"check"`     // warn about disconnected drawings
	Server   ServerConfig `mapstructure:"server"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr    string `mapstructure:"addr"`     // listen address
	MaxBody int64  `mapstructure:"max-body"` // request body limit in bytes

	WalkTimeout time.Duration `mapstructure:"walk-timeout"` // per-walk time limit
	MaxSteps    int           `mapstructure:"max-steps"`    // per-walk move limit
}

// LoadOptions points Load at optional files.
type LoadOptions struct {
	// ConfigFile is read when set; otherwise .pathwalk.{yaml,json,toml} is
	// looked up in the working and home directories and may be absent.
	ConfigFile string
	// EnvFile is a dotenv file loaded into the process environment before
	// variables are read. A missing file is ignored.
	EnvFile string
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOutput, string(report.Text))
	v.SetDefault(KeyLenient, false)
	v.SetDefault(KeyCheck, false)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerMaxBody, int64(1<<20))
	v.SetDefault(KeyWalkTimeout, 5*time.Second)
	v.SetDefault(KeyMaxSteps, 1_000_000)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper, opts LoadOptions) (Config, error) {
	if opts.EnvFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", opts.EnvFile, err)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(".pathwalk")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("config: %s: %w", KeyOutput, err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("config: %s must not be empty", KeyServerAddr)
	}
	if c.Server.MaxBody <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", KeyServerMaxBody, c.Server.MaxBody)
	}
	if c.Server.WalkTimeout <= 0 {
		return fmt.Errorf("config: %s must be positive, got %s", KeyWalkTimeout, c.Server.WalkTimeout)
	}
	if c.Server.MaxSteps <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", KeyMaxSteps, c.Server.MaxSteps)
	}
	return nil
}
