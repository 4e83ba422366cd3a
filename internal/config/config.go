// Package config loads onestop settings with Viper from a YAML file,
// ONESTOP_-prefixed environment variables and command-line flags.
//
// Load unmarshals whatever Viper has collected, fills in defaults for unset
// values and validates the result. Nested keys map to environment variables
// by replacing dots with underscores, so server.port is ONESTOP_SERVER_PORT.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Defaults applied by Load when a value is not set.
const (
	DefaultHost            = "localhost"
	DefaultPort            = 8080
	DefaultServerDebounce  = 600 * time.Millisecond
	DefaultShutdownTimeout = 10 * time.Second
	DefaultBinaryThreshold = 0.10
	DefaultJSEngine        = "builtin"
	DefaultMaxInputBytes   = int64(10 << 20)
	DefaultWatchDebounce   = 300 * time.Millisecond
	DefaultOutputFormat    = "text"
	DefaultStyle           = "monokai"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Allowed values for enumerated settings.
var (
	OutputFormats = []string{"text", "json", "yaml"}
	JSEngines     = []string{"builtin", "esbuild"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
	Codec  CodecConfig  `mapstructure:"codec" yaml:"codec" json:"codec"`
	JS     JSConfig     `mapstructure:"js" yaml:"js" json:"js"`
	Input  InputConfig  `mapstructure:"input" yaml:"input" json:"input"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch" json:"watch"`
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host" json:"host"`
	Port            int           `mapstructure:"port" yaml:"port" json:"port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" yaml:"allowed_origins" json:"allowed_origins"`
	Debounce        time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type CodecConfig struct {
	BinaryThreshold float64 `mapstructure:"binary_threshold" yaml:"binary_threshold" json:"binary_threshold"`
}

type JSConfig struct {
	Engine string `mapstructure:"engine" yaml:"engine" json:"engine"`
}

type InputConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" yaml:"max_bytes" json:"max_bytes"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	Color  bool   `mapstructure:"color" yaml:"color" json:"color"`
	Style  string `mapstructure:"style" yaml:"style" json:"style"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	var c Config
	applyDefaults(&c, false)
	return &c
}

// Keys lists every setting so Viper can bind it to an environment variable.
var Keys = []string{
	"server.host", "server.port", "server.allowed_origins", "server.debounce", "server.shutdown_timeout",
	"codec.binary_threshold",
	"js.engine",
	"input.max_bytes",
	"watch.debounce",
	"output.format", "output.color", "output.style",
	"log.level", "log.format",
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvKeyReplacer maps a nested key such as server.port to SERVER_PORT.
func EnvKeyReplacer() *strings.Replacer {
	return envKeyReplacer
}

// BindEnv binds every key in Keys so Unmarshal sees values that only exist
// in the environment.
func BindEnv() {
	for _, key := range Keys {
		_ = viper.BindEnv(key)
	}
}

// Load reads the current Viper state into a Config, applies defaults and
// validates the result.
func Load() (*Config, error) {
	config, err := Resolve()
	if err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid configuration")
	}

	return config, nil
}

// Resolve is Load without validation, for reporting every problem with
// ValidateConfigWithDetails.
func Resolve() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "cannot read configuration")
	}

	// A zero debounce is a valid explicit choice.
	debounceSet := viper.IsSet("server.debounce")
	watchDebounceSet := viper.IsSet("watch.debounce")

	applyDefaults(&config, viper.IsSet("server.port"))
	if debounceSet {
		config.Server.Debounce = viper.GetDuration("server.debounce")
	}
	if watchDebounceSet {
		config.Watch.Debounce = viper.GetDuration("watch.debounce")
	}

	return &config, nil
}

// applyDefaults fills zero values. An explicit port of 0 is kept when portSet
// is true so the system can pick a free port.
func applyDefaults(config *Config, portSet bool) {
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if config.Server.Port == 0 && !portSet {
		config.Server.Port = DefaultPort
	}
	if config.Server.Debounce == 0 {
		config.Server.Debounce = DefaultServerDebounce
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if config.Codec.BinaryThreshold == 0 {
		config.Codec.BinaryThreshold = DefaultBinaryThreshold
	}
	if config.JS.Engine == "" {
		config.JS.Engine = DefaultJSEngine
	}
	if config.Input.MaxBytes == 0 {
		config.Input.MaxBytes = DefaultMaxInputBytes
	}
	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = DefaultWatchDebounce
	}
	if config.Output.Format == "" {
		config.Output.Format = DefaultOutputFormat
	}
	if config.Output.Style == "" {
		config.Output.Style = DefaultStyle
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}

	config.JS.Engine = strings.ToLower(config.JS.Engine)
	config.Output.Format = strings.ToLower(config.Output.Format)
	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)
}

// validateConfig returns the first hard error found. ValidateConfigWithDetails
// reports every problem along with warnings.
func validateConfig(config *Config) error {
	result := ValidateConfigWithDetails(config)
	if result.HasErrors() {
		return &result.Errors[0]
	}
	return nil
}
