package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. STUDY_STORAGE_BACKEND.
const EnvPrefix = "STUDY"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config validation failed")

// Options tunes where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, Load looks for
	// studyctl.{yaml,json,toml} in the working directory and ignores its
	// absence.
	ConfigFile string

	// DotEnvFile is loaded into the environment before reading variables.
	// A missing file is not an error.
	DotEnvFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.add_source", false)

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", ".studyctl")
	v.SetDefault("storage.key", "study-app-state")
	v.SetDefault("storage.sync_writes", true)
	v.SetDefault("storage.max_bytes", 0)

	v.SetDefault("server.addr", "127.0.0.1:8787")
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.burst", 40)

	v.SetDefault("srs.min_ease_factor", 0)
	v.SetDefault("srs.again_penalty", 0)
	v.SetDefault("srs.easy_bonus", 0)
	v.SetDefault("srs.reset_interval", 0)
	v.SetDefault("srs.max_interval", 0)

	v.SetDefault("timezone", "")
}

// Load configuration from defaults, an optional config file and environment
// variables. Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts Options) (*Config, error) {
	if opts.DotEnvFile != "" {
		if err := godotenv.Load(opts.DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", opts.DotEnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("studyctl")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
