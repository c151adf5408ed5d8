package config

import "github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain/srs"

// Storage backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig        `mapstructure:"log" validate:"required"`
	Storage StorageConfig    `mapstructure:"storage" validate:"required"`
	Server  ServerConfig     `mapstructure:"server" validate:"required"`
	SRS     srs.ParamsConfig `mapstructure:"srs"`

	// Timezone is the IANA zone used to decide calendar days for streaks.
	// Empty means the local zone.
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level     string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format    string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	AddSource bool   `mapstructure:"add_source"`
}

// StorageConfig selects where the state blob is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory file badger sqlite"`
	// Path is a directory for file and badger, a database file for sqlite.
	Path string `mapstructure:"path" validate:"required_unless=Backend memory"`
	// Key is the storage key holding the composed state.
	Key        string `mapstructure:"key" validate:"required"`
	SyncWrites bool   `mapstructure:"sync_writes"`
	// MaxBytes rejects larger blobs as over quota. Zero means unlimited.
	MaxBytes int `mapstructure:"max_bytes" validate:"gte=0"`
}

// ServerConfig contains settings for the local inspection server.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required,hostname_port"`
	// RateLimit is the sustained request rate per second. Zero disables
	// limiting.
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	Burst     int     `mapstructure:"burst" validate:"gte=0"`
}
