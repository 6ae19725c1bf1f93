package domain

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the commented template written by `config init`.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
type Config struct {
	Warnings []string     `toml:"-" json:"-" yaml:"-"`
	Server   ServerConfig `toml:"server" json:"server" yaml:"server"`
	Log      LogConfig    `toml:"log" json:"log" yaml:"log"`
	Board    BoardConfig  `toml:"board" json:"board" yaml:"board"`
	Serve    ServeConfig  `toml:"serve" json:"serve" yaml:"serve"`
}

// ServerConfig holds settings for the remote task service from [server].
type ServerConfig struct {
	BaseURL string        `toml:"base_url" json:"base_url" yaml:"base_url"`
	Timeout time.Duration `toml:"timeout" json:"timeout" yaml:"timeout"` // 0 = no timeout
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level" json:"level" yaml:"level"` // debug, info, warn, error
}

// BoardConfig holds interactive board settings from [board].
type BoardConfig struct {
	DeleteTarget DeleteTarget `toml:"delete_target" json:"delete_target" yaml:"delete_target"`
}

// ServeConfig holds development backend settings from [serve].
type ServeConfig struct {
	Addr     string       `toml:"addr" json:"addr" yaml:"addr"`
	Store    StoreBackend `toml:"store" json:"store" yaml:"store"`
	Path     string       `toml:"path" json:"path" yaml:"path"` // JSON store file; empty = state dir
	RedisURL string       `toml:"redis_url" json:"redis_url" yaml:"redis_url"`
}

// DeleteTarget selects which id a delete request is sent for.
type DeleteTarget string

const (
	// DeleteTargetRow deletes the task the user picked in the list.
	DeleteTargetRow DeleteTarget = "row"
	// DeleteTargetDraft deletes whatever task is loaded into the form,
	// regardless of which row was picked.
	DeleteTargetDraft DeleteTarget = "draft"
)

// ParseDeleteTarget validates a delete target string. Empty means row.
func ParseDeleteTarget(s string) (DeleteTarget, error) {
	switch DeleteTarget(s) {
	case "", DeleteTargetRow:
		return DeleteTargetRow, nil
	case DeleteTargetDraft:
		return DeleteTargetDraft, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidDeleteTarget, s, DeleteTargetRow, DeleteTargetDraft)
}

// StoreBackend selects the development backend's storage.
type StoreBackend string

const (
	StoreJSON  StoreBackend = "json"
	StoreRedis StoreBackend = "redis"
)

// ParseStoreBackend validates a store backend string. Empty means json.
func ParseStoreBackend(s string) (StoreBackend, error) {
	switch StoreBackend(s) {
	case "", StoreJSON:
		return StoreJSON, nil
	case StoreRedis:
		return StoreRedis, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStore, s, StoreJSON, StoreRedis)
}

// Default configuration values.
const (
	DefaultBaseURL  = "http://localhost:8080"
	DefaultLogLevel = "info"
	DefaultAddr     = ":8080"
	DefaultRedisURL = "redis://localhost:6379/0"
)

// Directory and file names for todoboard.
const (
	AppDirName            = "todoboard"
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".todoboard.toml"
	LogFileName           = "todoboard.log"
	StoreFileName         = "tasks.json"
)

// Environment variables read by the config loader.
const (
	EnvBaseURL  = "TODOBOARD_BASE_URL"
	EnvLogLevel = "TODOBOARD_LOG_LEVEL"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: DefaultBaseURL,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Board: BoardConfig{
			DeleteTarget: DeleteTargetRow,
		},
		Serve: ServeConfig{
			Addr:     DefaultAddr,
			Store:    StoreJSON,
			RedisURL: DefaultRedisURL,
		},
	}
}

// GlobalAppDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path for a working directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// StateDir returns the state directory for logs and the default JSON store.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogPath returns the diagnostic log file path inside a state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// StorePath returns the default JSON store path inside a state directory.
func StorePath(stateDir string) string {
	return filepath.Join(stateDir, StoreFileName)
}
