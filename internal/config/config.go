// Package config handles the XDG data directory and store settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "tido"

	// TasksFile is the persisted task list filename.
	TasksFile = "tasks.json"
)

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses the list output after a change.
	Quiet bool

	// Store selects and configures the persistence backend.
	Store StoreConfig
}

// StoreConfig is read from the environment.
type StoreConfig struct {
	Backend       string `env:"TIDO_STORE" env-default:"file"`
	RedisAddr     string `env:"TIDO_REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"TIDO_REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"TIDO_REDIS_DB" env-default:"0"`
	RedisKey      string `env:"TIDO_REDIS_KEY" env-default:"tido:tasks"`
}

// New creates a new Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/tido or $HOME/.local/share/tido.
func New(dataDir string) (*Config, error) {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}

	cfg := &Config{Dir: dir}
	if err := cleanenv.ReadEnv(&cfg.Store); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// TasksPath returns the path to the persisted task list file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.Dir, TasksFile)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
