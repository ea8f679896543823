// Package config loads actionary settings from defaults, a TOML file, the
// environment and command line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/dori/actionary/internal/jsonfile"
	"github.com/dori/actionary/internal/ui/theme"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default values
const (
	DefaultBackend  = BackendJSON
	DefaultTheme    = "actionary"
	DefaultLogLevel = "info"
	ConfigFileName  = "config.toml"
	LogFileName     = "actionary.log"
	DBFileName      = "actionary.db"
)

// Config holds application configuration
type Config struct {
	// File is the JSON tasks file used by the json backend
	File    string `toml:"file"`
	Backend string `toml:"backend"`
	// DBPath is the database used by the sqlite backend
	DBPath   string `toml:"db_path"`
	DataDir  string `toml:"data_dir"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Overrides carries values given on the command line. Empty fields are
// ignored.
type Overrides struct {
	File    string
	Backend string
	Theme   string
	Debug   bool
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "actionary")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".actionary"
	}
	return filepath.Join(home, ".local", "share", "actionary")
}

// DefaultConfigPath returns the user config file location
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "actionary", ConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(home, ".config", "actionary", ConfigFileName)
}

// Default returns the default application configuration
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.File = jsonfile.DefaultPath()
	cfg.Backend = DefaultBackend
	cfg.DataDir = DefaultDataDir()
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. Config file at path (missing file is fine)
// 3. Environment variables read through getenv
// 4. Command line overrides
func Load(path string, getenv func(string) string, o Overrides) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	loadFromEnv(cfg, getenv)
	applyOverrides(cfg, o)

	finalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func loadFromEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("ACTIONARY_FILE"); v != "" {
		cfg.File = v
	}
	if v := getenv("ACTIONARY_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := getenv("ACTIONARY_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := getenv("ACTIONARY_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := getenv("ACTIONARY_LOG"); v != "" {
		cfg.LogFile = v
	}
	if getenv("ACTIONARY_DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.File != "" {
		cfg.File = o.File
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.Debug {
		cfg.LogLevel = "debug"
	}
}

// finalize expands ~ and fills paths derived from the data directory
func finalize(cfg *Config) {
	cfg.File = expandPath(cfg.File)
	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Backend = strings.ToLower(cfg.Backend)
	cfg.Theme = strings.ToLower(cfg.Theme)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, DBFileName)
	}
	cfg.DBPath = expandPath(cfg.DBPath)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, LogFileName)
	}
	cfg.LogFile = expandPath(cfg.LogFile)
}

// Validate rejects unknown backends, themes and log levels
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendJSON, BackendSQLite)
	}
	if _, ok := theme.ByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.File == "" && c.Backend == BackendJSON {
		return errors.New("tasks file path is empty")
	}
	return nil
}

// StoragePath returns the file the configured backend writes to
func (c *Config) StoragePath() string {
	if c.Backend == BackendSQLite {
		return c.DBPath
	}
	return c.File
}

// LockPath returns the single-instance lock file, kept next to the data
func (c *Config) LockPath() string {
	return c.StoragePath() + ".lock"
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
