// Package config resolves the configuration directory, config file and task file path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML config filename inside the config directory.
	ConfigFile = "config.toml"

	// DefaultTasksFile is the task file used when nothing else is configured.
	// Relative paths resolve against the working directory.
	DefaultTasksFile = "tasks.json"

	// EnvTasksFile overrides the task file path.
	EnvTasksFile = "TODO_FILE"
)

// Config holds configuration paths and settings.
// It is built once per invocation and not modified afterwards.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File is the task file path.
	File string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// LogLevel is the log level named in the config file, if any.
	LogLevel string
}

// fileConfig is the shape of config.toml.
type fileConfig struct {
	File     string `toml:"file"`
	Quiet    bool   `toml:"quiet"`
	LogLevel string `toml:"log_level"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, File: DefaultTasksFile}
}

// Load builds a Config from defaults, the config file in configDir and the
// environment. fileFlag, when non-empty, overrides every other source.
func Load(configDir, fileFlag string) (*Config, error) {
	cfg := New(configDir)

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvTasksFile); v != "" {
		cfg.File = v
	}
	if fileFlag != "" {
		cfg.File = fileFlag
	}

	cfg.File = expandPath(cfg.File)
	return cfg, nil
}

// loadFile applies config.toml if it exists.
func (c *Config) loadFile() error {
	var fc fileConfig
	_, err := toml.DecodeFile(c.ConfigPath(), &fc)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", c.ConfigPath(), err)
	}

	if fc.File != "" {
		c.File = fc.File
	}
	c.Quiet = fc.Quiet
	c.LogLevel = fc.LogLevel
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the TOML config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// TasksPath returns the path of the task file.
func (c *Config) TasksPath() string {
	if c.File == "" {
		return DefaultTasksFile
	}
	return c.File
}

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
