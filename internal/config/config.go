package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// FileName is the configuration file looked up by FindAndLoad
const FileName = "glox.toml"

// Config glox configuration
type Config struct {
	Log  LogConfig  `toml:"log"`
	REPL REPLConfig `toml:"repl"`
}

// LogConfig controls the interpreter's diagnostic logging
type LogConfig struct {
	Level  string `toml:"level"`  // logrus level name, "warning" by default
	Format string `toml:"format"` // "text" or "json"
}

// REPLConfig controls the interactive prompt
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"` // history file, relative to the home directory
	Color   bool   `toml:"color"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warning",
			Format: "text",
		},
		REPL: REPLConfig{
			Prompt:  "> ",
			History: ".glox_history",
			Color:   true,
		},
	}
}

// FindAndLoad looks for glox.toml in startDir and its parents. The default
// configuration is returned, with an empty path, when there is none.
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		return Default(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile returns the path of the nearest glox.toml, or ""
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return config, nil
}

// Logger builds a logger writing to stderr as configured
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch c.Log.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return logger, nil
}
