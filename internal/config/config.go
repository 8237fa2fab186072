// Package config loads application settings from defaults, an
// optional YAML config file, and TAGDEX_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TAGDEX"

// Config keys.
const (
	KeyDatabasePath = "database.path"
	KeySearchLimit  = "search.limit"
	KeyLogFile      = "log.file"
	KeyLogLevel     = "log.level"
)

// DefaultSearchLimit caps backing search results when unconfigured.
const DefaultSearchLimit = 100

// Config holds resolved application settings.
type Config struct {
	DatabasePath string
	SearchLimit  int
	LogFile      string
	LogLevel     string
}

// Load resolves settings from defaults, the config file at path (or
// the default location when path is empty), and the environment.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, path); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Config{
		DatabasePath: v.GetString(KeyDatabasePath),
		SearchLimit:  v.GetInt(KeySearchLimit),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeySearchLimit, DefaultSearchLimit)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "warn")
}

func mergeConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".config", "tagdex", "config.yaml"), nil
}

// DefaultLogPath returns the fallback log file location:
// ~/.local/state/tagdex/tagdex.log
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".local", "state", "tagdex", "tagdex.log"), nil
}
