// Package config loads operator settings from the user config
// directory, trying TOML first and falling back to JSON. Missing files
// just mean defaults; only unreadable or unparsable files error.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/harview/harview/internal/errdef"
)

const appDirName = "harview"

// Settings are the tunables the CLI reads at startup
type Settings struct {
	HistoryPath          string `json:"history_path"           toml:"history_path"`
	HistoryMaxEntries    int    `json:"history_max_entries"    toml:"history_max_entries"`
	ReplayTimeoutSeconds int    `json:"replay_timeout_seconds" toml:"replay_timeout_seconds"`
	LogLevel             string `json:"log_level"              toml:"log_level"`
}

// Default returns the settings used when no config file exists.
// ReplayTimeoutSeconds of 0 means no timeout beyond the transport's own.
func Default() Settings {
	return Settings{
		HistoryPath: filepath.Join(Dir(), "history.json"),
		LogLevel:    "info",
	}
}

// Dir returns the harview config directory
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return appDirName
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDirName)
}

// Load reads settings from the default config directory
func Load() (Settings, error) {
	return LoadFrom(Dir())
}

// LoadFrom reads settings.toml, then settings.json, from dir. The first
// file that exists wins; parse failures error out rather than silently
// running with defaults.
func LoadFrom(dir string) (Settings, error) {
	type candidate struct {
		path   string
		decode func([]byte, *Settings) error
	}
	candidates := []candidate{
		{filepath.Join(dir, "settings.toml"), func(data []byte, s *Settings) error { return toml.Unmarshal(data, s) }},
		{filepath.Join(dir, "settings.json"), func(data []byte, s *Settings) error { return json.Unmarshal(data, s) }},
	}

	for _, c := range candidates {
		data, err := os.ReadFile(c.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Settings{}, errdef.Wrap(errdef.CodeFilesystem, err, "read settings")
		}

		settings := Default()
		if err := c.decode(data, &settings); err != nil {
			return Settings{}, errdef.Wrap(errdef.CodeConfig, err, "parse settings")
		}
		return normalize(settings), nil
	}

	return Default(), nil
}

func normalize(s Settings) Settings {
	if s.HistoryPath == "" {
		s.HistoryPath = Default().HistoryPath
	}
	if s.HistoryMaxEntries < 0 {
		s.HistoryMaxEntries = 0
	}
	if s.ReplayTimeoutSeconds < 0 {
		s.ReplayTimeoutSeconds = 0
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s
}
