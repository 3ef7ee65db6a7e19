// Package config loads and saves mindgrid settings from a TOML file in
// the user's config directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds mindgrid configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// EditorConfig controls core editor behavior.
type EditorConfig struct {
	HistoryCapacity  int `toml:"history_capacity"`
	AutosaveInterval int `toml:"autosave_interval"` // edits between autosaves, 0 disables
}

// StorageConfig locates the document database.
type StorageConfig struct {
	DatabasePath string `toml:"database_path"`
}

// LogConfig controls the file log sink.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// UIConfig holds default node colors as hex strings.
type UIConfig struct {
	Stroke string `toml:"stroke"`
	Fill   string `toml:"fill"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor:  EditorConfig{HistoryCapacity: 100, AutosaveInterval: 10},
		Storage: StorageConfig{DatabasePath: filepath.Join(DataDir(), "documents.db")},
		Log:     LogConfig{File: filepath.Join(DataDir(), "mindgrid.log"), Level: "info"},
		UI:      UIConfig{Stroke: "#d8dee9", Fill: ""},
	}
}

// ConfigDir returns the mindgrid config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mindgrid")
}

// DataDir returns the mindgrid data directory path, used for the
// document database and logs.
func DataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "mindgrid")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults when it does not
// exist or fails to parse.
func Load() *Config {
	return loadFrom(configPath())
}

func loadFrom(path string) *Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = toml.Unmarshal(data, cfg)
	if cfg.Editor.HistoryCapacity <= 0 {
		cfg.Editor.HistoryCapacity = 100
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	return saveTo(configPath(), cfg)
}

func saveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return saveTo(path, Default())
}
