// Package config provides persistent configuration for hijri-calendar.
//
// Configuration is stored as JSON at ~/.config/hijri-calendar/config.json
// (XDG-compliant). The merge priority is:
// CLI flags > environment (.env included) > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
)

const (
	configDirName  = "hijri-calendar"
	configFileName = "config.json"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL     = "CALENDAR_API_URL"
	EnvListenAddr = "HIJRI_CALENDAR_ADDR"
	EnvLogLevel   = "LOG_LEVEL"
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"api_url",
	"listen_addr",
	"language",
	"log_level",
	"format",
}

// Languages the web pages are translated into.
var Languages = []string{"en", "ar"}

// Config holds all user-configurable settings.
// Zero values mean "not set".
type Config struct {
	APIURL     string `json:"api_url,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
	Language   string `json:"language,omitempty"` // fallback page language
	LogLevel   string `json:"log_level,omitempty"`
	Format     string `json:"format,omitempty"` // date format for the CLI
}

// Defaults returns a Config with all default values applied.
// APIURL stays empty so the client falls back to api.DefaultBaseURL,
// which can be set at build time.
func Defaults() Config {
	return Config{
		ListenAddr: ":8080",
		Language:   "en",
		LogLevel:   "info",
		Format:     calendar.FormatBoth,
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// A missing file yields an empty Config, not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// FillDefaults sets every unset field to its default.
func (c *Config) FillDefaults() {
	d := Defaults()
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Format == "" {
		c.Format = d.Format
	}
}

// Set sets a config key to the given value.
// It validates the key name and the value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		if err := validateAPIURL(value); err != nil {
			return err
		}
		c.APIURL = value
	case "listen_addr":
		if !strings.Contains(value, ":") {
			return fmt.Errorf("invalid listen_addr %q: must be host:port or :port", value)
		}
		c.ListenAddr = value
	case "language":
		if !contains(Languages, value) {
			return fmt.Errorf("invalid language %q: must be one of %s", value, strings.Join(Languages, ", "))
		}
		c.Language = value
	case "log_level":
		if _, err := zerolog.ParseLevel(value); err != nil || value == "" {
			return fmt.Errorf("invalid log_level %q: must be trace, debug, info, warn, error or disabled", value)
		}
		c.LogLevel = value
	case "format":
		if !calendar.ValidFormat(value) {
			return fmt.Errorf("invalid format %q: must be one of %s, or a template", value, strings.Join(calendar.Formats, ", "))
		}
		c.Format = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "listen_addr":
		return c.ListenAddr, nil
	case "language":
		return c.Language, nil
	case "log_level":
		return c.LogLevel, nil
	case "format":
		return c.Format, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

func validateAPIURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_url %q: must be an absolute http(s) URL", value)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
