// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config holds all abook configuration.
type Config struct {
	Storage   Storage   `yaml:"storage"`
	Phone     Phone     `yaml:"phone"`
	Birthdays Birthdays `yaml:"birthdays"`
	UI        UI        `yaml:"ui"`
	Log       Log       `yaml:"log"`
}

// Storage holds address book file settings.
type Storage struct {
	Path string `yaml:"path"`
}

// Phone holds phone number parsing settings.
type Phone struct {
	DefaultRegion string `yaml:"default_region"` // ISO 3166-1 alpha-2, e.g. "UA"
}

// Birthdays holds reminder settings.
type Birthdays struct {
	DefaultDays int `yaml:"default_days"` // Window for `birthdays` without an argument
}

// UI holds interactive session settings.
type UI struct {
	Prompt string `yaml:"prompt"`
	Plain  bool   `yaml:"plain"` // Disable styled output and the interactive prompt
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Path: "data/addressbook.yaml",
		},
		Phone: Phone{
			DefaultRegion: "UA",
		},
		Birthdays: Birthdays{
			DefaultDays: 7,
		},
		UI: UI{
			Prompt: "Enter a command: ",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("config: storage.path cannot be empty")
	}
	if len(c.Phone.DefaultRegion) != 2 {
		return fmt.Errorf("config: phone.default_region must be a two-letter region code, got %q", c.Phone.DefaultRegion)
	}
	if c.Birthdays.DefaultDays < 0 {
		return fmt.Errorf("config: birthdays.default_days must be non-negative, got %d", c.Birthdays.DefaultDays)
	}
	if c.UI.Prompt == "" {
		return errors.New("config: ui.prompt cannot be empty")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ABOOK_STORAGE_PATH, ABOOK_REGION, ABOOK_BIRTHDAY_DAYS, ABOOK_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ABOOK_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ABOOK_REGION"); v != "" {
		c.Phone.DefaultRegion = v
	}
	if v := os.Getenv("ABOOK_BIRTHDAY_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ABOOK_BIRTHDAY_DAYS %q: %w", v, err)
		}
		c.Birthdays.DefaultDays = n
	}
	if v := os.Getenv("ABOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage   *rawStorage   `yaml:"storage"`
	Phone     *rawPhone     `yaml:"phone"`
	Birthdays *rawBirthdays `yaml:"birthdays"`
	UI        *rawUI        `yaml:"ui"`
	Log       *rawLog       `yaml:"log"`
}

type rawStorage struct {
	Path *string `yaml:"path"`
}

type rawPhone struct {
	DefaultRegion *string `yaml:"default_region"`
}

type rawBirthdays struct {
	DefaultDays *int `yaml:"default_days"`
}

type rawUI struct {
	Prompt *string `yaml:"prompt"`
	Plain  *bool   `yaml:"plain"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil && layer.Storage.Path != nil {
		c.Storage.Path = *layer.Storage.Path
	}
	if layer.Phone != nil && layer.Phone.DefaultRegion != nil {
		c.Phone.DefaultRegion = *layer.Phone.DefaultRegion
	}
	if layer.Birthdays != nil && layer.Birthdays.DefaultDays != nil {
		c.Birthdays.DefaultDays = *layer.Birthdays.DefaultDays
	}
	if layer.UI != nil {
		if layer.UI.Prompt != nil {
			c.UI.Prompt = *layer.UI.Prompt
		}
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
	if layer.Log != nil && layer.Log.Level != nil {
		c.Log.Level = *layer.Log.Level
	}
}
