package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Canvas CanvasConfig `toml:"canvas"`
	Groups GroupsConfig `toml:"groups"`
	Keys   KeysConfig   `toml:"keys"`
}

// LogConfig controls where and how much is logged
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

// CanvasConfig holds lamp canvas settings
type CanvasConfig struct {
	LampRadius    float64 `toml:"lamp_radius"`     // hit radius in canvas units
	DoubleClickMS int     `toml:"double_click_ms"` // max gap between clicks of a double click
	InitialLamps  int     `toml:"initial_lamps"`   // lamps spawned at start
}

// GroupsConfig holds defaults for new groups
type GroupsConfig struct {
	DefaultName  string   `toml:"default_name"`
	DefaultColor string   `toml:"default_color"`
	Palette      []string `toml:"palette"`
}

// KeysConfig maps each command to a key
type KeysConfig struct {
	SelectAll       string `toml:"select_all"`
	ClearSelection  string `toml:"clear_selection"`
	Toggle          string `toml:"toggle"`
	NewLamp         string `toml:"new_lamp"`
	Remove          string `toml:"remove"`
	AddToGroup      string `toml:"add_to_group"`
	RemoveFromGroup string `toml:"remove_from_group"`
	NewGroup        string `toml:"new_group"`
	RenameGroup     string `toml:"rename_group"`
	DeleteGroup     string `toml:"delete_group"`
	ToggleGroup     string `toml:"toggle_group"`
	CycleColor      string `toml:"cycle_color"`
	Help            string `toml:"help"`
	Quit            string `toml:"quit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/lampgrid/config.toml or the
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lampgrid", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so omitted keys keep their default values
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPalette is the color cycle offered for groups
var DefaultPalette = []string{"#808080", "#e06c75", "#98c379", "#e5c07b", "#61afef", "#c678dd", "#56b6c2"}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  "lampgrid.log",
		},
		Canvas: CanvasConfig{
			LampRadius:    1.5,
			DoubleClickMS: 400,
		},
		Groups: GroupsConfig{
			DefaultName:  "New Group",
			DefaultColor: "#808080",
			Palette:      append([]string{}, DefaultPalette...),
		},
		Keys: KeysConfig{
			SelectAll:       "ctrl+a",
			ClearSelection:  "esc",
			Toggle:          "t",
			NewLamp:         "n",
			Remove:          "x",
			AddToGroup:      "g",
			RemoveFromGroup: "u",
			NewGroup:        "N",
			RenameGroup:     "r",
			DeleteGroup:     "D",
			ToggleGroup:     "T",
			CycleColor:      "c",
			Help:            "?",
			Quit:            "q",
		},
	}
}

// normalize fills values a user file left blank or out of range
func (c *Config) normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Canvas.LampRadius <= 0 {
		c.Canvas.LampRadius = def.Canvas.LampRadius
	}
	if c.Canvas.DoubleClickMS <= 0 {
		c.Canvas.DoubleClickMS = def.Canvas.DoubleClickMS
	}
	if c.Canvas.InitialLamps < 0 {
		c.Canvas.InitialLamps = 0
	}
	if len(c.Groups.Palette) == 0 {
		c.Groups.Palette = def.Groups.Palette
	}
}

// DoubleClickInterval returns the double click gap as a duration
func (c *Config) DoubleClickInterval() time.Duration {
	return time.Duration(c.Canvas.DoubleClickMS) * time.Millisecond
}

// SelectAllKey returns the bare key of the select-all binding, e.g. "a"
// for "ctrl+a"
func (c *Config) SelectAllKey() string {
	key := strings.ToLower(strings.TrimSpace(c.Keys.SelectAll))
	return strings.TrimPrefix(key, "ctrl+")
}
