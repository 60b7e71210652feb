package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"vlist/internal/eventbus"
	"vlist/internal/viewport"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Autosave bool           `toml:"autosave"`
	Window   WindowSettings `toml:"window"`
	Keys     KeySettings    `toml:"keys"`
	Log      LogSettings    `toml:"log"`
}

// WindowSettings configures the viewport
type WindowSettings struct {
	Size             int    `toml:"size"` // 0 follows the terminal height
	Policy           string `toml:"policy"`
	ResizePreference string `toml:"resize_preference"`
	Scrollbar        bool   `toml:"scrollbar"`
}

// KeySettings configures key bindings
type KeySettings struct {
	Vi bool `toml:"vi"`
}

// LogSettings configures the log file
type LogSettings struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Validate checks the values that are parsed later on
func (c *Config) Validate() error {
	if c.Window.Size < 0 {
		return fmt.Errorf("window.size must not be negative, got %d", c.Window.Size)
	}
	if _, err := viewport.ParsePolicy(c.Window.Policy); err != nil {
		return fmt.Errorf("window.policy: %w", err)
	}
	if _, err := viewport.ParseResizePreference(c.Window.ResizePreference); err != nil {
		return fmt.Errorf("window.resize_preference: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); c.Log.Level != "" && err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ScrollPolicy returns the configured scroll policy
func (c *Config) ScrollPolicy() viewport.Policy {
	p, err := viewport.ParsePolicy(c.Window.Policy)
	if err != nil {
		return viewport.EdgeFollow{}
	}
	return p
}

// ResizePreference returns the configured resize preference
func (c *Config) ResizePreference() viewport.ResizePreference {
	p, _ := viewport.ParseResizePreference(c.Window.ResizePreference)
	return p
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/vlist/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "vlist", "config.toml")
}

// NewConfigService creates a config service for path, or for DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("config: no file, using defaults", "path", cs.filePath)
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Window: WindowSettings{
			Size:             10,
			Policy:           viewport.PolicyEdgeFollow,
			ResizePreference: viewport.PreferEnd.String(),
			Scrollbar:        true,
		},
		Keys: KeySettings{Vi: true},
		Log: LogSettings{
			File:       "vlist.log",
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}
