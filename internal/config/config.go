package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Scroller backends
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Pager    PagerSettings    `toml:"pager"`
	Scroller ScrollerSettings `toml:"scroller"`
	Terminal TerminalSettings `toml:"terminal"`
	Log      LogSettings      `toml:"log"`
}

// PagerSettings configure the line pager
type PagerSettings struct {
	ReservedLines int    `toml:"reserved_lines"` // rows kept free for the prompt
	Prompt        string `toml:"prompt"`
}

// ScrollerSettings configure the full-screen scroller
type ScrollerSettings struct {
	ReservedLines int    `toml:"reserved_lines"` // rows kept free for the legend
	Backend       string `toml:"backend"`
	Marker        string `toml:"marker"`
	ScrollbarChar string `toml:"scrollbar_char"`
}

// TerminalSettings are used when the terminal cannot be queried
type TerminalSettings struct {
	FallbackHeight int `toml:"fallback_height"`
	FallbackWidth  int `toml:"fallback_width"`
	TabWidth       int `toml:"tab_width"`
}

// LogSettings say where logs go. An empty file discards them.
type LogSettings struct {
	File string `toml:"file"`
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

// NewConfigService creates a config service for the default location,
// $XDG_CONFIG_HOME/scrollpage/config.toml
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
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
	return filepath.Join(configDir, "scrollpage", "config.toml")
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys absent from the file keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Pager: PagerSettings{
			ReservedLines: 2,
			Prompt:        "More...",
		},
		Scroller: ScrollerSettings{
			ReservedLines: 1,
			Backend:       BackendTea,
			Marker:        "(more...)",
			ScrollbarChar: "|",
		},
		Terminal: TerminalSettings{
			FallbackHeight: 24,
			FallbackWidth:  80,
			TabWidth:       8,
		},
	}
}

// Normalize replaces out-of-range values with their defaults
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Pager.ReservedLines < 0 {
		log.Printf("Config: pager.reserved_lines %d out of range, using %d", c.Pager.ReservedLines, def.Pager.ReservedLines)
		c.Pager.ReservedLines = def.Pager.ReservedLines
	}
	if c.Pager.Prompt == "" {
		c.Pager.Prompt = def.Pager.Prompt
	}

	if c.Scroller.ReservedLines < 0 {
		log.Printf("Config: scroller.reserved_lines %d out of range, using %d", c.Scroller.ReservedLines, def.Scroller.ReservedLines)
		c.Scroller.ReservedLines = def.Scroller.ReservedLines
	}
	if !ValidBackend(c.Scroller.Backend) {
		log.Printf("Config: unknown scroller.backend %q, using %q", c.Scroller.Backend, def.Scroller.Backend)
		c.Scroller.Backend = def.Scroller.Backend
	}
	if c.Scroller.Marker == "" {
		c.Scroller.Marker = def.Scroller.Marker
	}
	if c.Scroller.ScrollbarChar == "" {
		c.Scroller.ScrollbarChar = def.Scroller.ScrollbarChar
	}

	if c.Terminal.FallbackHeight <= 0 {
		c.Terminal.FallbackHeight = def.Terminal.FallbackHeight
	}
	if c.Terminal.FallbackWidth <= 0 {
		c.Terminal.FallbackWidth = def.Terminal.FallbackWidth
	}
	if c.Terminal.TabWidth <= 0 {
		c.Terminal.TabWidth = def.Terminal.TabWidth
	}
}

// ValidBackend reports whether name is a known scroller backend
func ValidBackend(name string) bool {
	switch name {
	case BackendTea, BackendTcell, BackendANSI:
		return true
	}
	return false
}
