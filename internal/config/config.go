// Package config loads the user configuration from the XDG config
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
)

// RelPath is the config file location relative to the XDG config home.
const RelPath = "cubanimate/config.toml"

type Config struct {
	SaveDirectory string   `toml:"save_directory"`
	DefaultSize   string   `toml:"default_size"`
	DefaultFPS    int      `toml:"default_fps"`
	Confirmations bool     `toml:"confirmations"`
	Palette       []string `toml:"palette"`
	DebugLog      string   `toml:"debug_log"`
}

func Default() *Config {
	palette := make([]string, len(paint.DefaultPalette))
	for i, c := range paint.DefaultPalette {
		palette[i] = c.Hex()
	}
	return &Config{
		DefaultSize:   "8,8,8",
		DefaultFPS:    24,
		Confirmations: true,
		Palette:       palette,
	}
}

// Load reads the config file, creating it with defaults when missing.
func Load() (*Config, error) {
	configPath, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		cfg := Default()
		configPath, err = xdg.ConfigFile(RelPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to get config path: %w", err)
		}
		if err := cfg.SaveFile(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads one config file. Keys it does not set keep their
// default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.SaveDirectory = expandPath(cfg.SaveDirectory)
	cfg.DebugLog = expandPath(cfg.DebugLog)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveFile writes the config as TOML with a short header.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("# cubanimate configuration\n")
	sb.WriteString("# default_size: cube size for new animations, as x,y,z\n")
	sb.WriteString("# palette: colors cycled with , and . in the editor\n\n")
	sb.Write(data)
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// Path returns the config file in use, or where it would be created.
func Path() (string, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return xdg.ConfigFile(RelPath)
	}
	return path, nil
}

func (c *Config) Validate() error {
	size, err := c.Size()
	if err != nil {
		return fmt.Errorf("default_size: %w", err)
	}
	if !size.Valid() {
		return fmt.Errorf("default_size: cube %s has an empty axis", size)
	}
	if c.DefaultFPS <= 0 {
		return fmt.Errorf("default_fps: must be positive, got %d", c.DefaultFPS)
	}
	if _, err := paint.ParsePalette(c.Palette); err != nil {
		return err
	}
	return nil
}

func (c *Config) Size() (cube.Size, error) {
	return cube.ParseSize(c.DefaultSize)
}

// NewPalette builds the editor palette from the configured colors.
func (c *Config) NewPalette() *paint.Palette {
	p, err := paint.ParsePalette(c.Palette)
	if err != nil {
		return paint.NewPalette(nil)
	}
	return p
}

// GetSavePath places filename in the save directory unless it is already
// a path of its own.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) || strings.ContainsRune(filename, filepath.Separator) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
