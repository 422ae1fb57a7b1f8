package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would make the viewer misbehave.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	controls := map[string]ControlConfig{
		"rot_x":       c.Controls.RotX,
		"rot_y":       c.Controls.RotY,
		"rot_z":       c.Controls.RotZ,
		"scale":       c.Controls.Scale,
		"translate_x": c.Controls.TX,
		"translate_y": c.Controls.TY,
	}
	if c.Mesh.Fit < 0 {
		return fmt.Errorf("mesh fit must not be negative, got %v", c.Mesh.Fit)
	}
	for name, cc := range controls {
		if cc.Min > cc.Max {
			return fmt.Errorf("control %s: min %v greater than max %v", name, cc.Min, cc.Max)
		}
		if cc.Initial < cc.Min || cc.Initial > cc.Max {
			return fmt.Errorf("control %s: initial %v outside [%v, %v]", name, cc.Initial, cc.Min, cc.Max)
		}
		if cc.Step <= 0 {
			return fmt.Errorf("control %s: step must be positive", name)
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "BunnyLight")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "BunnyLight")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "bunnylight")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bunnylight")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
