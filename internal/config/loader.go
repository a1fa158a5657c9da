package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigName is the base file name searched for in config directories.
const ConfigName = "limitless"

var configExts = []string{".yaml", ".yml", ".toml"}

// Load loads the Limitless configuration.
// Search order: customPath -> ~/.limitless/configs/limitless.{yaml,yml,toml}
// -> ./configs/limitless.{yaml,yml,toml} -> embedded default -> DefaultConfig.
// Files are decoded on top of the defaults, so partial files are allowed.
func Load(customPath string) (GameConfig, error) {
	// Custom path must exist and parse
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return DefaultConfig(), err
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, ext := range configExts {
			path := filepath.Join(dir, ConfigName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultConfig()
	if err := decode(defaultLimitlessYAML, ".yaml", &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadFile reads one config file, picking the format from its extension.
func LoadFile(path string) (GameConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(data, filepath.Ext(path), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, ext string, cfg *GameConfig) error {
	if strings.EqualFold(ext, ".toml") {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, cfg)
}

// searchDirs lists config directories in priority order.
func searchDirs() []string {
	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, "configs")
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".limitless", "configs")
}
