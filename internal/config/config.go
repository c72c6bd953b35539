// ABOUTME: Configuration management for blogbuild with YAML config loading.
// ABOUTME: Handles source/output paths, site identity, log level, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "blogbuild.yaml"

// Config stores blogbuild configuration loaded from blogbuild.yaml.
type Config struct {
	SourceDir string     `yaml:"source_dir"`
	OutputDir string     `yaml:"output_dir"`
	IndexPath string     `yaml:"index_path"`
	Site      SiteConfig `yaml:"site"`
	Log       LogConfig  `yaml:"log"`

	path string
}

// SiteConfig holds values rendered into every page.
type SiteConfig struct {
	Author         string `yaml:"author"`
	Year           string `yaml:"year"`
	EscapeMetadata bool   `yaml:"escape_metadata"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the stock layout: _posts/ in, posts/ and posts.json out.
func Default() *Config {
	return &Config{
		SourceDir: "_posts",
		OutputDir: "posts",
		IndexPath: "posts.json",
		Site: SiteConfig{
			Author: "Jack Wittmayer",
			Year:   "2025",
		},
		Log: LogConfig{Level: "info"},
	}
}

// GetSourceDir returns the expanded markdown source directory.
func (c *Config) GetSourceDir() (string, error) {
	return ExpandPath(c.SourceDir)
}

// GetOutputDir returns the expanded HTML output directory.
func (c *Config) GetOutputDir() (string, error) {
	return ExpandPath(c.OutputDir)
}

// GetIndexPath returns the expanded index file path.
func (c *Config) GetIndexPath() (string, error) {
	return ExpandPath(c.IndexPath)
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultConfigFile
	}
	return c.path
}

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) {
	c.path = path
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from path, or blogbuild.yaml in the working directory
// when path is empty. A missing default file yields Default(); a missing
// explicit file is an error. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes config to its path.
func (c *Config) Save() error {
	path := c.Path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
