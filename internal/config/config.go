package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/bulletin/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings  KeyMappings      `yaml:"key_mappings"`
	ColorScheme  ColorScheme      `yaml:"theme"`
	Activity     ActivitySettings `yaml:"activity"`
	DatabasePath string           `yaml:"database_path"`
}

// ActivitySettings tunes the activity screens
type ActivitySettings struct {
	// Types offered in the type selector
	Types []string `yaml:"types"`
	// ProjectPageSize is the page size of the reference project fetch
	ProjectPageSize int `yaml:"project_page_size"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from BULLETIN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("BULLETIN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "bulletin", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "bulletin", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if len(c.Activity.Types) == 0 {
		c.Activity.Types = append([]string(nil), models.DefaultActivityTypes...)
	}
	if c.Activity.ProjectPageSize <= 0 {
		c.Activity.ProjectPageSize = models.DefaultProjectPageSize
	}
}

// HasPublicCommentPeriodType reports whether the configured types still
// include the comment period type
func (c *Config) HasPublicCommentPeriodType() bool {
	for _, t := range c.Activity.Types {
		if t == models.TypePublicCommentPeriod {
			return true
		}
	}
	return false
}
