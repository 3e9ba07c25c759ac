package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFileName = "config.yml"
	defaultConfigDirName  = ".config/mtodo"
	defaultDataDirName    = ".local/share/mtodo"
	defaultTasksFileName  = "tasks.md"
)

// Config holds application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DataPath  string `yaml:"data_path"`
	TasksFile string `yaml:"tasks_file"`
	Autosave  bool   `yaml:"autosave"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`
}

// UIConfig holds prompt and styling configuration
type UIConfig struct {
	Prompt string       `yaml:"prompt"`
	Styles StylesConfig `yaml:"styles"`
}

// StylesConfig holds colors used by the console printer and the TUI
type StylesConfig struct {
	Reply     TextStyle `yaml:"reply"`
	Error     TextStyle `yaml:"error"`
	Hint      TextStyle `yaml:"hint"`
	Prompt    TextStyle `yaml:"prompt"`
	Done      TextStyle `yaml:"done"`
	Banner    TextStyle `yaml:"banner"`
	Help      TextStyle `yaml:"help"`
	Separator TextStyle `yaml:"separator"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
}

// TasksPath returns the full path of the tasks file
func (c *Config) TasksPath() string {
	return filepath.Join(c.Storage.DataPath, c.Storage.TasksFile)
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
	homeDir    string
}

// NewLoader creates a new config loader for the default location
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName)

	return &Loader{
		configPath: configPath,
		homeDir:    homeDir,
	}, nil
}

// NewLoaderFromPath creates a config loader for an explicit file
func NewLoaderFromPath(path string) (*Loader, error) {
	if path == "" {
		return NewLoader()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Loader{
		configPath: path,
		homeDir:    homeDir,
	}, nil
}

// Load loads the configuration, creating defaults if it doesn't exist
func (l *Loader) Load() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		return l.createDefaultConfig()
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	config := DefaultConfig(l.homeDir)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save persists the configuration to disk
func (l *Loader) Save(config *Config) error {
	configDir := filepath.Dir(l.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset overwrites the config file with defaults
func (l *Loader) Reset() (*Config, error) {
	return l.createDefaultConfig()
}

// createDefaultConfig creates and saves a default configuration
func (l *Loader) createDefaultConfig() (*Config, error) {
	config := DefaultConfig(l.homeDir)

	if err := l.Save(config); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.Storage.DataPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return config, nil
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// DefaultConfig returns the built-in configuration rooted at homeDir
func DefaultConfig(homeDir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Enabled:   true,
			DataPath:  filepath.Join(homeDir, defaultDataDirName),
			TasksFile: defaultTasksFileName,
			Autosave:  true,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		UI: UIConfig{
			Prompt: "> ",
			Styles: StylesConfig{
				Reply:     TextStyle{Foreground: "252"},
				Error:     TextStyle{Foreground: "9", Bold: true},
				Hint:      TextStyle{Foreground: "11", Italic: true},
				Prompt:    TextStyle{Foreground: "99", Bold: true},
				Done:      TextStyle{Foreground: "10"},
				Banner:    TextStyle{Foreground: "14", Bold: true},
				Help:      TextStyle{Foreground: "241"},
				Separator: TextStyle{Foreground: "240"},
			},
		},
	}
}
