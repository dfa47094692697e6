package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment overrides, read after the config file
const (
	EnvPlatform = "MIRRORPICK_PLATFORM"
	EnvDataDir  = "MIRRORPICK_DATA_DIR"
	EnvLogFile  = "MIRRORPICK_LOG_FILE"
	EnvAddr     = "MIRRORPICK_ADDR"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Platform string         `toml:"platform"`          // built-in profile name
	Profile  string         `toml:"profile,omitempty"` // optional YAML profile path
	DataDir  string         `toml:"data_dir"`          // where list files live
	LogFile  string         `toml:"log_file"`
	Sources  SourceSettings `toml:"sources"`
	Server   ServerSettings `toml:"server"`
	UI       UISettings     `toml:"ui"`
}

// SourceSettings override the list locations named by the platform profile
type SourceSettings struct {
	Primary string `toml:"primary,omitempty"`
	Augment string `toml:"augment,omitempty"`
}

// ServerSettings configure the list maintenance endpoints
type ServerSettings struct {
	Addr         string   `toml:"addr"`
	AllowedFiles []string `toml:"allowed_files"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowSize         bool `toml:"show_size"`
	ShowPreviewKind  bool `toml:"show_preview_kind"`
	CopyPasswordHint bool `toml:"copy_password_hint"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "mirrorpick", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does
// not exist, then applies environment overrides
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	ApplyEnv(cfg)
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config fields from MIRRORPICK_* variables
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvPlatform); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Platform: "windows",
		DataDir:  ".",
		LogFile:  "mirrorpick.log",
		Server: ServerSettings{
			Addr:         ":3000",
			AllowedFiles: []string{"list_win.json", "list_mac.json", "list_presets.json"},
		},
		UI: UISettings{
			ShowSize:         true,
			ShowPreviewKind:  true,
			CopyPasswordHint: true,
		},
	}
}
