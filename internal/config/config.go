// Package config provides configuration management for vomnibar with Viper integration.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const envPrefix = "VOMNIBAR"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete configuration for vomnibar.
type Config struct {
	Vomnibar            VomnibarConfig          `mapstructure:"vomnibar" json:"vomnibar"`
	DefaultSearchEngine string                  `mapstructure:"default_search_engine" json:"default_search_engine" jsonschema:"description=Search URL template used for plain queries; must contain %s"`
	SearchEngines       map[string]SearchEngine `mapstructure:"search_engines" json:"search_engines" jsonschema:"description=Custom search engines keyed by the keyword typed before the query"`
	Database            DatabaseConfig          `mapstructure:"database" json:"database"`
	Logging             LoggingConfig           `mapstructure:"logging" json:"logging"`
	DevMode             bool                    `mapstructure:"dev_mode" json:"dev_mode" jsonschema:"description=Panic on unknown host messages instead of ignoring them"`
}

// VomnibarConfig holds the controller defaults applied on activation.
type VomnibarConfig struct {
	DefaultCompleter string `mapstructure:"default_completer" json:"default_completer" jsonschema:"enum=omni,enum=history"`
	SelectFirst      bool   `mapstructure:"select_first" json:"select_first"`
	ForceNewTab      bool   `mapstructure:"force_new_tab" json:"force_new_tab"`
	MaxResults       int    `mapstructure:"max_results" json:"max_results" jsonschema:"minimum=1,maximum=100"`
	HistoryScan      int    `mapstructure:"history_scan" json:"history_scan" jsonschema:"description=Recent history entries ranked per query"`
}

// SearchEngine is a keyword search engine as written in the config file.
type SearchEngine struct {
	URL         string `mapstructure:"url" json:"url"`
	Description string `mapstructure:"description" json:"description"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" json:"path" jsonschema:"description=History database file; defaults to the XDG data directory"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format     string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir     string `mapstructure:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" json:"compress"`
}

// Engines converts the configured search engines to domain values, sorted
// by keyword.
func (c *Config) Engines() []entity.UserSearchEngine {
	engines := make([]entity.UserSearchEngine, 0, len(c.SearchEngines))
	for keyword, e := range c.SearchEngines {
		engines = append(engines, entity.UserSearchEngine{
			Keyword:           keyword,
			SearchURLTemplate: e.URL,
			Description:       e.Description,
		})
	}
	sort.Slice(engines, func(i, j int) bool { return engines[i].Keyword < engines[j].Keyword })
	return engines
}

// InitialSelection returns the selection the controller starts from.
func (c *Config) InitialSelection() int {
	if c.Vomnibar.SelectFirst {
		return 0
	}
	return -1
}

// Strict reports whether unknown host messages should panic.
func (c *Config) Strict() bool {
	return c.DevMode || os.Getenv("ENV") == "dev"
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a manager reading config.{json,yaml,toml} from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("database.path", envPrefix+"_DATABASE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	m := &Manager{viper: v, configDir: dir}
	m.setDefaults()
	return m, nil
}

// Load reads the config file, creating a default one when none exists,
// then applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// search_engines has no viper default: nested defaults would merge
	// into the user's map instead of being replaced by it.
	if config.SearchEngines == nil {
		config.SearchEngines = DefaultConfig().SearchEngines
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.SearchEngines = make(map[string]SearchEngine, len(m.config.SearchEngines))
	for k, v := range m.config.SearchEngines {
		configCopy.SearchEngines[k] = v
	}
	return &configCopy
}

// Watch reloads the configuration whenever the file changes. A reload that
// fails validation keeps the previous configuration.
func (m *Manager) Watch(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	log := logging.FromContext(ctx)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("config reload rejected")
			return
		}

		config := m.Get()
		m.mu.RLock()
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		log.Info().Str("file", e.Name).Int("search_engines", len(config.SearchEngines)).Msg("config reloaded")
		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()
	m.watching = true
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("vomnibar.default_completer", defaults.Vomnibar.DefaultCompleter)
	m.viper.SetDefault("vomnibar.select_first", defaults.Vomnibar.SelectFirst)
	m.viper.SetDefault("vomnibar.force_new_tab", defaults.Vomnibar.ForceNewTab)
	m.viper.SetDefault("vomnibar.max_results", defaults.Vomnibar.MaxResults)
	m.viper.SetDefault("vomnibar.history_scan", defaults.Vomnibar.HistoryScan)

	m.viper.SetDefault("default_search_engine", defaults.DefaultSearchEngine)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("dev_mode", defaults.DevMode)
}

func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.json")
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configData, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.viper.SetConfigFile(configFile)
	return m.viper.ReadInConfig()
}

// ConfigFile returns the path of the file in use.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}
