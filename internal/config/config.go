package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Window modes. YearToDate retains articles from Jan 1 of the current year;
// Trailing retains the last Window.Days days. Both intervals end at "now".
const (
	WindowYearToDate = "year_to_date"
	WindowTrailing   = "trailing"
)

type Config struct {
	Database DatabaseConfig  `yaml:"database"`
	Feeds    []FeedConfig    `yaml:"feeds"`
	Sections []SectionConfig `yaml:"sections"`
	Pipeline PipelineConfig  `yaml:"pipeline"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type FeedConfig struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// SectionConfig names a display section and its membership rule: either an
// exact source list, or a set of keywords matched as substrings of the
// source label. A section may use both; a source may land in several
// sections or none.
type SectionConfig struct {
	Name     string   `yaml:"name"`
	Sources  []string `yaml:"sources,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

type PipelineConfig struct {
	Workers      int          `yaml:"workers"`
	FetchTimeout string       `yaml:"fetch_timeout"`
	TotalBudget  string       `yaml:"total_budget"`
	CacheTTL     string       `yaml:"cache_ttl"`
	UserAgent    string       `yaml:"user_agent"`
	Window       WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Mode string `yaml:"mode"`
	Days int    `yaml:"days"`
}

// GetFetchTimeout parses the per-request timeout string.
func (p *PipelineConfig) GetFetchTimeout() (time.Duration, error) {
	return time.ParseDuration(p.FetchTimeout)
}

// GetTotalBudget parses the whole-batch wall-clock budget string.
func (p *PipelineConfig) GetTotalBudget() (time.Duration, error) {
	return time.ParseDuration(p.TotalBudget)
}

// GetCacheTTL parses the news-table cache lifetime string.
func (p *PipelineConfig) GetCacheTTL() (time.Duration, error) {
	return time.ParseDuration(p.CacheTTL)
}

// Load reads configuration from file and applies defaults. A .env file next
// to the process, if present, may override the database path via NEWSDASH_DB.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// Default returns the built-in configuration: the curated feed list and the
// three reference sections, with stock pipeline tuning.
func Default() *Config {
	cfg := &Config{
		Feeds:    append([]FeedConfig(nil), DefaultFeeds...),
		Sections: append([]SectionConfig(nil), DefaultSections...),
	}
	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg
}

// Save writes configuration to file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	}
	cfg.Database.Path = expandPath(cfg.Database.Path)

	if cfg.Pipeline.Workers == 0 {
		cfg.Pipeline.Workers = 10
	}
	if cfg.Pipeline.FetchTimeout == "" {
		cfg.Pipeline.FetchTimeout = "20s"
	}
	if cfg.Pipeline.TotalBudget == "" {
		cfg.Pipeline.TotalBudget = "2m"
	}
	if cfg.Pipeline.CacheTTL == "" {
		cfg.Pipeline.CacheTTL = "1h"
	}
	if cfg.Pipeline.UserAgent == "" {
		cfg.Pipeline.UserAgent = "newsdash/1.0 (+https://github.com/truenorthdata/newsdash)"
	}
	if cfg.Pipeline.Window.Mode == "" {
		cfg.Pipeline.Window.Mode = WindowYearToDate
	}
	if cfg.Pipeline.Window.Mode == WindowTrailing && cfg.Pipeline.Window.Days == 0 {
		cfg.Pipeline.Window.Days = 7
	}
}

func applyEnv(cfg *Config) {
	// Missing .env is fine; it only exists in deployments that need it.
	_ = godotenv.Load()
	if p := os.Getenv("NEWSDASH_DB"); p != "" {
		cfg.Database.Path = expandPath(p)
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "newsdash", "config.yaml")
}

// DefaultDatabasePath returns the default comment store location
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsdash.db"
	}
	return filepath.Join(home, ".local", "share", "newsdash", "newsdash.db")
}
