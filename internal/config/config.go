// Package config loads the analysis configuration from YAML with
// environment overrides and sensible defaults.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "CORPUSTAT_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	cachePathEnv   = "CORPUSTAT_CACHE"
)

// Config holds the settings shared across the analysis binaries.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Datasets  DatasetsConfig  `yaml:"datasets"`
	Reference string          `yaml:"reference"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	WeekStart string          `yaml:"weekStart"`
}

// DatabaseConfig describes the optional Postgres document source.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// CacheConfig describes the local SQLite dataset cache.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// DatasetsConfig names the two corpora and where to fetch them.
type DatasetsConfig struct {
	Tweets   DatasetConfig `yaml:"tweets"`
	Speeches DatasetConfig `yaml:"speeches"`
}

// DatasetConfig points at one corpus. When URL is set the dataset is fetched
// over HTTP; otherwise it is read from the Postgres documents table by name.
type DatasetConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// MetricsConfig lists the metric names each pipeline evaluates.
type MetricsConfig struct {
	Similarity  []string `yaml:"similarity"`
	Readability []string `yaml:"readability"`
	Trend       string   `yaml:"trend"`
}

// WeekStartDay resolves the configured week-start name, defaulting to Monday.
func (c Config) WeekStartDay() time.Weekday {
	switch strings.ToLower(c.WeekStart) {
	case "sunday":
		return time.Sunday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(cachePathEnv); v != "" {
		c.Cache.Path = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Database.DSN != "" {
		base.Database = override.Database
	}
	if override.Cache.Path != "" {
		base.Cache = override.Cache
	}
	if override.Datasets.Tweets.Name != "" || override.Datasets.Tweets.URL != "" {
		base.Datasets.Tweets = override.Datasets.Tweets
	}
	if override.Datasets.Speeches.Name != "" || override.Datasets.Speeches.URL != "" {
		base.Datasets.Speeches = override.Datasets.Speeches
	}
	if override.Reference != "" {
		base.Reference = override.Reference
	}
	if len(override.Metrics.Similarity) > 0 {
		base.Metrics.Similarity = override.Metrics.Similarity
	}
	if len(override.Metrics.Readability) > 0 {
		base.Metrics.Readability = override.Metrics.Readability
	}
	if override.Metrics.Trend != "" {
		base.Metrics.Trend = override.Metrics.Trend
	}
	if override.WeekStart != "" {
		base.WeekStart = override.WeekStart
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: ""},
		Cache:    CacheConfig{Path: "corpustat_cache.db"},
		Datasets: DatasetsConfig{
			Tweets:   DatasetConfig{Name: "cabinet_tweets"},
			Speeches: DatasetConfig{Name: "eu_speeches"},
		},
		Reference: "theresa_may",
		Metrics: MetricsConfig{
			Similarity:  []string{"correlation", "cosine", "dice", "edice", "euclidean", "manhattan"},
			Readability: []string{"Flesch.Kincaid", "SMOG", "Flesch", "Dale.Chall"},
			Trend:       "cosine",
		},
		WeekStart: "monday",
	}
}
