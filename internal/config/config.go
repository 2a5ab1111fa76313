package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage struct {
		Backend string `yaml:"backend"` // file | sqlite | redis
		Dir     string `yaml:"dir"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Bank struct {
		Path string `yaml:"path"`
		ID   string `yaml:"id"`
		TTL  string `yaml:"ttl"`
	} `yaml:"bank"`
	Quiz struct {
		Limit int `yaml:"limit"`
	} `yaml:"quiz"`
}

// Load reads YAML config from path. A missing file yields the zero
// config so the trainer runs with defaults out of the box.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// StateDir resolves the storage directory, defaulting to
// ~/.mcq-trainer when unset.
func (c Config) StateDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mcq-trainer"
	}
	return filepath.Join(home, ".mcq-trainer")
}

// BankID resolves the configured bank id, defaulting to "default".
func (c Config) BankID() string {
	if c.Bank.ID != "" {
		return c.Bank.ID
	}
	return "default"
}
