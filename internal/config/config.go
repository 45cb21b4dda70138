package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	ModeBasic          = "basic"
	ModeWordSearchOnly = "word_search_only"
)

type ExtractionPrompts struct {
	Mode    string `toml:"mode"`
	System  string `toml:"system"`
	Profile string `toml:"profile"`
}

type SummaryPrompts struct {
	Enabled bool   `toml:"enabled"`
	System  string `toml:"system"`
	Resume  string `toml:"resume"`
}

type LLMConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

type GraphConfig struct {
	URI               string `toml:"uri"`
	User              string `toml:"user"`
	Password          string `toml:"password"`
	Database          string `toml:"database"`
	Dialect           string `toml:"dialect"`
	SingleTransaction bool   `toml:"single_transaction"`
}

type IngestConfig struct {
	Fingerprint string `toml:"fingerprint"`
	MaxFileMB   int    `toml:"max_file_mb"`
}

type ConcurrencyConfig struct {
	Summaries int `toml:"summaries"`
}

type ServerConfig struct {
	Port         string   `toml:"port"`
	AllowOrigins []string `toml:"allow_origins"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Graph       GraphConfig       `toml:"graph"`
	Ingest      IngestConfig      `toml:"ingest"`
	Extraction  ExtractionPrompts `toml:"extraction"`
	Summary     SummaryPrompts    `toml:"summary"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
	Server      ServerConfig      `toml:"server"`
	Log         LogConfig         `toml:"log"`
}

// Load reads a TOML file on top of Default. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	switch c.Extraction.Mode {
	case ModeBasic, ModeWordSearchOnly:
	default:
		return fmt.Errorf("unknown extraction mode %q", c.Extraction.Mode)
	}
	switch c.Ingest.Fingerprint {
	case "md5", "sha256":
	default:
		return fmt.Errorf("unknown fingerprint algorithm %q", c.Ingest.Fingerprint)
	}
	switch c.Graph.Dialect {
	case "neo4j", "memgraph":
	default:
		return fmt.Errorf("unknown graph dialect %q", c.Graph.Dialect)
	}
	if c.Concurrency.Summaries < 1 {
		return fmt.Errorf("concurrency.summaries must be at least 1, got %d", c.Concurrency.Summaries)
	}
	return nil
}
