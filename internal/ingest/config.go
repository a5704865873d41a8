package ingest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/biblos-search-api/internal/models"
)

// BibleJobConfig configures the scripture ingest job
type BibleJobConfig struct {
	XMLPath      string `yaml:"xml_path"`
	ChunkSize    int    `yaml:"chunk_size"`
	ChunkOverlap int    `yaml:"chunk_overlap"`
	Separator    string `yaml:"separator"`
}

// CommentaryJobConfig configures the commentary ingest job
type CommentaryJobConfig struct {
	SQLitePath   string   `yaml:"sqlite_path"`
	Authors      []string `yaml:"authors"`
	MinLength    int      `yaml:"min_length"`
	ChunkSize    int      `yaml:"chunk_size"`
	ChunkOverlap int      `yaml:"chunk_overlap"`
	Separator    string   `yaml:"separator"`
}

// Config is the root configuration for the offline ingest jobs
type Config struct {
	Bible      BibleJobConfig      `yaml:"bible"`
	Commentary CommentaryJobConfig `yaml:"commentary"`
	BatchSize  int                 `yaml:"batch_size"`
}

// LoadConfig reads an ingest config from path. A missing file returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, fmt.Errorf("read ingest config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse ingest config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}

	if cfg.Bible.XMLPath == "" {
		cfg.Bible.XMLPath = "./data/engwebp_vpl.xml"
	}
	if cfg.Bible.ChunkSize <= 0 {
		cfg.Bible.ChunkSize = 1000
	}
	if cfg.Bible.ChunkOverlap < 0 {
		cfg.Bible.ChunkOverlap = 0
	} else if cfg.Bible.ChunkOverlap == 0 {
		cfg.Bible.ChunkOverlap = 100
	}
	if cfg.Bible.Separator == "" {
		cfg.Bible.Separator = "\n"
	}

	if cfg.Commentary.SQLitePath == "" {
		cfg.Commentary.SQLitePath = "./data/commentary.sqlite"
	}
	if len(cfg.Commentary.Authors) == 0 {
		cfg.Commentary.Authors = models.ChurchFathers
	}
	if cfg.Commentary.MinLength <= 0 {
		cfg.Commentary.MinLength = 1000
	}
	if cfg.Commentary.ChunkSize <= 0 {
		cfg.Commentary.ChunkSize = 2000
	}
	if cfg.Commentary.Separator == "" {
		cfg.Commentary.Separator = "\n\n"
	}
}
