package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Refresh struct {
		IntervalSeconds      int `yaml:"interval_seconds"`
		SourceTimeoutSeconds int `yaml:"source_timeout_seconds"`
		PerSourceLimit       int `yaml:"per_source_limit"`
	} `yaml:"refresh"`

	Sources struct {
		RemoteOK struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"remoteok"`
		Adzuna struct {
			Enabled   bool     `yaml:"enabled"`
			Countries []string `yaml:"countries"`
			AppID     string   `yaml:"app_id"`
			AppKey    string   `yaml:"app_key"`
		} `yaml:"adzuna"`
	} `yaml:"sources"`

	// Matching knobs are heuristics, not invariants; tune freely.
	Matching struct {
		SemanticWeight float64  `yaml:"semantic_weight"`
		KeywordWeight  float64  `yaml:"keyword_weight"`
		RelevanceFloor float64  `yaml:"relevance_floor"`
		MaxResults     int      `yaml:"max_results"`
		StopWords      []string `yaml:"stop_words"`
	} `yaml:"matching"`

	Embeddings struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"embeddings"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8000
	}
	if c.Refresh.IntervalSeconds <= 0 {
		c.Refresh.IntervalSeconds = 1800
	}
	if c.Refresh.SourceTimeoutSeconds <= 0 {
		c.Refresh.SourceTimeoutSeconds = 30
	}
	if c.Refresh.PerSourceLimit <= 0 {
		c.Refresh.PerSourceLimit = 100
	}
	if len(c.Sources.Adzuna.Countries) == 0 {
		c.Sources.Adzuna.Countries = []string{"us", "gb", "au", "ca"}
	}
	if c.Matching.SemanticWeight == 0 && c.Matching.KeywordWeight == 0 {
		c.Matching.SemanticWeight = 0.7
		c.Matching.KeywordWeight = 0.3
	}
	if c.Matching.RelevanceFloor == 0 {
		c.Matching.RelevanceFloor = 0.1
	}
	if c.Matching.MaxResults <= 0 {
		c.Matching.MaxResults = 20
	}
}
