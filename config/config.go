package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the health forum QA tool.
type Config struct {
	Crawl   CrawlConfig   `yaml:"crawl"`
	Index   IndexConfig   `yaml:"index"`
	Answer  AnswerConfig  `yaml:"answer"`
	Logging LoggingConfig `yaml:"logging"`
}

// CrawlConfig holds thread fetching configuration.
type CrawlConfig struct {
	Concurrency int    `yaml:"concurrency"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	UserAgent   string `yaml:"user_agent"`
}

// IndexConfig holds index build configuration.
type IndexConfig struct {
	MinTextLength int     `yaml:"min_text_length"`
	MaxFeatures   int     `yaml:"max_features"`
	MinDF         int     `yaml:"min_df"`
	MaxDFRatio    float64 `yaml:"max_df_ratio"`
	Bigrams       bool    `yaml:"bigrams"`
}

// AnswerConfig holds answer composition configuration.
type AnswerConfig struct {
	TopK           int `yaml:"top_k"`
	MaxAnswerChars int `yaml:"max_answer_chars"`
	SnippetChars   int `yaml:"snippet_chars"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Crawl: CrawlConfig{
			Concurrency: 3,
			TimeoutSecs: 30,
			UserAgent:   "healthrag/1.0",
		},
		Index: IndexConfig{
			MinTextLength: 50,
			MaxFeatures:   5000,
			MinDF:         1,
			MaxDFRatio:    0.8,
			Bigrams:       true,
		},
		Answer: AnswerConfig{
			TopK:           3,
			MaxAnswerChars: 800,
			SnippetChars:   300,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for healthrag.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "healthrag.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CrawlTimeout returns the per-request fetch timeout.
func (c *Config) CrawlTimeout() time.Duration {
	return time.Duration(c.Crawl.TimeoutSecs) * time.Second
}

// CorpusDBPath returns the path to the raw thread database.
func CorpusDBPath(dir string) string {
	return filepath.Join(dir, "corpus.db")
}

// IndexPathPrefix returns the path prefix shared by the three index
// artifacts.
func IndexPathPrefix(dir string) string {
	return filepath.Join(dir, "health_index")
}

// EnsureDataDir ensures the data directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
