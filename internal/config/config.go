// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. Secrets (API key, database URL) may also come from the
// environment, which takes precedence over the file.
type Config struct {
	// External services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the embedder
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name

	// Ranking
	TopN        int `json:"top_n,omitempty"`        // Jobs to keep after ranking (0 = all)
	RankWorkers int `json:"rank_workers,omitempty"` // Concurrent scorings per batch

	// CV preferences
	CVLength         int  `json:"cv_length,omitempty"`           // Target pages (1 or 2)
	MaxProjectsPerCV int  `json:"max_projects_per_cv,omitempty"` // Projects selected per CV
	IncludeProjects  bool `json:"include_projects,omitempty"`

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed boxed output
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
	Debug    bool `json:"debug,omitempty"`     // Enable debug-level logging
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		EmbeddingModel:   "text-embedding-004",
		RankWorkers:      8,
		CVLength:         1,
		MaxProjectsPerCV: 3,
		IncludeProjects:  true,
		Port:             8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.RankWorkers < 0 {
		return fmt.Errorf("config error: 'rank_workers' must be non-negative")
	}
	if c.MaxProjectsPerCV < 0 {
		return fmt.Errorf("config error: 'max_projects_per_cv' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	// CVLength outside {1,2} is clamped downstream by the optimizer, not
	// rejected here.
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.RankWorkers == 0 {
		result.RankWorkers = defaults.RankWorkers
	}
	if result.CVLength == 0 {
		result.CVLength = defaults.CVLength
	}
	if result.MaxProjectsPerCV == 0 {
		result.MaxProjectsPerCV = defaults.MaxProjectsPerCV
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides secret-bearing fields from the environment.
// GEMINI_API_KEY and DATABASE_URL take precedence over file values so that
// config files can be committed without credentials.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
}
