package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/budget"
	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/selection"
)

// Flags shared by every command.
var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress output")
}

// components bundles the collaborators a command needs, wired from config.
type components struct {
	Config    config.Config
	Log       *zap.Logger
	DB        *db.DB
	Embedder  *embeddings.GeminiEmbedder
	Scorer    *ranking.Scorer
	Selector  *selection.ProjectSelector
	Optimizer *budget.PageOptimizer
	Pipeline  *pipeline.Pipeline
	Printer   *observability.Printer
}

// loadConfig resolves the effective configuration: file values (when --config
// is given) merged with defaults, then environment overrides for secrets.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	// The config file can turn verbose output on; the flag can only add to it.
	if cfg.Verbose {
		verbose = true
	}
	return cfg, nil
}

// newComponents connects to the database and the embedding service and wires
// the full component graph. The returned cleanup func closes both connections
// and flushes the logger; callers must defer it.
func newComponents(ctx context.Context) (*components, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in config)")
	}
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or 'api_key' in config)")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	embedder, err := embeddings.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	vectors := database.VectorStore()
	scorer := ranking.NewScorer(database, vectors, embedder, log).WithWorkers(cfg.RankWorkers)
	selector := selection.NewProjectSelector(database, vectors, embedder, log)
	optimizer := budget.NewPageOptimizer(log)
	pipe := pipeline.New(database, selector, optimizer, embedder, vectors, log)

	c := &components{
		Config:    cfg,
		Log:       log,
		DB:        database,
		Embedder:  embedder,
		Scorer:    scorer,
		Selector:  selector,
		Optimizer: optimizer,
		Pipeline:  pipe,
		Printer:   observability.NewPrinter(os.Stdout),
	}

	cleanup := func() {
		if err := embedder.Close(); err != nil {
			log.Warn("failed to close embedder", zap.Error(err))
		}
		database.Close()
		_ = log.Sync()
	}
	return c, cleanup, nil
}
