package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/budget"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/types"
)

var optimizeContentCmd = &cobra.Command{
	Use:   "optimize-content",
	Short: "Fit draft CV content into a page budget",
	Long:  "Applies per-section word and item limits to draft CV content so the rendered document fits the target page count, with an aggressive second pass when the estimate still exceeds the budget.",
	RunE:  runOptimizeContent,
}

var (
	optimizeContentInput    string
	optimizeContentOutput   string
	optimizeContentPages    int
	optimizeContentProjects bool
)

func init() {
	optimizeContentCmd.Flags().StringVarP(&optimizeContentInput, "content", "c", "", "Path to input draft content JSON file (required)")
	optimizeContentCmd.Flags().StringVarP(&optimizeContentOutput, "out", "o", "", "Path to output optimized content JSON file (required)")
	optimizeContentCmd.Flags().IntVarP(&optimizeContentPages, "pages", "p", 1, "Target page count (1 or 2)")
	optimizeContentCmd.Flags().BoolVar(&optimizeContentProjects, "include-projects", true, "Keep the projects section")

	if err := optimizeContentCmd.MarkFlagRequired("content"); err != nil {
		panic(fmt.Sprintf("failed to mark content flag as required: %v", err))
	}
	if err := optimizeContentCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeContentCmd)
}

// runOptimizeContent is a pure local transformation: no database or embedding
// service is needed, so it skips the full component graph.
func runOptimizeContent(_ *cobra.Command, _ []string) error {
	draftContent, err := os.ReadFile(optimizeContentInput)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", optimizeContentInput, err)
	}

	var draft types.DraftContent
	if err := json.Unmarshal(draftContent, &draft); err != nil {
		return fmt.Errorf("failed to unmarshal draft content JSON: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	optimizer := budget.NewPageOptimizer(log)
	optimized := optimizer.Optimize(&draft, optimizeContentPages, optimizeContentProjects)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintBudgetReport(&optimized, optimizeContentPages)
	}

	if err := writeJSONFile(optimizeContentOutput, optimized); err != nil {
		return err
	}

	log.Info("optimized content written",
		zap.Int("target_pages", optimizeContentPages),
		zap.String("output", optimizeContentOutput))
	_, _ = fmt.Fprintf(os.Stdout, "Successfully optimized content to %s\n", optimizeContentOutput)
	return nil
}
