package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank job postings against a user profile",
	Long:  "Scores a batch of job postings against a stored user profile across semantic similarity, skills, location, job type, language, and freshness, producing a JSON array sorted by match score.",
	RunE:  runRankJobs,
}

var (
	rankJobsUser   string
	rankJobsInput  string
	rankJobsOutput string
	rankJobsTopN   int
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsUser, "user", "u", "", "User ID whose profile to rank against (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsInput, "jobs", "j", "", "Path to input jobs JSON file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output ranked jobs JSON file (required)")
	rankJobsCmd.Flags().IntVarP(&rankJobsTopN, "top-n", "n", 0, "Keep only the top N jobs (0 = all)")

	if err := rankJobsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := rankJobsCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := rankJobsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, _ []string) error {
	// 1. Load and validate the job list
	jobsContent, err := os.ReadFile(rankJobsInput)
	if err != nil {
		return fmt.Errorf("failed to read jobs file %s: %w", rankJobsInput, err)
	}

	if err := schemas.Validate(schemas.SchemaJobList, jobsContent); err != nil {
		return fmt.Errorf("jobs file failed validation: %w", err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(jobsContent, &jobs); err != nil {
		return fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}

	// 2. Wire components
	ctx := cmd.Context()
	c, cleanup, err := newComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// 3. Rank
	ranked, err := c.Scorer.RankJobs(ctx, rankJobsUser, jobs, rankJobsTopN)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if verbose {
		c.Printer.PrintRankedJobs(ranked)
	}

	// 4. Write output
	if err := writeJSONFile(rankJobsOutput, ranked); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d jobs to %s\n", len(ranked), rankJobsOutput)
	return nil
}

// writeJSONFile marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSONFile(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
