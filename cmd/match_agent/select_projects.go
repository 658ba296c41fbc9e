package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var selectProjectsCmd = &cobra.Command{
	Use:   "select-projects",
	Short: "Select the user projects most relevant to a job",
	Long:  "Queries the user's project embeddings against a job posting and selects the most relevant projects by semantic similarity and technology overlap, each with a human-readable selection reason.",
	RunE:  runSelectProjects,
}

var (
	selectProjectsUser   string
	selectProjectsJob    string
	selectProjectsOutput string
	selectProjectsMax    int
)

func init() {
	selectProjectsCmd.Flags().StringVarP(&selectProjectsUser, "user", "u", "", "User ID whose projects to search (required)")
	selectProjectsCmd.Flags().StringVarP(&selectProjectsJob, "job", "j", "", "Path to input job JSON file (required)")
	selectProjectsCmd.Flags().StringVarP(&selectProjectsOutput, "out", "o", "", "Path to output selected projects JSON file (required)")
	selectProjectsCmd.Flags().IntVarP(&selectProjectsMax, "max", "m", 3, "Maximum number of projects to select")

	if err := selectProjectsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := selectProjectsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := selectProjectsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(selectProjectsCmd)
}

func runSelectProjects(cmd *cobra.Command, _ []string) error {
	job, err := loadJobFile(selectProjectsJob)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c, cleanup, err := newComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	selected := c.Selector.SelectRelevantProjects(ctx, selectProjectsUser, job, selectProjectsMax)

	if verbose {
		c.Printer.PrintSelectedProjects(selected)
	}

	if err := writeJSONFile(selectProjectsOutput, selected); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully selected %d projects to %s\n", len(selected), selectProjectsOutput)
	return nil
}

// loadJobFile reads a job posting JSON file, validates it against the job
// schema, and unmarshals it.
func loadJobFile(path string) (*types.Job, error) {
	jobContent, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.SchemaJob, jobContent); err != nil {
		return nil, fmt.Errorf("job file failed validation: %w", err)
	}

	var job types.Job
	if err := json.Unmarshal(jobContent, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return &job, nil
}
