package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Store a profile, job, or project and its embedding",
	Long:  "Validates a record against its JSON schema, saves it to the database, and regenerates its embedding so ranking and selection see the latest text.",
	RunE:  runIngest,
}

var (
	ingestType  string
	ingestInput string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestType, "type", "t", "", "Record type: profile, job, or project (required)")
	ingestCmd.Flags().StringVarP(&ingestInput, "file", "f", "", "Path to input record JSON file (required)")

	if err := ingestCmd.MarkFlagRequired("type"); err != nil {
		panic(fmt.Sprintf("failed to mark type flag as required: %v", err))
	}
	if err := ingestCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(ingestInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", ingestInput, err)
	}

	ctx := cmd.Context()
	c, cleanup, err := newComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	switch ingestType {
	case "profile":
		if err := schemas.Validate(schemas.SchemaProfile, content); err != nil {
			return fmt.Errorf("profile failed validation: %w", err)
		}
		var profile types.Profile
		if err := json.Unmarshal(content, &profile); err != nil {
			return fmt.Errorf("failed to unmarshal profile JSON: %w", err)
		}
		if err := c.DB.UpsertProfile(ctx, &profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		if err := c.Pipeline.UpsertProfileEmbedding(ctx, &profile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested profile for user %s\n", profile.UserID)

	case "job":
		if err := schemas.Validate(schemas.SchemaJob, content); err != nil {
			return fmt.Errorf("job failed validation: %w", err)
		}
		var job types.Job
		if err := json.Unmarshal(content, &job); err != nil {
			return fmt.Errorf("failed to unmarshal job JSON: %w", err)
		}
		if err := c.DB.SaveJob(ctx, &job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		if err := c.Pipeline.UpsertJobEmbedding(ctx, &job); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested job %s\n", job.ID)

	case "project":
		var project types.Project
		if err := json.Unmarshal(content, &project); err != nil {
			return fmt.Errorf("failed to unmarshal project JSON: %w", err)
		}
		if err := c.DB.SaveProject(ctx, &project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		if err := c.Pipeline.UpsertProjectEmbedding(ctx, &project); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested project %s\n", project.ID)

	default:
		return fmt.Errorf("invalid record type %q: must be profile, job, or project", ingestType)
	}

	return nil
}
