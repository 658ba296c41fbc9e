package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/types"
)

var buildContextCmd = &cobra.Command{
	Use:   "build-context",
	Short: "Assemble the generation context for a CV or cover letter",
	Long:  "Retrieves the user profile and job posting, selects relevant projects, and (for CVs) runs the page budget pass, producing the complete context JSON consumed by document generation.",
	RunE:  runBuildContext,
}

var (
	buildContextUser     string
	buildContextJob      string
	buildContextOutput   string
	buildContextType     string
	buildContextPages    int
	buildContextProjects bool
)

func init() {
	buildContextCmd.Flags().StringVarP(&buildContextUser, "user", "u", "", "User ID to build context for (required)")
	buildContextCmd.Flags().StringVarP(&buildContextJob, "job", "j", "", "Path to input job JSON file (required)")
	buildContextCmd.Flags().StringVarP(&buildContextOutput, "out", "o", "", "Path to output context JSON file (required)")
	buildContextCmd.Flags().StringVarP(&buildContextType, "type", "t", "cv", "Document type: cv or cover-letter")
	buildContextCmd.Flags().IntVarP(&buildContextPages, "pages", "p", 0, "Target CV page count (0 = config default)")
	buildContextCmd.Flags().BoolVar(&buildContextProjects, "include-projects", true, "Include the projects section in a CV")

	if err := buildContextCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := buildContextCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := buildContextCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildContextCmd)
}

func runBuildContext(cmd *cobra.Command, _ []string) error {
	if buildContextType != "cv" && buildContextType != "cover-letter" {
		return fmt.Errorf("invalid document type %q: must be cv or cover-letter", buildContextType)
	}

	job, err := loadJobFile(buildContextJob)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c, cleanup, err := newComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var result types.GenerationContext
	switch buildContextType {
	case "cv":
		prefs := types.CVPreferences{
			CVLength:         c.Config.CVLength,
			IncludeProjects:  buildContextProjects && c.Config.IncludeProjects,
			MaxProjectsPerCV: c.Config.MaxProjectsPerCV,
		}
		if buildContextPages != 0 {
			prefs.CVLength = buildContextPages
		}
		result = c.Pipeline.BuildCVContext(ctx, buildContextUser, job, &prefs)

		if verbose {
			c.Printer.PrintSelectedProjects(result.SelectedProjects)
			c.Printer.PrintBudgetReport(result.Content, prefs.CVLength)
		}
	case "cover-letter":
		result = c.Pipeline.BuildCoverLetterContext(ctx, buildContextUser, job)

		if verbose {
			c.Printer.PrintSelectedProjects(result.SelectedProjects)
		}
	}

	if err := writeJSONFile(buildContextOutput, result); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully built %s context to %s\n", buildContextType, buildContextOutput)
	return nil
}
