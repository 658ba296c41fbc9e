package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the project embedding index for a user",
	Long:  "Re-embeds every stored project a user owns in one batch and rewrites the vector index entries. Run after a bulk import or an embedding model change.",
	RunE:  runReindex,
}

var reindexUser string

func init() {
	reindexCmd.Flags().StringVarP(&reindexUser, "user", "u", "", "User ID whose projects to reindex (required)")

	if err := reindexCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, cleanup, err := newComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := c.Pipeline.ReindexProjectEmbeddings(ctx, c.DB, reindexUser)
	if err != nil {
		return fmt.Errorf("failed to reindex projects: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully reindexed %d projects for user %s\n", count, reindexUser)
	return nil
}
