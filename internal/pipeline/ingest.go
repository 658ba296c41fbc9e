package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// Embedding ingestion runs in a phase disjoint from ranking and selection:
// writes happen here, reads happen there. Callers re-run the relevant upsert
// whenever the underlying text changes.

// ProjectLister enumerates a user's stored projects for bulk re-embedding.
type ProjectLister interface {
	ListProjects(ctx context.Context, userID string) ([]types.Project, error)
}

// UpsertProfileEmbedding regenerates and stores the embedding for a profile.
func (p *Pipeline) UpsertProfileEmbedding(ctx context.Context, profile *types.Profile) error {
	vector, err := p.embedder.EmbedText(ctx, embeddings.FormatProfileText(profile))
	if err != nil {
		return fmt.Errorf("failed to embed profile: %w", err)
	}

	err = p.vectors.Upsert(ctx, vectorstore.CollectionUserProfiles, profile.UserID, vector,
		map[string]string{"user_id": profile.UserID})
	if err != nil {
		return fmt.Errorf("failed to store profile embedding: %w", err)
	}

	p.log.Info("upserted profile embedding", zap.String(logger.FieldUserID, profile.UserID))
	return nil
}

// UpsertJobEmbedding regenerates and stores the embedding for a job posting.
func (p *Pipeline) UpsertJobEmbedding(ctx context.Context, job *types.Job) error {
	if job.ID == "" {
		return fmt.Errorf("job has no id")
	}

	vector, err := p.embedder.EmbedText(ctx, embeddings.FormatJobText(job))
	if err != nil {
		return fmt.Errorf("failed to embed job: %w", err)
	}

	err = p.vectors.Upsert(ctx, vectorstore.CollectionJobDescriptions, job.ID, vector,
		map[string]string{"company": job.Company})
	if err != nil {
		return fmt.Errorf("failed to store job embedding: %w", err)
	}

	p.log.Info("upserted job embedding", logger.JobFields(job.ID, job.Title)...)
	return nil
}

// UpsertProjectEmbedding regenerates and stores the embedding for a project,
// tagged with its owner so selection can filter by user.
func (p *Pipeline) UpsertProjectEmbedding(ctx context.Context, project *types.Project) error {
	if project.ID == "" {
		return fmt.Errorf("project has no id")
	}

	vector, err := p.embedder.EmbedText(ctx, embeddings.FormatProjectText(project))
	if err != nil {
		return fmt.Errorf("failed to embed project: %w", err)
	}

	err = p.vectors.Upsert(ctx, vectorstore.CollectionUserProjects, project.ID, vector,
		map[string]string{"user_id": project.UserID})
	if err != nil {
		return fmt.Errorf("failed to store project embedding: %w", err)
	}

	p.log.Info("upserted project embedding",
		zap.String("project_id", project.ID),
		zap.String(logger.FieldUserID, project.UserID))
	return nil
}

// ReindexProjectEmbeddings re-embeds every project a user owns in one batch
// and rewrites the index entries. Returns the number of projects reindexed.
// Used after a bulk import or an embedding model change.
func (p *Pipeline) ReindexProjectEmbeddings(ctx context.Context, lister ProjectLister, userID string) (int, error) {
	projects, err := lister.ListProjects(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return 0, nil
	}

	texts := make([]string, len(projects))
	for i := range projects {
		texts[i] = embeddings.FormatProjectText(&projects[i])
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed projects: %w", err)
	}
	if len(vectors) != len(projects) {
		return 0, fmt.Errorf("expected %d embeddings, got %d", len(projects), len(vectors))
	}

	for i, project := range projects {
		err := p.vectors.Upsert(ctx, vectorstore.CollectionUserProjects, project.ID, vectors[i],
			map[string]string{"user_id": project.UserID})
		if err != nil {
			return i, fmt.Errorf("failed to store embedding for project %s: %w", project.ID, err)
		}
	}

	p.log.Info("reindexed project embeddings",
		zap.String(logger.FieldUserID, userID),
		zap.Int("projects", len(projects)))
	return len(projects), nil
}
