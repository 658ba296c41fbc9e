// Package selection chooses a candidate's most relevant projects for a
// specific job posting.
package selection

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// Blend weights for the project relevance score.
const (
	weightSemanticSimilarity = 0.6
	weightTechOverlap        = 0.4
)

// overfetchFactor controls how many nearest-neighbor candidates are pulled
// per requested project, leaving room for re-ranking by tech overlap.
const overfetchFactor = 2

// ProjectStore is the slice of the relational store the selector reads from.
type ProjectStore interface {
	GetProject(ctx context.Context, projectID string) (*types.Project, error)
}

// ProjectSelector ranks a candidate's projects against a job.
// Stateless across calls and safe for concurrent use.
type ProjectSelector struct {
	store    ProjectStore
	vectors  vectorstore.Store
	embedder embeddings.Embedder
	log      *zap.Logger
}

// NewProjectSelector creates a ProjectSelector with its collaborators injected.
// A nil logger is replaced with a no-op logger.
func NewProjectSelector(store ProjectStore, vectors vectorstore.Store, embedder embeddings.Embedder, log *zap.Logger) *ProjectSelector {
	return &ProjectSelector{
		store:    store,
		vectors:  vectors,
		embedder: embedder,
		log:      logger.WithFields(log),
	}
}

// SelectRelevantProjects returns up to maxProjects of the user's projects,
// sorted by relevance to the job, each with a human-readable selection
// reason. Project recommendation is best-effort: any failure yields an empty
// list (logged), never an error that would block CV assembly.
func (ps *ProjectSelector) SelectRelevantProjects(ctx context.Context, userID string, job *types.Job, maxProjects int) []types.ScoredProject {
	if job == nil || maxProjects <= 0 {
		return nil
	}

	candidates, err := ps.queryCandidates(ctx, userID, job, maxProjects*overfetchFactor)
	if err != nil {
		ps.log.Warn("project selection failed, returning no projects",
			append(logger.JobFields(job.ID, job.Title),
				zap.String(logger.FieldUserID, userID), zap.Error(err))...)
		return nil
	}
	if len(candidates) == 0 {
		ps.log.Info("no indexed projects for user",
			zap.String(logger.FieldUserID, userID))
		return nil
	}

	jobSkills := jobSkillSet(job)

	scored := make([]types.ScoredProject, 0, len(candidates))
	for _, candidate := range candidates {
		project, err := ps.store.GetProject(ctx, candidate.ID)
		if err != nil || project == nil {
			// A vector hit without a backing record is stale index data;
			// skip it rather than failing the selection.
			ps.log.Warn("skipping project with missing record",
				zap.String("project_id", candidate.ID), zap.Error(err))
			continue
		}

		semantic := 1.0 / (1.0 + candidate.Distance)
		overlap, matching := computeTechOverlap(jobSkills, project.Technologies)

		scored = append(scored, types.ScoredProject{
			Project:              *project,
			RelevanceScore:       semantic*weightSemanticSimilarity + overlap*weightTechOverlap,
			SemanticSimilarity:   semantic,
			TechOverlap:          overlap,
			MatchingTechnologies: matching,
			SelectionReason:      selectionReason(semantic, overlap, matching),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if len(scored) > maxProjects {
		scored = scored[:maxProjects]
	}

	ps.log.Info("selected projects",
		zap.String(logger.FieldUserID, userID),
		zap.Int("selected", len(scored)))

	return scored
}

// queryCandidates embeds the job and asks the vector index for the user's
// nearest projects.
func (ps *ProjectSelector) queryCandidates(ctx context.Context, userID string, job *types.Job, k int) ([]vectorstore.Result, error) {
	// Prefer the stored job embedding; fall back to embedding the job text
	// for postings not yet ingested into the index.
	jobVec, err := ps.vectors.GetEmbedding(ctx, vectorstore.CollectionJobDescriptions, job.ID)
	if err != nil {
		jobVec, err = ps.embedder.EmbedText(ctx, embeddings.FormatJobText(job))
		if err != nil {
			return nil, fmt.Errorf("failed to embed job: %w", err)
		}
	}

	results, err := ps.vectors.Query(ctx, vectorstore.CollectionUserProjects, jobVec, k,
		map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	return results, nil
}

// jobSkillSet builds the lowercased skill set for a job. Declared skills are
// folded together with their lowercased duplicates so a skill listed twice in
// different casings counts once.
func jobSkillSet(job *types.Job) map[string]bool {
	skills := make(map[string]bool, len(job.RequiredSkills))
	for _, skill := range job.RequiredSkills {
		trimmed := strings.ToLower(strings.TrimSpace(skill))
		if trimmed != "" {
			skills[trimmed] = true
		}
	}
	return skills
}

// computeTechOverlap returns the fraction of job skills covered by the
// project's technologies and the sorted list of matches.
func computeTechOverlap(jobSkills map[string]bool, technologies []string) (float64, []string) {
	if len(jobSkills) == 0 {
		return 0, nil
	}

	matching := make([]string, 0)
	seen := make(map[string]bool)
	for _, tech := range technologies {
		t := strings.ToLower(strings.TrimSpace(tech))
		if t != "" && jobSkills[t] && !seen[t] {
			matching = append(matching, t)
			seen[t] = true
		}
	}
	sort.Strings(matching)

	return float64(len(matching)) / float64(len(jobSkills)), matching
}
