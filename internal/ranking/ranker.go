package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// DefaultWorkers bounds concurrent job scorings per RankJobs call.
const DefaultWorkers = 8

// ProfileStore is the slice of the relational store the scorer reads from.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
}

// Scorer computes composite match scores for (profile, job) pairs.
// Safe for concurrent use; it holds no mutable state across calls.
type Scorer struct {
	store    ProfileStore
	vectors  vectorstore.Store
	embedder embeddings.Embedder
	log      *zap.Logger
	workers  int
	now      func() time.Time
}

// NewScorer creates a Scorer with its external collaborators injected.
// A nil logger is replaced with a no-op logger.
func NewScorer(store ProfileStore, vectors vectorstore.Store, embedder embeddings.Embedder, log *zap.Logger) *Scorer {
	return &Scorer{
		store:    store,
		vectors:  vectors,
		embedder: embedder,
		log:      logger.WithFields(log),
		workers:  DefaultWorkers,
		now:      time.Now,
	}
}

// WithWorkers sets the worker pool size for RankJobs. Values below 1 fall
// back to sequential scoring.
func (s *Scorer) WithWorkers(n int) *Scorer {
	if n < 1 {
		n = 1
	}
	s.workers = n
	return s
}

// Score computes the full match score breakdown for one (profile, job) pair.
// Each component degrades to its documented fallback instead of failing the
// pair; the only error path is a nil job.
func (s *Scorer) Score(ctx context.Context, profile *types.Profile, job *types.Job) (types.MatchScoreBreakdown, error) {
	if job == nil {
		return types.MatchScoreBreakdown{}, fmt.Errorf("job is nil")
	}
	if profile == nil {
		return types.MatchScoreBreakdown{}, fmt.Errorf("profile is nil")
	}

	breakdown := types.MatchScoreBreakdown{
		SemanticSimilarity: s.computeSemanticSimilarity(ctx, profile.UserID, job),
		SkillMatch:         computeSkillMatchScore(profile.Skills, job.RequiredSkills),
		LocationMatch:      computeLocationMatchScore(profile.LocationPreference, job.Location),
		JobTypeMatch:       computeJobTypeMatchScore(profile.Preferences.PreferredJobTypes, job.JobType),
		LanguageMatch:      computeLanguageMatchScore(profile.Languages, job.Language),
		Freshness:          computeFreshnessScore(job.PostingDate, s.now()),
		PastSuccessBoost:   computePastSuccessBoost(profile.UserID, job),
	}

	breakdown.Total = breakdown.SemanticSimilarity*semanticSimilarityWeight +
		breakdown.SkillMatch*skillMatchWeight +
		breakdown.LocationMatch*locationMatchWeight +
		breakdown.JobTypeMatch*jobTypeMatchWeight +
		breakdown.LanguageMatch*languageMatchWeight +
		breakdown.Freshness*freshnessWeight +
		breakdown.PastSuccessBoost

	return breakdown, nil
}

// computeSemanticSimilarity compares the stored profile embedding with a
// freshly computed job embedding. Any failure (missing profile embedding,
// embedder outage) degrades to 0 and is logged; semantic similarity is never
// fatal to a scoring.
func (s *Scorer) computeSemanticSimilarity(ctx context.Context, userID string, job *types.Job) float64 {
	profileVec, err := s.vectors.GetEmbedding(ctx, vectorstore.CollectionUserProfiles, userID)
	if err != nil {
		s.log.Warn("profile embedding unavailable, semantic similarity degraded to 0",
			zap.String(logger.FieldUserID, userID), zap.Error(err))
		return 0.0
	}

	jobVec, err := s.embedder.EmbedText(ctx, embeddings.FormatJobText(job))
	if err != nil {
		s.log.Warn("job embedding failed, semantic similarity degraded to 0",
			append(logger.JobFields(job.ID, job.Title), zap.Error(err))...)
		return 0.0
	}

	return embeddings.CosineSimilarity(profileVec, jobVec)
}

// RankJobs scores every job for the given user and returns them sorted by
// total score descending; ties keep input order. A job whose scoring fails
// gets total 0 rather than aborting the batch. Scoring runs on a bounded
// worker pool; results are written back by input index so the final order is
// identical to sequential evaluation.
func (s *Scorer) RankJobs(ctx context.Context, userID string, jobs []types.Job, topN int) ([]types.RankedJob, error) {
	ranked := make([]types.RankedJob, len(jobs))
	if len(jobs) == 0 {
		return ranked, nil
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil || profile == nil {
		// Missing profile degrades every job to zero; the batch still
		// completes so callers keep a stable contract.
		s.log.Warn("profile unavailable, ranking degraded to zero scores",
			zap.String(logger.FieldUserID, userID), zap.Error(err))
		for i, job := range jobs {
			ranked[i] = types.RankedJob{Job: job}
		}
		if topN > 0 && len(ranked) > topN {
			ranked = ranked[:topN]
		}
		return ranked, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range jobs {
		g.Go(func() error {
			job := jobs[i]
			breakdown, err := s.Score(gctx, profile, &job)
			if err != nil {
				s.log.Warn("job scoring failed, assigned zero score",
					append(logger.JobFields(job.ID, job.Title), zap.Error(err))...)
				ranked[i] = types.RankedJob{Job: job}
				return nil
			}
			ranked[i] = types.RankedJob{
				Job:        job,
				MatchScore: breakdown.Total,
				Breakdown:  breakdown,
			}
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking interrupted: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	s.log.Info("ranked jobs",
		zap.String(logger.FieldUserID, userID),
		zap.Int("jobs", len(jobs)),
		zap.Int("returned", len(ranked)))

	return ranked, nil
}
