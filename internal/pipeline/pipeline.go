package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/budget"
	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/selection"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// coverLetterMaxProjects caps how many projects a cover letter mentions.
const coverLetterMaxProjects = 2

// Formatting caps for the projects context block.
const (
	contextMaxTechs       = 5
	contextMaxHighlights  = 2
	contextMaxDescription = 200 // characters
)

// Pipeline sequences retrieval, project selection, and budget optimization
// into one context object consumed by document generation.
type Pipeline struct {
	store     Store
	selector  *selection.ProjectSelector
	optimizer *budget.PageOptimizer
	embedder  embeddings.Embedder
	vectors   vectorstore.Store
	log       *zap.Logger
}

// New creates a Pipeline with its collaborators injected.
// A nil logger is replaced with a no-op logger.
func New(store Store, selector *selection.ProjectSelector, optimizer *budget.PageOptimizer,
	embedder embeddings.Embedder, vectors vectorstore.Store, log *zap.Logger) *Pipeline {
	return &Pipeline{
		store:     store,
		selector:  selector,
		optimizer: optimizer,
		embedder:  embedder,
		vectors:   vectors,
		log:       logger.WithFields(log),
	}
}

// BuildCVContext assembles the complete context for CV generation:
// profile and job retrieval, project selection when enabled, section
// assembly, and the budget pass. Missing records degrade to empty context
// strings; nothing here is fatal.
func (p *Pipeline) BuildCVContext(ctx context.Context, userID string, job *types.Job, prefs *types.CVPreferences) types.GenerationContext {
	preferences := types.DefaultCVPreferences()
	if prefs != nil {
		preferences = *prefs
	}

	profile, profileContext, jobContext := p.retrieveContexts(ctx, userID, job)

	var selected []types.ScoredProject
	projectsContext := ""
	if preferences.IncludeProjects {
		selected = p.selector.SelectRelevantProjects(ctx, userID, job, preferences.MaxProjectsPerCV)
		projectsContext = FormatProjectsContext(selected)
	}

	draft := assembleDraft(profile, selected)
	optimized := p.optimizer.Optimize(&draft, preferences.CVLength, preferences.IncludeProjects)

	p.log.Info("built CV context",
		append(logger.JobFields(job.ID, job.Title),
			zap.String(logger.FieldUserID, userID),
			zap.Int("profile_chars", len(profileContext)),
			zap.Int("projects", len(selected)))...)

	return types.GenerationContext{
		ProfileContext:   profileContext,
		JobContext:       jobContext,
		ProjectsContext:  projectsContext,
		SelectedProjects: selected,
		Preferences:      preferences,
		Job:              *job,
		Content:          &optimized,
	}
}

// BuildCoverLetterContext assembles the context for cover letter generation:
// profile, job, and up to two key projects. Cover letters are single-page
// free text, so there is no budget pass.
func (p *Pipeline) BuildCoverLetterContext(ctx context.Context, userID string, job *types.Job) types.GenerationContext {
	_, profileContext, jobContext := p.retrieveContexts(ctx, userID, job)

	selected := p.selector.SelectRelevantProjects(ctx, userID, job, coverLetterMaxProjects)

	p.log.Info("built cover letter context",
		append(logger.JobFields(job.ID, job.Title),
			zap.String(logger.FieldUserID, userID),
			zap.Int("projects", len(selected)))...)

	return types.GenerationContext{
		ProfileContext:   profileContext,
		JobContext:       jobContext,
		ProjectsContext:  FormatProjectsContext(selected),
		SelectedProjects: selected,
		Preferences:      types.DefaultCVPreferences(),
		Job:              *job,
	}
}

// retrieveContexts fetches the profile record and both context strings.
// Profile and job retrieval are independent reads and run concurrently.
func (p *Pipeline) retrieveContexts(ctx context.Context, userID string, job *types.Job) (*types.Profile, string, string) {
	var profile *types.Profile
	var jobContext string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = p.store.GetProfile(gctx, userID)
		if err != nil {
			p.log.Warn("profile retrieval failed, continuing without personalization",
				zap.String(logger.FieldUserID, userID), zap.Error(err))
			profile = nil
		}
		return nil
	})
	g.Go(func() error {
		stored, err := p.store.GetJob(gctx, job.ID)
		if err != nil || stored == nil {
			// The posting may not be persisted yet; fall back to the record
			// in hand so the context is never silently empty.
			jobContext = FormatJobContext(job)
			return nil
		}
		jobContext = FormatJobContext(stored)
		return nil
	})
	_ = g.Wait() // branches always return nil

	profileContext := ""
	if profile != nil {
		profileContext = FormatProfileContext(profile)
	}

	p.log.Debug("retrieved contexts",
		zap.String(logger.FieldUserID, userID),
		zap.String("job_preview", logger.TruncateForLog(jobContext, 120)))

	return profile, profileContext, jobContext
}

// assembleDraft builds the draft CV sections from the profile and the
// selected projects. A nil profile yields an empty draft (degraded mode).
func assembleDraft(profile *types.Profile, selected []types.ScoredProject) types.DraftContent {
	var draft types.DraftContent

	if profile != nil {
		draft.Contact = types.ContactInfo{
			Name:     profile.FullName,
			Email:    profile.Email,
			Phone:    profile.Phone,
			Location: profile.LocationPreference,
			LinkedIn: profile.LinkedIn,
		}
		draft.Skills = profile.Skills
		draft.Experience = profile.Experience
		draft.Education = profile.Education
		draft.Languages = profile.Languages
	}

	for _, scored := range selected {
		draft.Projects = append(draft.Projects, scored.Project)
	}

	return draft
}

// FormatProjectsContext renders selected projects into the context block fed
// to the generator, including each project's relevance score and matches.
func FormatProjectsContext(projects []types.ScoredProject) string {
	if len(projects) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n=== SELECTED PROJECTS ===\n")

	for i, scored := range projects {
		project := scored.Project

		sb.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, project.Title))
		sb.WriteString(fmt.Sprintf("   Relevance Score: %.2f\n", scored.RelevanceScore))

		techs := scored.MatchingTechnologies
		if len(techs) > contextMaxTechs {
			techs = techs[:contextMaxTechs]
		}
		sb.WriteString(fmt.Sprintf("   Matching Technologies: %s\n", strings.Join(techs, ", ")))

		desc := project.Description
		if len(desc) > contextMaxDescription {
			desc = desc[:contextMaxDescription]
		}
		sb.WriteString(fmt.Sprintf("   Description: %s\n", desc))

		if len(project.Highlights) > 0 {
			highlights := project.Highlights
			if len(highlights) > contextMaxHighlights {
				highlights = highlights[:contextMaxHighlights]
			}
			sb.WriteString(fmt.Sprintf("   Highlights: %s\n", strings.Join(highlights, " | ")))
		}

		if len(project.Technologies) > 0 {
			stack := project.Technologies
			if len(stack) > contextMaxTechs {
				stack = stack[:contextMaxTechs]
			}
			sb.WriteString(fmt.Sprintf("   Tech Stack: %s\n", strings.Join(stack, ", ")))
		}
	}

	return sb.String()
}
