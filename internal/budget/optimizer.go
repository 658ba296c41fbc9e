// Package budget fits assembled CV content into a fixed editorial page budget.
package budget

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
)

// SectionLimits gives the word budget per CV section for one page count,
// plus the overall ceiling the estimated total must stay under.
type SectionLimits struct {
	Contact    int
	Summary    int
	Skills     int
	Experience int
	Projects   int
	Education  int
	Languages  int
	Total      int
}

// wordLimits is tuned so typical markdown rendering fits the stated physical
// page count.
var wordLimits = map[int]SectionLimits{
	1: {Contact: 30, Summary: 50, Skills: 40, Experience: 150, Projects: 100, Education: 30, Languages: 15, Total: 415},
	2: {Contact: 40, Summary: 80, Skills: 60, Experience: 250, Projects: 200, Education: 60, Languages: 25, Total: 715},
}

// PriorityWeights documents the intended precedence between sections. It is
// not consulted for elimination order today; a future iterative reducer would
// cut the lowest-weight section first.
var PriorityWeights = map[string]float64{
	"contact":    1.00,
	"summary":    0.95,
	"experience": 0.90,
	"skills":     0.85,
	"projects":   0.80,
	"education":  0.75,
	"languages":  0.70,
}

// Per-section item caps by page count.
const (
	maxSkillsOnePage      = 10
	maxSkillsTwoPages     = 15
	maxRolesOnePage       = 3
	maxRolesTwoPages      = 5
	maxBulletsOnePage     = 3
	maxBulletsTwoPages    = 5
	maxRoleDescWords      = 50
	maxProjectsOnePage    = 1
	maxProjectsTwoPages   = 4
	maxProjectTechs       = 5
	maxHighlightsOnePage  = 2
	maxHighlightsTwoPages = 3
	maxProjDescOnePage    = 100 // characters
	maxProjDescTwoPages   = 200 // characters
	maxDegreesOnePage     = 2
	maxDegreesTwoPages    = 3
	maxCoursework         = 3
	maxLanguagesOnePage   = 4
	maxLanguagesTwoPages  = 6 // intentionally above the one-page cap; every section loosens at two pages
)

// Aggressive second-pass caps, applied when the first pass still overshoots
// the total ceiling.
const (
	aggressiveMaxRoles        = 2
	aggressiveMaxProjects     = 1
	aggressiveMaxSummaryWords = 30
	aggressiveMaxSkills       = 8
)

// ellipsis marks truncated free text.
const ellipsis = "..."

// PageOptimizer truncates draft CV content to fit a target page count.
// Deterministic and stateless; safe for concurrent use.
type PageOptimizer struct {
	log *zap.Logger
}

// NewPageOptimizer creates a PageOptimizer. A nil logger is replaced with a
// no-op logger.
func NewPageOptimizer(log *zap.Logger) *PageOptimizer {
	return &PageOptimizer{log: logger.WithFields(log)}
}

// Optimize limits every section of the draft to its word/item budget for the
// target page count. targetPages outside {1, 2} is clamped to 1 rather than
// rejected. When the estimated word total still exceeds the page ceiling, an
// aggressive second pass applies fixed harsher caps; the two-pass design
// trades proportional fairness for a simple, predictable worst case.
func (o *PageOptimizer) Optimize(content *types.DraftContent, targetPages int, includeProjects bool) types.OptimizedContent {
	if targetPages != 1 && targetPages != 2 {
		targetPages = 1
	}
	limits := wordLimits[targetPages]

	optimized := types.OptimizedContent{
		Contact:    content.Contact, // always compact, passes through
		Summary:    truncateWords(content.Summary, limits.Summary),
		Skills:     optimizeSkills(content.Skills, targetPages),
		Experience: optimizeExperience(content.Experience, targetPages),
		Education:  optimizeEducation(content.Education, targetPages),
		Languages:  optimizeLanguages(content.Languages, targetPages),
	}

	if includeProjects {
		optimized.Projects = optimizeProjects(content.Projects, targetPages)
	} else {
		optimized.Projects = []types.Project{}
	}

	total := EstimateWordCount(&optimized)
	o.log.Debug("optimized content",
		zap.Int("target_pages", targetPages),
		zap.Int("estimated_words", total),
		zap.Int("word_ceiling", limits.Total))

	if total > limits.Total {
		o.log.Info("content over word ceiling, applying aggressive pass",
			zap.Int("estimated_words", total),
			zap.Int("word_ceiling", limits.Total))
		aggressiveOptimize(&optimized, targetPages)
	}

	return optimized
}

// optimizeSkills keeps the first N skills, preserving the caller's
// relevance-sorted ordering.
func optimizeSkills(skills []string, pages int) []string {
	max := maxSkillsOnePage
	if pages == 2 {
		max = maxSkillsTwoPages
	}
	return capStrings(skills, max)
}

// optimizeExperience keeps the first roles and caps each role's achievement
// bullets and free-text description.
func optimizeExperience(experience []types.Role, pages int) []types.Role {
	maxRoles, maxBullets := maxRolesOnePage, maxBulletsOnePage
	if pages == 2 {
		maxRoles, maxBullets = maxRolesTwoPages, maxBulletsTwoPages
	}

	if len(experience) > maxRoles {
		experience = experience[:maxRoles]
	}

	optimized := make([]types.Role, 0, len(experience))
	for _, role := range experience {
		if len(role.Achievements) > 0 {
			role.Achievements = append([]string(nil), role.Achievements[:min(len(role.Achievements), maxBullets)]...)
		} else if role.Description != "" {
			role.Description = truncateWords(role.Description, maxRoleDescWords)
		}
		optimized = append(optimized, role)
	}
	return optimized
}

// optimizeProjects keeps the first projects and caps technologies,
// highlights, and description length per project.
func optimizeProjects(projects []types.Project, pages int) []types.Project {
	maxProjects, maxHighlights, maxDescChars := maxProjectsOnePage, maxHighlightsOnePage, maxProjDescOnePage
	if pages == 2 {
		maxProjects, maxHighlights, maxDescChars = maxProjectsTwoPages, maxHighlightsTwoPages, maxProjDescTwoPages
	}

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}

	optimized := make([]types.Project, 0, len(projects))
	for _, project := range projects {
		project.Technologies = capStrings(project.Technologies, maxProjectTechs)
		project.Highlights = capStrings(project.Highlights, maxHighlights)
		if len(project.Description) > maxDescChars {
			project.Description = project.Description[:maxDescChars]
		}
		optimized = append(optimized, project)
	}
	return optimized
}

// optimizeEducation keeps the first degrees; coursework survives only on
// two-page output.
func optimizeEducation(education []types.Degree, pages int) []types.Degree {
	maxDegrees := maxDegreesOnePage
	if pages == 2 {
		maxDegrees = maxDegreesTwoPages
	}

	if len(education) > maxDegrees {
		education = education[:maxDegrees]
	}

	optimized := make([]types.Degree, 0, len(education))
	for _, degree := range education {
		if pages == 2 {
			degree.Coursework = capStrings(degree.Coursework, maxCoursework)
		} else {
			degree.Coursework = nil
		}
		optimized = append(optimized, degree)
	}
	return optimized
}

func optimizeLanguages(languages []string, pages int) []string {
	max := maxLanguagesOnePage
	if pages == 2 {
		max = maxLanguagesTwoPages
	}
	return capStrings(languages, max)
}

// aggressiveOptimize applies the fixed second-pass caps in order,
// unconditionally rather than proportionally.
func aggressiveOptimize(content *types.OptimizedContent, pages int) {
	if len(content.Experience) > aggressiveMaxRoles {
		content.Experience = content.Experience[:aggressiveMaxRoles]
	}
	if pages == 1 && len(content.Projects) > aggressiveMaxProjects {
		content.Projects = content.Projects[:aggressiveMaxProjects]
	}
	if content.Summary != "" {
		content.Summary = truncatePlainWords(content.Summary, aggressiveMaxSummaryWords)
	}
	if len(content.Skills) > aggressiveMaxSkills {
		content.Skills = content.Skills[:aggressiveMaxSkills]
	}
}

// truncateWords cuts text to at most limit words, appending an ellipsis
// marker when anything was removed.
func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + ellipsis
}

// truncatePlainWords cuts text to at most limit words without an ellipsis.
func truncatePlainWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ")
}

func capStrings(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
