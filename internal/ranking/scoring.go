// Package ranking computes multi-signal match scores between candidate
// profiles and job postings.
package ranking

import (
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Weights for the composite match score. They sum to 100 so totals land on a
// 0-100 display scale. Fixed design constants, not tunable at runtime.
const (
	semanticSimilarityWeight = 30.0
	skillMatchWeight         = 30.0
	locationMatchWeight      = 15.0
	jobTypeMatchWeight       = 15.0
	languageMatchWeight      = 5.0
	freshnessWeight          = 5.0
)

// neutralScore is the fallback for sub-scores that cannot be computed from
// the available data (missing fields, unknown dates). Neither rewards nor
// penalizes under-specified records.
const neutralScore = 0.5

// computeSkillMatchScore calculates the fraction of the job's required skills
// present in the profile, case-insensitively. Jobs that list no skills get a
// neutral score so under-specified postings are not penalized.
func computeSkillMatchScore(profileSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return neutralScore
	}

	profileSet := lowerSet(profileSkills)
	jobSet := lowerSet(jobSkills)

	overlap := 0
	for skill := range jobSet {
		if profileSet[skill] {
			overlap++
		}
	}

	return float64(overlap) / float64(len(jobSet))
}

// computeLocationMatchScore compares the candidate's preferred location with
// the job location. Remote postings always match; otherwise substring
// containment in either direction is a full match and a shared
// whitespace-delimited token (same city or region) a partial one.
func computeLocationMatchScore(preferredLocation, jobLocation string) float64 {
	userLoc := strings.ToLower(strings.TrimSpace(preferredLocation))
	jobLoc := strings.ToLower(strings.TrimSpace(jobLocation))

	if strings.Contains(jobLoc, "remote") {
		return 1.0
	}

	if userLoc == "" || jobLoc == "" {
		return neutralScore
	}

	if strings.Contains(jobLoc, userLoc) || strings.Contains(userLoc, jobLoc) {
		return 1.0
	}

	userParts := tokenSet(userLoc)
	for token := range tokenSet(jobLoc) {
		if userParts[token] {
			return 0.7
		}
	}

	return 0.0
}

// computeJobTypeMatchScore checks the job type against the candidate's
// preferred types using case-insensitive substring containment in either
// direction. No declared preference yields a neutral score.
func computeJobTypeMatchScore(preferredTypes []string, jobType string) float64 {
	if len(preferredTypes) == 0 {
		return neutralScore
	}

	jt := strings.ToLower(strings.TrimSpace(jobType))
	for _, pref := range preferredTypes {
		p := strings.ToLower(strings.TrimSpace(pref))
		if p == "" {
			continue
		}
		if strings.Contains(jt, p) || strings.Contains(p, jt) {
			return 1.0
		}
	}

	return 0.0
}

// computeLanguageMatchScore checks whether the candidate lists the posting's
// language among their spoken languages. English and French are recognized by
// name, including the French self-designations; anything else scores neutral.
// Heuristic, not exhaustive.
func computeLanguageMatchScore(userLanguages []string, jobLanguage string) float64 {
	spoken := lowerSet(userLanguages)
	jobLang := strings.ToLower(strings.TrimSpace(jobLanguage))
	if jobLang == "" {
		jobLang = "en"
	}

	if jobLang == "en" && (spoken["english"] || spoken["anglais"]) {
		return 1.0
	}
	if jobLang == "fr" && (spoken["french"] || spoken["français"] || spoken["francais"]) {
		return 1.0
	}

	return neutralScore
}

// computeFreshnessScore maps posting age in days to a step-function score.
// Unknown posting dates score neutral.
func computeFreshnessScore(postingDate *time.Time, now time.Time) float64 {
	if postingDate == nil {
		return neutralScore
	}

	ageDays := int(now.Sub(*postingDate).Hours() / 24)

	switch {
	case ageDays <= 1:
		return 1.0
	case ageDays <= 3:
		return 0.9
	case ageDays <= 7:
		return 0.8
	case ageDays <= 14:
		return 0.6
	case ageDays <= 30:
		return 0.4
	default:
		return 0.2
	}
}

// computePastSuccessBoost is a reserved hook for boosting jobs similar to
// previously successful applications. It returns 0 until application-outcome
// tracking exists; the field is kept in the breakdown so callers already see
// its slot.
func computePastSuccessBoost(_ string, _ *types.Job) float64 {
	return 0.0
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		trimmed := strings.ToLower(strings.TrimSpace(item))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}
