package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSkillMatchScore_PartialOverlap(t *testing.T) {
	profile := []string{"Go", "Python", "Docker"}
	job := []string{"go", "kubernetes", "python"}

	score := computeSkillMatchScore(profile, job)
	assert.InDelta(t, 2.0/3.0, score, 1e-9, "Two of three required skills matched")
}

func TestComputeSkillMatchScore_CaseInsensitive(t *testing.T) {
	score := computeSkillMatchScore([]string{"PostgreSQL"}, []string{"postgresql"})
	assert.Equal(t, 1.0, score, "Skill matching should ignore case")
}

func TestComputeSkillMatchScore_NoRequiredSkills(t *testing.T) {
	score := computeSkillMatchScore([]string{"Go"}, nil)
	assert.Equal(t, 0.5, score, "Jobs listing no skills should score neutral")
}

func TestComputeSkillMatchScore_NoMatches(t *testing.T) {
	score := computeSkillMatchScore([]string{"Go"}, []string{"Java", "Scala"})
	assert.Equal(t, 0.0, score)
}

func TestComputeSkillMatchScore_DuplicateJobSkills(t *testing.T) {
	// "Go" and "go" collapse to one required skill
	score := computeSkillMatchScore([]string{"go"}, []string{"Go", "go"})
	assert.Equal(t, 1.0, score, "Duplicate skills in different casings count once")
}

func TestComputeLocationMatchScore_RemoteAlwaysMatches(t *testing.T) {
	score := computeLocationMatchScore("Berlin", "Remote (EU)")
	assert.Equal(t, 1.0, score, "Remote postings match any preference")

	score = computeLocationMatchScore("", "Remote")
	assert.Equal(t, 1.0, score, "Remote matches even with no stated preference")
}

func TestComputeLocationMatchScore_Containment(t *testing.T) {
	score := computeLocationMatchScore("Berlin", "Berlin, Germany")
	assert.Equal(t, 1.0, score, "Preference contained in job location is a full match")
}

func TestComputeLocationMatchScore_SharedToken(t *testing.T) {
	score := computeLocationMatchScore("Toronto ON", "Mississauga ON")
	assert.Equal(t, 0.7, score, "Shared region token is a partial match")
}

func TestComputeLocationMatchScore_NoOverlap(t *testing.T) {
	score := computeLocationMatchScore("Paris", "Tokyo")
	assert.Equal(t, 0.0, score)
}

func TestComputeLocationMatchScore_MissingData(t *testing.T) {
	assert.Equal(t, 0.5, computeLocationMatchScore("", "Berlin"))
	assert.Equal(t, 0.5, computeLocationMatchScore("Berlin", ""))
}

func TestComputeJobTypeMatchScore_Match(t *testing.T) {
	score := computeJobTypeMatchScore([]string{"Full-time", "Contract"}, "full-time")
	assert.Equal(t, 1.0, score)
}

func TestComputeJobTypeMatchScore_SubstringMatch(t *testing.T) {
	score := computeJobTypeMatchScore([]string{"full-time"}, "Full-Time Permanent")
	assert.Equal(t, 1.0, score, "Preference contained in job type should match")
}

func TestComputeJobTypeMatchScore_NoPreference(t *testing.T) {
	score := computeJobTypeMatchScore(nil, "full-time")
	assert.Equal(t, 0.5, score, "No declared preference should score neutral")
}

func TestComputeJobTypeMatchScore_Mismatch(t *testing.T) {
	score := computeJobTypeMatchScore([]string{"internship"}, "full-time")
	assert.Equal(t, 0.0, score)
}

func TestComputeLanguageMatchScore_English(t *testing.T) {
	score := computeLanguageMatchScore([]string{"English", "German"}, "en")
	assert.Equal(t, 1.0, score)
}

func TestComputeLanguageMatchScore_FrenchSelfDesignation(t *testing.T) {
	assert.Equal(t, 1.0, computeLanguageMatchScore([]string{"Français"}, "fr"))
	assert.Equal(t, 1.0, computeLanguageMatchScore([]string{"francais"}, "fr"))
	assert.Equal(t, 1.0, computeLanguageMatchScore([]string{"French"}, "fr"))
}

func TestComputeLanguageMatchScore_DefaultsToEnglish(t *testing.T) {
	score := computeLanguageMatchScore([]string{"English"}, "")
	assert.Equal(t, 1.0, score, "Empty job language should default to English")
}

func TestComputeLanguageMatchScore_UnknownLanguageNeutral(t *testing.T) {
	score := computeLanguageMatchScore([]string{"English"}, "de")
	assert.Equal(t, 0.5, score, "Unrecognized job languages score neutral")
}

func TestComputeLanguageMatchScore_SpeakerMissingLanguage(t *testing.T) {
	score := computeLanguageMatchScore([]string{"German"}, "en")
	assert.Equal(t, 0.5, score)
}

func TestComputeFreshnessScore_StepFunction(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ageDays  int
		expected float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 0.9},
		{3, 0.9},
		{5, 0.8},
		{7, 0.8},
		{10, 0.6},
		{14, 0.6},
		{20, 0.4},
		{30, 0.4},
		{31, 0.2},
		{90, 0.2},
	}

	for _, tc := range cases {
		posted := now.AddDate(0, 0, -tc.ageDays)
		score := computeFreshnessScore(&posted, now)
		assert.Equal(t, tc.expected, score, "age %d days", tc.ageDays)
	}
}

func TestComputeFreshnessScore_UnknownDateNeutral(t *testing.T) {
	score := computeFreshnessScore(nil, time.Now())
	assert.Equal(t, 0.5, score, "Missing posting date should score neutral")
}

func TestComputePastSuccessBoost_AlwaysZero(t *testing.T) {
	assert.Equal(t, 0.0, computePastSuccessBoost("user-1", nil))
}
