package budget

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Word-count estimation heuristics. Contact blocks and degrees render at a
// roughly fixed size; list items cost about two words each.
const (
	contactEstimateWords = 20
	wordsPerSkill        = 2
	wordsPerTechnology   = 2
	wordsPerDegree       = 15
	wordsPerLanguage     = 2
)

// EstimateWordCount approximates how many words the optimized content will
// render to, using per-section heuristics rather than exact layout math.
func EstimateWordCount(content *types.OptimizedContent) int {
	total := 0

	if content.Contact != (types.ContactInfo{}) {
		total += contactEstimateWords
	}

	total += countWords(content.Summary)
	total += len(content.Skills) * wordsPerSkill

	for _, role := range content.Experience {
		total += countWords(role.Title)
		total += countWords(role.Company)
		total += countWords(role.Description)
		for _, achievement := range role.Achievements {
			total += countWords(achievement)
		}
	}

	for _, project := range content.Projects {
		total += countWords(project.Title)
		total += countWords(project.Description)
		total += len(project.Technologies) * wordsPerTechnology
		for _, highlight := range project.Highlights {
			total += countWords(highlight)
		}
	}

	total += len(content.Education) * wordsPerDegree
	total += len(content.Languages) * wordsPerLanguage

	return total
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
