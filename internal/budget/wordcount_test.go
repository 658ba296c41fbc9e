package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestEstimateWordCount_Empty(t *testing.T) {
	assert.Equal(t, 0, EstimateWordCount(&types.OptimizedContent{}))
}

func TestEstimateWordCount_ContactBlock(t *testing.T) {
	content := types.OptimizedContent{Contact: types.ContactInfo{Name: "Jane Doe"}}
	assert.Equal(t, 20, EstimateWordCount(&content), "Any non-empty contact block costs a flat 20 words")
}

func TestEstimateWordCount_Sections(t *testing.T) {
	content := types.OptimizedContent{
		Summary: "Backend engineer with ten years of experience.", // 7 words
		Skills:  []string{"Go", "PostgreSQL", "Docker"},           // 3 * 2 = 6
		Experience: []types.Role{
			{
				Title:        "Senior Engineer",               // 2
				Company:      "Acme",                          // 1
				Achievements: []string{"Cut latency in half"}, // 4
			},
		},
		Projects: []types.Project{
			{
				Title:        "Job Board",                   // 2
				Description:  "A hiring platform",           // 3
				Technologies: []string{"Go", "React"},       // 2 * 2 = 4
				Highlights:   []string{"Scaled to 1m rows"}, // 4
			},
		},
		Education: []types.Degree{{Degree: "BSc"}},  // 15
		Languages: []string{"English", "French"},    // 2 * 2 = 4
	}

	assert.Equal(t, 7+6+2+1+4+2+3+4+4+15+4, EstimateWordCount(&content))
}
