package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankJobsRequest_Validate(t *testing.T) {
	valid := RankJobsRequest{
		UserID: "user-1",
		Jobs:   []Job{{ID: "a", Title: "Engineer", Company: "Acme"}},
	}
	assert.NoError(t, valid.Validate())

	missingUser := RankJobsRequest{Jobs: []Job{{ID: "a"}}}
	assert.Error(t, missingUser.Validate())

	missingJobs := RankJobsRequest{UserID: "user-1"}
	assert.Error(t, missingJobs.Validate())

	negativeTopN := valid
	negativeTopN.TopN = -1
	assert.Error(t, negativeTopN.Validate())
}

func TestSelectProjectsRequest_Validate(t *testing.T) {
	valid := SelectProjectsRequest{
		UserID: "user-1",
		Job:    Job{ID: "a", Title: "Engineer", Company: "Acme"},
	}
	assert.NoError(t, valid.Validate())

	missingUser := SelectProjectsRequest{Job: Job{ID: "a", Title: "Engineer"}}
	assert.Error(t, missingUser.Validate())

	tooMany := valid
	tooMany.MaxProjects = 11
	assert.Error(t, tooMany.Validate(), "Max projects is capped at 10")
}

func TestOptimizeContentRequest_Validate(t *testing.T) {
	req := OptimizeContentRequest{
		Content:     DraftContent{Summary: "An engineer."},
		TargetPages: 7,
	}
	assert.NoError(t, req.Validate(), "Out-of-range pages are clamped downstream, not rejected")
}

func TestBuildContextRequest_Validate(t *testing.T) {
	valid := BuildContextRequest{
		UserID: "user-1",
		Job:    Job{ID: "a", Title: "Engineer", Company: "Acme"},
	}
	assert.NoError(t, valid.Validate())

	missingUser := BuildContextRequest{Job: Job{ID: "a", Title: "Engineer"}}
	assert.Error(t, missingUser.Validate())
}

func TestDefaultCVPreferences(t *testing.T) {
	prefs := DefaultCVPreferences()
	assert.Equal(t, 1, prefs.CVLength)
	assert.True(t, prefs.IncludeProjects)
	assert.Equal(t, 3, prefs.MaxProjectsPerCV)
}
