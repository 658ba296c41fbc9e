package types

import (
	"github.com/go-playground/validator/v10"
)

// RankJobsRequest is the payload for a ranking run.
type RankJobsRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Jobs   []Job  `json:"jobs" validate:"required"`
	TopN   int    `json:"top_n,omitempty" validate:"gte=0"`
}

// Validate validates the RankJobsRequest using the validator.
func (r *RankJobsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SelectProjectsRequest is the payload for project selection.
type SelectProjectsRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Job         Job    `json:"job" validate:"required"`
	MaxProjects int    `json:"max_projects,omitempty" validate:"gte=0,lte=10"`
}

// Validate validates the SelectProjectsRequest using the validator.
func (r *SelectProjectsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// OptimizeContentRequest is the payload for budget optimization.
type OptimizeContentRequest struct {
	Content         DraftContent `json:"content"`
	TargetPages     int          `json:"target_pages,omitempty"`
	IncludeProjects bool         `json:"include_projects"`
}

// Validate validates the OptimizeContentRequest using the validator.
// TargetPages is deliberately not range-checked here: out-of-range values are
// clamped by the optimizer rather than rejected.
func (r *OptimizeContentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BuildContextRequest is the payload for CV or cover letter context assembly.
type BuildContextRequest struct {
	UserID      string         `json:"user_id" validate:"required"`
	Job         Job            `json:"job" validate:"required"`
	Preferences *CVPreferences `json:"cv_preferences,omitempty"`
}

// Validate validates the BuildContextRequest using the validator.
func (r *BuildContextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
