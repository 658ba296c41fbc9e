package types

// ContactInfo is the contact block of a CV. It is always compact and passes
// through budget optimization untouched.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// DraftContent is assembled CV content before budget optimization. Skills are
// expected to be pre-sorted by relevance by the caller; the optimizer
// preserves input ordering throughout.
type DraftContent struct {
	Contact    ContactInfo `json:"contact"`
	Summary    string      `json:"summary,omitempty"`
	Skills     []string    `json:"skills,omitempty"`
	Experience []Role      `json:"experience,omitempty"`
	Projects   []Project   `json:"projects,omitempty"`
	Education  []Degree    `json:"education,omitempty"`
	Languages  []string    `json:"languages,omitempty"`
}

// OptimizedContent mirrors DraftContent after every section has been
// truncated to its word/item budget.
type OptimizedContent struct {
	Contact    ContactInfo `json:"contact"`
	Summary    string      `json:"summary,omitempty"`
	Skills     []string    `json:"skills"`
	Experience []Role      `json:"experience"`
	Projects   []Project   `json:"projects"`
	Education  []Degree    `json:"education"`
	Languages  []string    `json:"languages"`
}

// CVPreferences controls context assembly and budget optimization.
type CVPreferences struct {
	CVLength         int  `json:"cv_length"`           // target pages, 1 or 2
	IncludeProjects  bool `json:"include_projects"`
	MaxProjectsPerCV int  `json:"max_projects_per_cv"`
}

// DefaultCVPreferences returns the preferences used when the caller supplies none.
func DefaultCVPreferences() CVPreferences {
	return CVPreferences{
		CVLength:         1,
		IncludeProjects:  true,
		MaxProjectsPerCV: 3,
	}
}

// GenerationContext is the assembled context consumed by downstream document
// generation. Missing profile or job records yield empty context strings so
// generation can still run in a degraded, non-personalized mode.
type GenerationContext struct {
	ProfileContext   string          `json:"profile"`
	JobContext       string          `json:"job"`
	ProjectsContext  string          `json:"projects"`
	SelectedProjects []ScoredProject `json:"selected_projects_data"`
	Preferences      CVPreferences   `json:"cv_preferences"`
	Job              Job             `json:"job_data"`

	// Content is the budget-optimized CV content. Unset for cover letters,
	// which are single-page free text with no budget pass.
	Content *OptimizedContent `json:"content,omitempty"`
}
