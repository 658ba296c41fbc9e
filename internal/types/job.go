package types

import "time"

// Job represents an ingested job posting. Jobs are immutable once ingested;
// re-scraping either creates a new record or updates in place upstream of
// this core.
type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"job_title"`
	Company        string     `json:"company_name"`
	Location       string     `json:"location,omitempty"`
	JobType        string     `json:"job_type,omitempty"`
	Description    string     `json:"description,omitempty"`
	RequiredSkills []string   `json:"required_skills,omitempty"`
	PostingDate    *time.Time `json:"posting_date,omitempty"`
	Language       string     `json:"language,omitempty"` // ISO 639-1, e.g. "en", "fr"
	URL            string     `json:"url,omitempty"`
}
