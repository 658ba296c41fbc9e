// Package types defines the shared data model for job matching and CV content preparation.
package types

import "time"

// Role represents a single position in a candidate's work history.
type Role struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date,omitempty"` // YYYY-MM
	EndDate      string   `json:"end_date,omitempty"`   // YYYY-MM or empty for current
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Degree represents an education entry.
type Degree struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Field       string   `json:"field,omitempty"`
	Year        string   `json:"year,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
}

// Preferences holds a candidate's job search preferences.
type Preferences struct {
	PreferredJobTypes []string `json:"preferred_job_types,omitempty"`
}

// Profile represents a candidate profile as stored per user.
// Skills and languages are treated as case-insensitive sets; experience keeps
// its stored order (most relevant first, as curated by the owner).
type Profile struct {
	UserID             string      `json:"user_id"`
	FullName           string      `json:"full_name,omitempty"`
	Email              string      `json:"email,omitempty"`
	Phone              string      `json:"phone,omitempty"`
	LinkedIn           string      `json:"linkedin,omitempty"`
	LocationPreference string      `json:"location_preference,omitempty"`
	Skills             []string    `json:"skills,omitempty"`
	Experience         []Role      `json:"experience,omitempty"`
	Education          []Degree    `json:"education,omitempty"`
	Languages          []string    `json:"languages,omitempty"`
	Preferences        Preferences `json:"preferences"`
	UpdatedAt          time.Time   `json:"updated_at,omitempty"`
}

// Project represents a prior work item owned by exactly one profile.
type Project struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	GitHubURL     string   `json:"github_url,omitempty"`
	DemoURL       string   `json:"demo_url,omitempty"`
	ReadmeContent string   `json:"readme_content,omitempty"`
}
