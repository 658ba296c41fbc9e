package embeddings

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// maxJobDescriptionChars caps how much of a job description feeds the embedding.
	maxJobDescriptionChars = 500
	// maxReadmeChars caps how much of a project README feeds the embedding.
	maxReadmeChars = 300
)

// FormatProfileText flattens a profile into the canonical text used for its embedding.
func FormatProfileText(profile *types.Profile) string {
	var parts []string

	if len(profile.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(profile.Skills, ", ")))
	}

	for _, role := range profile.Experience {
		parts = append(parts, fmt.Sprintf("Experience: %s at %s", role.Title, role.Company))
	}

	for _, degree := range profile.Education {
		parts = append(parts, fmt.Sprintf("Education: %s in %s", degree.Degree, degree.Field))
	}

	if len(profile.Languages) > 0 {
		parts = append(parts, fmt.Sprintf("Languages: %s", strings.Join(profile.Languages, ", ")))
	}

	return strings.Join(parts, ". ")
}

// FormatJobText flattens a job posting into the canonical text used for its embedding.
func FormatJobText(job *types.Job) string {
	var parts []string

	if job.Title != "" {
		parts = append(parts, fmt.Sprintf("Job Title: %s", job.Title))
	}
	if job.Company != "" {
		parts = append(parts, fmt.Sprintf("Company: %s", job.Company))
	}
	if job.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", job.Location))
	}
	if job.JobType != "" {
		parts = append(parts, fmt.Sprintf("Type: %s", job.JobType))
	}
	if job.Description != "" {
		desc := job.Description
		if len(desc) > maxJobDescriptionChars {
			desc = desc[:maxJobDescriptionChars]
		}
		parts = append(parts, fmt.Sprintf("Description: %s", desc))
	}
	if len(job.RequiredSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Required Skills: %s", strings.Join(job.RequiredSkills, ", ")))
	}

	return strings.Join(parts, ". ")
}

// FormatProjectText flattens a project into the canonical text used for its embedding.
func FormatProjectText(project *types.Project) string {
	var parts []string

	if project.Title != "" {
		parts = append(parts, fmt.Sprintf("Project: %s", project.Title))
	}
	if project.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", project.Description))
	}
	if len(project.Technologies) > 0 {
		parts = append(parts, fmt.Sprintf("Technologies: %s", strings.Join(project.Technologies, ", ")))
	}
	if len(project.Highlights) > 0 {
		parts = append(parts, fmt.Sprintf("Highlights: %s", strings.Join(project.Highlights, ". ")))
	}
	if project.ReadmeContent != "" {
		excerpt := project.ReadmeContent
		if len(excerpt) > maxReadmeChars {
			excerpt = excerpt[:maxReadmeChars]
		}
		parts = append(parts, fmt.Sprintf("Details: %s", excerpt))
	}

	return strings.Join(parts, ". ")
}
