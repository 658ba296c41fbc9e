// Package pipeline orchestrates retrieval, project selection, and budget
// optimization into generation-ready context objects.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Store is the slice of the relational store the pipeline reads from.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
	GetJob(ctx context.Context, jobID string) (*types.Job, error)
}

// Retriever formats stored records into the plain-text context blocks the
// document generator consumes. Missing records yield empty strings so
// generation can run in a degraded, non-personalized mode.
type Retriever struct {
	store Store
}

// NewRetriever creates a Retriever over the given store.
func NewRetriever(store Store) *Retriever {
	return &Retriever{store: store}
}

// ProfileContext returns the formatted profile text for a user, or "" when
// the profile is absent or unreadable.
func (r *Retriever) ProfileContext(ctx context.Context, userID string) string {
	profile, err := r.store.GetProfile(ctx, userID)
	if err != nil || profile == nil {
		return ""
	}
	return FormatProfileContext(profile)
}

// FormatProfileContext renders a profile record into the context block format.
func FormatProfileContext(profile *types.Profile) string {
	var sb strings.Builder
	sb.WriteString("User Profile:\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", profile.FullName))

	location := profile.LocationPreference
	if location == "" {
		location = "Not specified"
	}
	sb.WriteString(fmt.Sprintf("Location: %s\n", location))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", joinOrNone(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Languages: %s\n", joinOrNone(profile.Languages)))

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		for _, role := range profile.Experience {
			sb.WriteString(fmt.Sprintf("- %s at %s\n", role.Title, role.Company))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, degree := range profile.Education {
			sb.WriteString(fmt.Sprintf("- %s in %s\n", degree.Degree, degree.Field))
		}
	}

	return strings.TrimSpace(sb.String())
}

// JobContext returns the formatted job posting text, or "" when the job is
// absent or unreadable.
func (r *Retriever) JobContext(ctx context.Context, jobID string) string {
	job, err := r.store.GetJob(ctx, jobID)
	if err != nil || job == nil {
		return ""
	}
	return FormatJobContext(job)
}

// FormatJobContext renders a job record into the context block format.
// Exposed separately so callers holding an un-persisted job can skip the
// store round trip.
func FormatJobContext(job *types.Job) string {
	var sb strings.Builder
	sb.WriteString("Job Posting:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company: %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.JobType != "" {
		sb.WriteString(fmt.Sprintf("Type: %s\n", job.JobType))
	}
	if len(job.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Required Skills: %s\n", strings.Join(job.RequiredSkills, ", ")))
	}
	if job.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", job.Description))
	}
	return strings.TrimSpace(sb.String())
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
