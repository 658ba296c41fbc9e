package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

// GetJob retrieves a job posting by id.
// Returns (nil, nil) when the job does not exist.
func (db *DB) GetJob(ctx context.Context, jobID string) (*types.Job, error) {
	var j types.Job
	var skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, company_name, location, job_type, description,
		        required_skills, posting_date, language, url
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.JobType, &j.Description,
		&skillsJSON, &j.PostingDate, &j.Language, &j.URL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &j.RequiredSkills)
	}

	return &j, nil
}

// SaveJob inserts a job posting, assigning an id when the record has none.
func (db *DB) SaveJob(ctx context.Context, j *types.Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}

	skillsJSON, err := json.Marshal(j.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (id, job_title, company_name, location, job_type, description,
		                   required_skills, posting_date, language, url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		        job_title = $2, company_name = $3, location = $4, job_type = $5,
		        description = $6, required_skills = $7, posting_date = $8,
		        language = $9, url = $10`,
		j.ID, j.Title, j.Company, j.Location, j.JobType, j.Description,
		skillsJSON, j.PostingDate, j.Language, j.URL,
	)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}
