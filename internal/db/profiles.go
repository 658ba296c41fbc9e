package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Profile Methods
// -----------------------------------------------------------------------------

// GetProfile retrieves a candidate profile by user id.
// Returns (nil, nil) when no profile exists for the user.
func (db *DB) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	var p types.Profile
	var skillsJSON, experienceJSON, educationJSON, languagesJSON, preferencesJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT user_id, full_name, email, phone, linkedin, location_preference,
		        skills, experience, education, languages, preferences, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.FullName, &p.Email, &p.Phone, &p.LinkedIn, &p.LocationPreference,
		&skillsJSON, &experienceJSON, &educationJSON, &languagesJSON, &preferencesJSON,
		&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	// Parse JSONB fields
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &p.Skills)
	}
	if experienceJSON != nil {
		_ = json.Unmarshal(experienceJSON, &p.Experience)
	}
	if educationJSON != nil {
		_ = json.Unmarshal(educationJSON, &p.Education)
	}
	if languagesJSON != nil {
		_ = json.Unmarshal(languagesJSON, &p.Languages)
	}
	if preferencesJSON != nil {
		_ = json.Unmarshal(preferencesJSON, &p.Preferences)
	}

	return &p, nil
}

// UpsertProfile inserts or updates a candidate profile. The caller is
// responsible for regenerating the profile embedding afterwards whenever
// skills/experience/education/languages text changed.
func (db *DB) UpsertProfile(ctx context.Context, p *types.Profile) error {
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	experienceJSON, err := json.Marshal(p.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	educationJSON, err := json.Marshal(p.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}
	languagesJSON, err := json.Marshal(p.Languages)
	if err != nil {
		return fmt.Errorf("failed to marshal languages: %w", err)
	}
	preferencesJSON, err := json.Marshal(p.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name, email, phone, linkedin, location_preference,
		                       skills, experience, education, languages, preferences, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		        full_name = $2, email = $3, phone = $4, linkedin = $5,
		        location_preference = $6, skills = $7, experience = $8,
		        education = $9, languages = $10, preferences = $11, updated_at = NOW()`,
		p.UserID, p.FullName, p.Email, p.Phone, p.LinkedIn, p.LocationPreference,
		skillsJSON, experienceJSON, educationJSON, languagesJSON, preferencesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
