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
// Project Methods
// -----------------------------------------------------------------------------

const projectColumns = `id, user_id, title, description, technologies, highlights,
	        github_url, demo_url, readme_content`

func scanProject(row pgx.Row) (*types.Project, error) {
	var p types.Project
	var techJSON, highlightsJSON []byte

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description,
		&techJSON, &highlightsJSON, &p.GitHubURL, &p.DemoURL, &p.ReadmeContent)
	if err != nil {
		return nil, err
	}

	if techJSON != nil {
		_ = json.Unmarshal(techJSON, &p.Technologies)
	}
	if highlightsJSON != nil {
		_ = json.Unmarshal(highlightsJSON, &p.Highlights)
	}

	return &p, nil
}

// GetProject retrieves a project by id.
// Returns (nil, nil) when the project does not exist.
func (db *DB) GetProject(ctx context.Context, projectID string) (*types.Project, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, projectID)

	p, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects retrieves every project owned by a user, in stored order.
func (db *DB) ListProjects(ctx context.Context, userID string) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

// SaveProject inserts or updates a project, assigning an id when the record
// has none.
func (db *DB) SaveProject(ctx context.Context, p *types.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	techJSON, err := json.Marshal(p.Technologies)
	if err != nil {
		return fmt.Errorf("failed to marshal technologies: %w", err)
	}
	highlightsJSON, err := json.Marshal(p.Highlights)
	if err != nil {
		return fmt.Errorf("failed to marshal highlights: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO projects (id, user_id, title, description, technologies, highlights,
		                       github_url, demo_url, readme_content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		        title = $3, description = $4, technologies = $5, highlights = $6,
		        github_url = $7, demo_url = $8, readme_content = $9`,
		p.ID, p.UserID, p.Title, p.Description, techJSON, highlightsJSON,
		p.GitHubURL, p.DemoURL, p.ReadmeContent,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}
