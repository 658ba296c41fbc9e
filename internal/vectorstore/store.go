// Package vectorstore defines the contract for the external vector similarity index.
package vectorstore

import (
	"context"
	"errors"
)

// Collection names used by the matching core.
const (
	CollectionUserProfiles    = "user_profiles"
	CollectionJobDescriptions = "job_descriptions"
	CollectionUserProjects    = "user_projects"
)

// ErrNotFound is returned when a requested embedding does not exist.
var ErrNotFound = errors.New("embedding not found")

// Result is a single nearest-neighbor match. Distance is the index's raw
// distance metric: smaller means closer.
type Result struct {
	ID       string
	Distance float64
	Metadata map[string]string
}

// Store is a vector similarity index keyed by document id. Implementations
// must be safe for concurrent readers; writes happen in a disjoint ingestion
// phase.
type Store interface {
	// GetEmbedding fetches a stored embedding by id.
	// Returns ErrNotFound if the id is not present in the collection.
	GetEmbedding(ctx context.Context, collection, id string) ([]float32, error)

	// Query returns up to k stored vectors closest to the query vector,
	// optionally restricted to entries whose metadata contains every
	// key/value pair in filter. Results are ordered by ascending distance.
	Query(ctx context.Context, collection string, query []float32, k int, filter map[string]string) ([]Result, error)

	// Upsert inserts or replaces an embedding with its metadata.
	Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]string) error

	// Delete removes an embedding. Deleting an absent id is not an error.
	Delete(ctx context.Context, collection, id string) error
}
