package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/embeddings"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// -----------------------------------------------------------------------------
// Embedding Collection Methods (vectorstore.Store implementation)
// -----------------------------------------------------------------------------

// VectorStore returns the database-backed vector index.
func (db *DB) VectorStore() vectorstore.Store {
	return &pgVectorStore{db: db}
}

// pgVectorStore stores embeddings in a collections table and ranks neighbors
// by squared euclidean distance computed over the candidate set. Candidate
// sets are per-user or per-profile sized, so client-side ranking stays cheap.
type pgVectorStore struct {
	db *DB
}

var _ vectorstore.Store = (*pgVectorStore)(nil)

// GetEmbedding fetches a stored embedding by id.
func (s *pgVectorStore) GetEmbedding(ctx context.Context, collection, id string) ([]float32, error) {
	var vector []float32

	err := s.db.pool.QueryRow(ctx,
		`SELECT vector FROM embedding_collections WHERE collection = $1 AND doc_id = $2`,
		collection, id,
	).Scan(&vector)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, vectorstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get embedding %s/%s: %w", collection, id, err)
	}

	return vector, nil
}

// Query returns up to k nearest neighbors ordered by ascending distance.
func (s *pgVectorStore) Query(ctx context.Context, collection string, query []float32, k int, filter map[string]string) ([]vectorstore.Result, error) {
	if k <= 0 {
		return nil, nil
	}

	sql := `SELECT doc_id, vector, metadata FROM embedding_collections WHERE collection = $1`
	args := []any{collection}

	if len(filter) > 0 {
		filterJSON, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata filter: %w", err)
		}
		sql += ` AND metadata @> $2::jsonb`
		args = append(args, filterJSON)
	}

	rows, err := s.db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var results []vectorstore.Result
	for rows.Next() {
		var id string
		var vector []float32
		var metadataJSON []byte

		if err := rows.Scan(&id, &vector, &metadataJSON); err != nil {
			return nil, fmt.Errorf("failed to scan embedding row: %w", err)
		}

		var metadata map[string]string
		if metadataJSON != nil {
			_ = json.Unmarshal(metadataJSON, &metadata)
		}

		results = append(results, vectorstore.Result{
			ID:       id,
			Distance: squaredL2(query, vector),
			Metadata: metadata,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embedding rows: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > k {
		results = results[:k]
	}

	return results, nil
}

// Upsert inserts or replaces an embedding with its metadata.
func (s *pgVectorStore) Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]string) error {
	if len(vector) != embeddings.Dimension {
		return fmt.Errorf("vector dimension %d does not match expected %d", len(vector), embeddings.Dimension)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO embedding_collections (collection, doc_id, vector, metadata, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (collection, doc_id) DO UPDATE SET vector = $3, metadata = $4, created_at = NOW()`,
		collection, id, vector, metadataJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert embedding %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes an embedding. Deleting an absent id is not an error.
func (s *pgVectorStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.pool.Exec(ctx,
		`DELETE FROM embedding_collections WHERE collection = $1 AND doc_id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete embedding %s/%s: %w", collection, id, err)
	}
	return nil
}

// squaredL2 computes the squared euclidean distance between two vectors.
// Mismatched lengths rank last rather than erroring; they indicate a stale
// row written before a model change.
func squaredL2(a, b []float32) float64 {
	if len(a) != len(b) {
		return maxDistance
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

const maxDistance = 1e18
