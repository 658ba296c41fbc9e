// Package embeddings provides text embedding generation and vector similarity
// for the matching core.
package embeddings

import (
	"context"
	"math"
)

// Dimension is the process-wide embedding vector length. It is fixed by the
// embedding model; every stored vector and every query vector must have
// exactly this length.
const Dimension = 768

// Embedder maps free text to a fixed-length numeric vector.
type Embedder interface {
	// EmbedText generates an embedding for a single text.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// EmbedTexts generates embeddings for multiple texts in one call.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// CosineSimilarity computes the cosine similarity of two vectors rescaled
// from [-1, 1] to [0, 1]. Returns 0 for zero-norm or mismatched inputs.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Cosine is -1..1; rescale to 0..1 for score aggregation.
	return (cos + 1) / 2
}
