package embeddings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.3, 0.2}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9, "Identical vectors rescale to 1")
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9, "Opposite vectors rescale to 0")
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.5, CosineSimilarity(a, b), 1e-9, "Orthogonal vectors rescale to 0.5")
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{10, 20, 30}
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9, "Cosine ignores magnitude")
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, []float32{1, 2}), "Mismatched lengths score 0")
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}), "Zero-norm vectors score 0")
}
