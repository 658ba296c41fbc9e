package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, 0.0, squaredL2([]float32{1, 2, 3}, []float32{1, 2, 3}))
	assert.Equal(t, 25.0, squaredL2([]float32{0, 0}, []float32{3, 4}))
	assert.Equal(t, 2.0, squaredL2([]float32{1, 1}, []float32{0, 0}))
}

func TestSquaredL2_MismatchedLengthsRankLast(t *testing.T) {
	assert.Equal(t, maxDistance, squaredL2([]float32{1}, []float32{1, 2}),
		"Stale rows with a different dimension sort to the end")
}
