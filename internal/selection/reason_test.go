package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionReason_HighlyRelevant(t *testing.T) {
	reason := selectionReason(0.85, 0.1, nil)
	assert.Equal(t, "Selected for highly relevant content", reason)
}

func TestSelectionReason_Relevant(t *testing.T) {
	reason := selectionReason(0.65, 0.1, nil)
	assert.Equal(t, "Selected for relevant content", reason)
}

func TestSelectionReason_StrongOverlapListsTechs(t *testing.T) {
	reason := selectionReason(0.3, 0.6, []string{"go", "postgresql"})
	assert.Equal(t, "Selected for uses go, postgresql", reason)
}

func TestSelectionReason_StrongOverlapCapsListedTechs(t *testing.T) {
	reason := selectionReason(0.3, 0.6, []string{"docker", "go", "kubernetes", "postgresql"})
	assert.Equal(t, "Selected for uses docker, go, kubernetes", reason,
		"At most three technologies are named")
}

func TestSelectionReason_PartialOverlap(t *testing.T) {
	reason := selectionReason(0.3, 0.3, []string{"go", "docker"})
	assert.Equal(t, "Selected for shares 2 technologies", reason)
}

func TestSelectionReason_CombinesBuckets(t *testing.T) {
	reason := selectionReason(0.85, 0.6, []string{"go"})
	assert.Equal(t, "Selected for highly relevant content and uses go", reason)
}

func TestSelectionReason_Fallback(t *testing.T) {
	reason := selectionReason(0.1, 0.1, nil)
	assert.Equal(t, "Selected for related experience", reason)
}

func TestSelectionReason_ThresholdsAreExclusive(t *testing.T) {
	// Exactly at a threshold falls into the next bucket down
	assert.Equal(t, "Selected for relevant content", selectionReason(0.8, 0.0, nil))
	assert.Equal(t, "Selected for related experience", selectionReason(0.6, 0.0, nil))
	assert.Equal(t, "Selected for shares 1 technologies", selectionReason(0.0, 0.5, []string{"go"}))
	assert.Equal(t, "Selected for related experience", selectionReason(0.0, 0.25, []string{"go"}))
}
