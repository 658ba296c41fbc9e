package selection

import (
	"fmt"
	"strings"
)

// Qualitative thresholds for the selection reason buckets.
const (
	semanticHighlyRelevant = 0.8
	semanticRelevant       = 0.6
	overlapStrong          = 0.5
	overlapPartial         = 0.25
	maxTechsInReason       = 3
)

// selectionReason builds the human-readable justification for including a
// project: the conjunction of whichever qualitative buckets apply, or a
// generic fallback when none do.
func selectionReason(semantic, overlap float64, matchingTechs []string) string {
	var reasons []string

	if semantic > semanticHighlyRelevant {
		reasons = append(reasons, "highly relevant content")
	} else if semantic > semanticRelevant {
		reasons = append(reasons, "relevant content")
	}

	if overlap > overlapStrong {
		techs := matchingTechs
		if len(techs) > maxTechsInReason {
			techs = techs[:maxTechsInReason]
		}
		reasons = append(reasons, fmt.Sprintf("uses %s", strings.Join(techs, ", ")))
	} else if overlap > overlapPartial {
		reasons = append(reasons, fmt.Sprintf("shares %d technologies", len(matchingTechs)))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "related experience")
	}

	return fmt.Sprintf("Selected for %s", strings.Join(reasons, " and "))
}
