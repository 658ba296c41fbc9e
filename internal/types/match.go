package types

// MatchScoreBreakdown holds the component scores for a (profile, job) pair.
// Every component lies in [0, 1] except PastSuccessBoost (flat units) and
// Total (weighted sum on a 0-100 display scale).
type MatchScoreBreakdown struct {
	SemanticSimilarity float64 `json:"semantic_similarity"`
	SkillMatch         float64 `json:"skill_match"`
	LocationMatch      float64 `json:"location_match"`
	JobTypeMatch       float64 `json:"job_type_match"`
	LanguageMatch      float64 `json:"language_match"`
	Freshness          float64 `json:"freshness"`
	PastSuccessBoost   float64 `json:"past_success_boost"`
	Total              float64 `json:"total"`
}

// RankedJob pairs a job with its match score. Produced fresh on every ranking
// call and never persisted by this core.
type RankedJob struct {
	Job        Job                 `json:"job"`
	MatchScore float64             `json:"match_score"`
	Breakdown  MatchScoreBreakdown `json:"match_score_breakdown"`
}

// ScoredProject pairs a project with its relevance to a specific job,
// including a human-readable justification for the selection.
type ScoredProject struct {
	Project              Project  `json:"project"`
	RelevanceScore       float64  `json:"relevance_score"`
	SemanticSimilarity   float64  `json:"semantic_similarity"`
	TechOverlap          float64  `json:"tech_overlap"`
	MatchingTechnologies []string `json:"matching_technologies"`
	SelectionReason      string   `json:"selection_reason"`
}
