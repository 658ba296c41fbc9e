package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorstore"
)

// fakeProfileStore returns a canned profile or error.
type fakeProfileStore struct {
	profile *types.Profile
	err     error
}

func (f *fakeProfileStore) GetProfile(_ context.Context, _ string) (*types.Profile, error) {
	return f.profile, f.err
}

// fakeVectorStore serves embeddings from an in-memory map keyed by
// collection/id.
type fakeVectorStore struct {
	embeddings map[string][]float32
}

func (f *fakeVectorStore) GetEmbedding(_ context.Context, collection, id string) ([]float32, error) {
	if vec, ok := f.embeddings[collection+"/"+id]; ok {
		return vec, nil
	}
	return nil, vectorstore.ErrNotFound
}

func (f *fakeVectorStore) Query(_ context.Context, _ string, _ []float32, _ int, _ map[string]string) ([]vectorstore.Result, error) {
	return nil, nil
}

func (f *fakeVectorStore) Upsert(_ context.Context, _, _ string, _ []float32, _ map[string]string) error {
	return nil
}

func (f *fakeVectorStore) Delete(_ context.Context, _, _ string) error {
	return nil
}

// fakeEmbedder returns the same vector for every text, or an error.
type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return f.vector, f.err
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func (f *fakeEmbedder) Close() error { return nil }

func testProfile() *types.Profile {
	return &types.Profile{
		UserID:             "user-1",
		Skills:             []string{"Go", "PostgreSQL", "Docker"},
		LocationPreference: "Berlin",
		Languages:          []string{"English"},
		Preferences:        types.Preferences{PreferredJobTypes: []string{"full-time"}},
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestScorer(store ProfileStore, vectors vectorstore.Store, embedder *fakeEmbedder) *Scorer {
	s := NewScorer(store, vectors, embedder, nil)
	s.now = fixedNow
	return s
}

func TestScore_AllComponentsMaximal(t *testing.T) {
	vec := []float32{1, 0, 0}
	vectors := &fakeVectorStore{embeddings: map[string][]float32{
		vectorstore.CollectionUserProfiles + "/user-1": vec,
	}}
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, vectors, &fakeEmbedder{vector: vec})

	posted := fixedNow().AddDate(0, 0, -1)
	job := &types.Job{
		ID:             "job-1",
		Title:          "Backend Engineer",
		Location:       "Remote",
		JobType:        "full-time",
		RequiredSkills: []string{"Go", "PostgreSQL"},
		Language:       "en",
		PostingDate:    &posted,
	}

	breakdown, err := scorer.Score(context.Background(), testProfile(), job)
	require.NoError(t, err)

	assert.Equal(t, 1.0, breakdown.SemanticSimilarity, "Identical vectors score 1 after rescale")
	assert.Equal(t, 1.0, breakdown.SkillMatch)
	assert.Equal(t, 1.0, breakdown.LocationMatch)
	assert.Equal(t, 1.0, breakdown.JobTypeMatch)
	assert.Equal(t, 1.0, breakdown.LanguageMatch)
	assert.Equal(t, 1.0, breakdown.Freshness)
	assert.Equal(t, 0.0, breakdown.PastSuccessBoost)
	assert.InDelta(t, 100.0, breakdown.Total, 1e-9, "All-maximal components should total 100")
}

func TestScore_MissingProfileEmbeddingDegradesSemantic(t *testing.T) {
	vectors := &fakeVectorStore{embeddings: map[string][]float32{}}
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, vectors, &fakeEmbedder{vector: []float32{1, 0}})

	job := &types.Job{ID: "job-1", Title: "Engineer", RequiredSkills: []string{"Go"}}

	breakdown, err := scorer.Score(context.Background(), testProfile(), job)
	require.NoError(t, err, "Missing embedding must not fail the scoring")
	assert.Equal(t, 0.0, breakdown.SemanticSimilarity, "Semantic similarity degrades to 0")
	assert.Equal(t, 1.0, breakdown.SkillMatch, "Other components are unaffected")
}

func TestScore_EmbedderFailureDegradesSemantic(t *testing.T) {
	vectors := &fakeVectorStore{embeddings: map[string][]float32{
		vectorstore.CollectionUserProfiles + "/user-1": {1, 0},
	}}
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, vectors,
		&fakeEmbedder{err: errors.New("service unavailable")})

	breakdown, err := scorer.Score(context.Background(), testProfile(), &types.Job{ID: "job-1"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.SemanticSimilarity)
}

func TestScore_NilInputs(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{}, &fakeVectorStore{}, &fakeEmbedder{})

	_, err := scorer.Score(context.Background(), testProfile(), nil)
	assert.Error(t, err, "Nil job must be rejected")

	_, err = scorer.Score(context.Background(), nil, &types.Job{ID: "job-1"})
	assert.Error(t, err, "Nil profile must be rejected")
}

func TestRankJobs_EmptyBatch(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, &fakeVectorStore{}, &fakeEmbedder{})

	ranked, err := scorer.RankJobs(context.Background(), "user-1", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankJobs_SortedDescending(t *testing.T) {
	vectors := &fakeVectorStore{embeddings: map[string][]float32{}}
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, vectors, &fakeEmbedder{vector: []float32{1}})

	jobs := []types.Job{
		{ID: "weak", Title: "Accountant", RequiredSkills: []string{"Excel"}},
		{ID: "strong", Title: "Go Engineer", RequiredSkills: []string{"Go", "PostgreSQL"}, Location: "Remote", JobType: "full-time", Language: "en"},
		{ID: "medium", Title: "DevOps", RequiredSkills: []string{"Docker", "Kubernetes"}},
	}

	ranked, err := scorer.RankJobs(context.Background(), "user-1", jobs, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong", ranked[0].Job.ID)
	assert.Equal(t, "medium", ranked[1].Job.ID)
	assert.Equal(t, "weak", ranked[2].Job.ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].MatchScore, ranked[i].MatchScore,
			"Scores must be non-increasing")
	}
}

func TestRankJobs_TiesKeepInputOrder(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, &fakeVectorStore{}, &fakeEmbedder{vector: []float32{1}})

	// Identical jobs produce identical scores
	jobs := []types.Job{
		{ID: "first", Title: "Engineer"},
		{ID: "second", Title: "Engineer"},
		{ID: "third", Title: "Engineer"},
	}

	ranked, err := scorer.RankJobs(context.Background(), "user-1", jobs, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Job.ID)
	assert.Equal(t, "second", ranked[1].Job.ID)
	assert.Equal(t, "third", ranked[2].Job.ID)
}

func TestRankJobs_TopNTruncates(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{profile: testProfile()}, &fakeVectorStore{}, &fakeEmbedder{vector: []float32{1}})

	jobs := make([]types.Job, 10)
	for i := range jobs {
		jobs[i] = types.Job{ID: string(rune('a' + i)), Title: "Engineer"}
	}

	ranked, err := scorer.RankJobs(context.Background(), "user-1", jobs, 3)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestRankJobs_MissingProfileDegradesToZero(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{profile: nil}, &fakeVectorStore{}, &fakeEmbedder{})

	jobs := []types.Job{
		{ID: "a", Title: "Engineer"},
		{ID: "b", Title: "Analyst"},
	}

	ranked, err := scorer.RankJobs(context.Background(), "missing-user", jobs, 0)
	require.NoError(t, err, "Missing profile must not fail the batch")
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Job.ID, "Input order is preserved")
	assert.Equal(t, 0.0, ranked[0].MatchScore)
	assert.Equal(t, 0.0, ranked[1].MatchScore)
}

func TestRankJobs_MissingProfileStillHonorsTopN(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{profile: nil}, &fakeVectorStore{}, &fakeEmbedder{})

	jobs := make([]types.Job, 10)
	for i := range jobs {
		jobs[i] = types.Job{ID: fmt.Sprintf("job-%d", i), Title: "Engineer"}
	}

	ranked, err := scorer.RankJobs(context.Background(), "missing-user", jobs, 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3, "Zero-scored batches are still truncated")
	assert.Equal(t, "job-0", ranked[0].Job.ID, "Input order is preserved")
}

func TestRankJobs_ProfileStoreErrorDegradesToZero(t *testing.T) {
	scorer := newTestScorer(&fakeProfileStore{err: errors.New("db down")}, &fakeVectorStore{}, &fakeEmbedder{})

	ranked, err := scorer.RankJobs(context.Background(), "user-1", []types.Job{{ID: "a"}}, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].MatchScore)
}

func TestRankJobs_SingleWorkerMatchesConcurrentOrder(t *testing.T) {
	jobs := []types.Job{
		{ID: "a", Title: "Engineer", RequiredSkills: []string{"Go"}},
		{ID: "b", Title: "Engineer", RequiredSkills: []string{"Excel"}},
		{ID: "c", Title: "Engineer", RequiredSkills: []string{"Go", "Docker"}},
	}

	sequential := newTestScorer(&fakeProfileStore{profile: testProfile()}, &fakeVectorStore{}, &fakeEmbedder{vector: []float32{1}}).WithWorkers(1)
	concurrent := newTestScorer(&fakeProfileStore{profile: testProfile()}, &fakeVectorStore{}, &fakeEmbedder{vector: []float32{1}}).WithWorkers(8)

	seqRanked, err := sequential.RankJobs(context.Background(), "user-1", jobs, 0)
	require.NoError(t, err)
	conRanked, err := concurrent.RankJobs(context.Background(), "user-1", jobs, 0)
	require.NoError(t, err)

	assert.Equal(t, seqRanked, conRanked, "Worker count must not change the result")
}
