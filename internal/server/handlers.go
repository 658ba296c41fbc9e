package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/types"
)

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

// writeError maps an error to its HTTP status and a JSON error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

// decode parses and validates a request body into req.
func decode[T interface{ Validate() error }](r *http.Request, req T) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &ErrBadJSON{Cause: err}
	}
	if err := req.Validate(); err != nil {
		return &ErrValidation{Message: err.Error()}
	}
	return nil
}

// handleHealth returns a liveness response.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRankJobs scores and ranks a batch of jobs for a user.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	var req types.RankJobsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	ranked, err := s.scorer.RankJobs(r.Context(), req.UserID, req.Jobs, req.TopN)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ranked_jobs": ranked})
}

// handleSelectProjects returns the user's most relevant projects for a job.
func (s *Server) handleSelectProjects(w http.ResponseWriter, r *http.Request) {
	var req types.SelectProjectsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	maxProjects := req.MaxProjects
	if maxProjects == 0 {
		maxProjects = types.DefaultCVPreferences().MaxProjectsPerCV
	}

	selected := s.selector.SelectRelevantProjects(r.Context(), req.UserID, &req.Job, maxProjects)
	if selected == nil {
		selected = []types.ScoredProject{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"projects": selected})
}

// handleOptimizeContent fits draft CV content into the requested page budget.
func (s *Server) handleOptimizeContent(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeContentRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	optimized := s.optimizer.Optimize(&req.Content, req.TargetPages, req.IncludeProjects)
	s.writeJSON(w, http.StatusOK, optimized)
}

// handleCVContext assembles the full CV generation context.
func (s *Server) handleCVContext(w http.ResponseWriter, r *http.Request) {
	var req types.BuildContextRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result := s.pipeline.BuildCVContext(r.Context(), req.UserID, &req.Job, req.Preferences)
	s.writeJSON(w, http.StatusOK, result)
}

// handleCoverLetterContext assembles the cover letter generation context.
func (s *Server) handleCoverLetterContext(w http.ResponseWriter, r *http.Request) {
	var req types.BuildContextRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result := s.pipeline.BuildCoverLetterContext(r.Context(), req.UserID, &req.Job)
	s.writeJSON(w, http.StatusOK, result)
}
