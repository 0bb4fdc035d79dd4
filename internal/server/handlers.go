package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeRequest is the request body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	ResumeText      string          `json:"resume_text"`
	JobText         string          `json:"job_text"`
	TargetIndustry  string          `json:"target_industry,omitempty"`
	TargetRoleLevel types.RoleLevel `json:"target_role_level,omitempty"`
}

// AnalyzeResponse wraps the terminal result with its storage ID when
// persistence is configured.
type AnalyzeResponse struct {
	AnalysisID string                             `json:"analysis_id,omitempty"`
	Result     *types.ComprehensiveAnalysisResult `json:"result"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, types.NewValidationError("invalid request body: %v", err))
		return
	}
	if req.JobText == "" {
		s.writeError(w, types.NewValidationError("job_text is required"))
		return
	}

	result, err := s.engine.ComprehensiveAnalysis(r.Context(), req.ResumeText, req.JobText, req.TargetIndustry, req.TargetRoleLevel)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := AnalyzeResponse{Result: result}
	if s.store != nil {
		id, err := s.store.SaveAnalysis(r.Context(), result)
		if err != nil {
			// Persistence is best-effort for the API: the score is valid
			// without it, so report and continue.
			s.log.Error("saving analysis", zap.Error(err))
		} else {
			resp.AnalysisID = id.String()
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, types.NewConfigurationError("persistence is not configured"))
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, types.NewValidationError("invalid analysis id"))
		return
	}

	result, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		if types.IsKind(err, types.KindValidation) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleComposePrompt(w http.ResponseWriter, r *http.Request) {
	var req types.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, types.NewValidationError("invalid request body: %v", err))
		return
	}

	resp, err := s.composer.Compose(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// httpStatus maps error kinds to response codes.
func httpStatus(err error) int {
	switch types.KindOf(err) {
	case types.KindValidation:
		return http.StatusBadRequest
	case types.KindDocumentParsing:
		return http.StatusUnprocessableEntity
	case types.KindConfiguration:
		return http.StatusInternalServerError
	case types.KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
	} else {
		s.log.Warn("request rejected", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
	}
	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"kind":  string(types.KindOf(err)),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}
