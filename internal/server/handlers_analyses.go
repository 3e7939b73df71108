package server

import (
	"io"
	"net/http"

	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// CreateAnalysisResponse is the response body for POST /analysis/create.
type CreateAnalysisResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	AnalysisID string          `json:"analysisId"`
	Analysis   *types.Analysis `json:"analysis"`
}

// ListAnalysesResponse is the response body for GET /analysis/list.
type ListAnalysesResponse struct {
	Success  bool              `json:"success"`
	Analyses []*types.Analysis `json:"analyses"`
}

// GetAnalysisResponse is the response body for GET /analysis/{id}.
type GetAnalysisResponse struct {
	Success  bool            `json:"success"`
	Analysis *types.Analysis `json:"analysis"`
}

// handleCreateAnalysis accepts a multipart form with a title, a job
// description, and one or more resume files, and runs the screening
// pipeline over them.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Bound the whole request body before parsing: every file may be at
	// most MaxFileBytes, plus headroom for the text fields.
	maxBody := int64(s.uploadConfig.MaxFiles)*s.uploadConfig.MaxFileBytes + (1 << 20)
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	title := r.FormValue("title")
	jobDescription := r.FormValue("jobDescription")

	var files []UploadedFile
	for _, header := range r.MultipartForm.File["files"] {
		part, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+header.Filename)
			return
		}
		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+header.Filename)
			return
		}
		files = append(files, UploadedFile{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	created, err := s.analysisService.Create(r.Context(), userID, title, jobDescription, files)
	if err != nil {
		s.serviceError(w, err, "failed to create analysis")
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateAnalysisResponse{
		Success:    true,
		Message:    "Analysis completed successfully",
		AnalysisID: created.ID,
		Analysis:   created,
	})
}

// handleListAnalyses returns the authenticated user's analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	analyses, err := s.analysisService.List(r.Context(), userID)
	if err != nil {
		s.serviceError(w, err, "failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, ListAnalysesResponse{
		Success:  true,
		Analyses: analyses,
	})
}

// handleGetAnalysis returns one analysis owned by the authenticated user.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Analysis ID is required")
		return
	}

	found, err := s.analysisService.Get(r.Context(), id, userID)
	if err != nil {
		s.serviceError(w, err, "failed to get analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, GetAnalysisResponse{
		Success:  true,
		Analysis: found,
	})
}

// handleDeleteAnalysis removes one analysis owned by the authenticated user.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Analysis ID is required")
		return
	}

	if err := s.analysisService.Delete(r.Context(), id, userID); err != nil {
		s.serviceError(w, err, "failed to delete analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Analysis deleted successfully",
	})
}
