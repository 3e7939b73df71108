// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// extractionConcurrency caps parallel text extraction per request.
const extractionConcurrency = 4

// AnalysisStore is the persistence surface the analysis service depends on.
type AnalysisStore interface {
	InsertAnalysis(ctx context.Context, analysis *types.Analysis) (*types.Analysis, error)
	ListAnalysesByUser(ctx context.Context, userID string) ([]*types.Analysis, error)
	GetAnalysis(ctx context.Context, id, userID string) (*types.Analysis, error)
	DeleteAnalysis(ctx context.Context, id, userID string) (bool, error)
	InsertFileUpload(ctx context.Context, upload *types.FileUpload) error
}

// UploadedFile is one resume file received in a create request.
type UploadedFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// AnalysisService runs the screening pipeline and manages persisted analyses.
type AnalysisService struct {
	store     AnalysisStore
	uploadCfg *config.UploadConfig
	logger    *zap.Logger
	seedFn    func() int64
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(analysisStore AnalysisStore, uploadCfg *config.UploadConfig, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		store:     analysisStore,
		uploadCfg: uploadCfg,
		logger:    logger,
		seedFn:    func() int64 { return time.Now().UnixNano() },
	}
}

// validateCreate checks the request inputs against the configured limits.
func (s *AnalysisService) validateCreate(title, jobDescription string, files []UploadedFile) error {
	if strings.TrimSpace(title) == "" {
		return &ErrValidation{Field: "title", Message: "Title is required"}
	}
	if len(strings.TrimSpace(jobDescription)) < s.uploadCfg.MinDescription {
		return &ErrValidation{
			Field:   "jobDescription",
			Message: fmt.Sprintf("Job description must be at least %d characters", s.uploadCfg.MinDescription),
		}
	}
	if len(files) == 0 {
		return &ErrValidation{Field: "files", Message: "At least one resume file is required"}
	}
	if len(files) > s.uploadCfg.MaxFiles {
		return &ErrValidation{
			Field:   "files",
			Message: fmt.Sprintf("At most %d files are allowed per analysis", s.uploadCfg.MaxFiles),
		}
	}
	for _, f := range files {
		if f.Size > s.uploadCfg.MaxFileBytes {
			return &ErrValidation{
				Field:   "files",
				Message: fmt.Sprintf("File %s exceeds the %d MB size limit", f.Name, s.uploadCfg.MaxFileBytes>>20),
			}
		}
	}
	return nil
}

// Create runs the full screening pipeline: validate, extract text from each
// file in parallel, build one candidate per file in upload order, compute
// batch statistics, and persist the result.
func (s *AnalysisService) Create(ctx context.Context, userID, title, jobDescription string, files []UploadedFile) (*types.Analysis, error) {
	if err := s.validateCreate(title, jobDescription, files); err != nil {
		return nil, err
	}

	// Extraction is parallel; a file that cannot be read yields empty text
	// and falls through to the synthesized candidate path instead of
	// failing the batch.
	texts := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractionConcurrency)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := extraction.ExtractText(f.Name, f.Data)
			if err != nil {
				s.logger.Warn("text extraction failed, synthesizing candidate",
					zap.String("fileName", f.Name),
					zap.Error(err))
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extraction cancelled: %w", err)
	}

	// Candidate assembly is sequential so the rotation and random draws
	// depend only on upload order.
	assembler := analysis.NewAssembler(s.seedFn())
	candidates := make([]types.Candidate, len(files))
	for i, f := range files {
		candidates[i] = assembler.BuildCandidate(f.Name, i, jobDescription, texts[i])
	}

	saved, err := s.store.InsertAnalysis(ctx, &types.Analysis{
		UserID:         userID,
		Title:          strings.TrimSpace(title),
		JobDescription: jobDescription,
		Candidates:     candidates,
		Status:         types.AnalysisCompleted,
		Statistics:     analysis.ComputeStatistics(candidates),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	s.recordUploads(ctx, userID, saved.ID, files)

	s.logger.Info("analysis created",
		zap.String("analysisId", saved.ID),
		zap.String("userId", userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("topScore", saved.Statistics.TopScore))
	return saved, nil
}

// recordUploads stores per-file metadata. Failures are logged and do not
// fail the request; the analysis itself is already saved.
func (s *AnalysisService) recordUploads(ctx context.Context, userID, analysisID string, files []UploadedFile) {
	now := time.Now().UTC()
	for _, f := range files {
		upload := &types.FileUpload{
			UserID:       userID,
			FileName:     uuid.New().String() + strings.ToLower(filepath.Ext(f.Name)),
			OriginalName: f.Name,
			FileSize:     f.Size,
			MimeType:     f.ContentType,
			UploadedAt:   now,
			AnalysisID:   analysisID,
		}
		if err := s.store.InsertFileUpload(ctx, upload); err != nil {
			s.logger.Warn("failed to record file upload",
				zap.String("fileName", f.Name),
				zap.Error(err))
		}
	}
}

// List returns the user's analyses, newest first.
func (s *AnalysisService) List(ctx context.Context, userID string) ([]*types.Analysis, error) {
	analyses, err := s.store.ListAnalysesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// Get returns one analysis owned by the user.
func (s *AnalysisService) Get(ctx context.Context, id, userID string) (*types.Analysis, error) {
	found, err := s.store.GetAnalysis(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if found == nil {
		return nil, &ErrAnalysisNotFound{AnalysisID: id}
	}
	return found, nil
}

// Delete removes one analysis owned by the user.
func (s *AnalysisService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.store.DeleteAnalysis(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if !deleted {
		return &ErrAnalysisNotFound{AnalysisID: id}
	}
	return nil
}
