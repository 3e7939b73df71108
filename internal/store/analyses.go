package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jonathan/resume-screener/internal/types"
)

// analysisDoc is the persisted analysis document. Candidates embed directly;
// the user reference is the owner's hex ID.
type analysisDoc struct {
	ID             bson.ObjectID        `bson:"_id,omitempty"`
	UserID         string               `bson:"userId"`
	Title          string               `bson:"title"`
	JobDescription string               `bson:"jobDescription"`
	Candidates     []types.Candidate    `bson:"candidates"`
	Status         types.AnalysisStatus `bson:"status"`
	CreatedAt      time.Time            `bson:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt"`
	Statistics     types.Statistics     `bson:"statistics"`
}

func (d *analysisDoc) toTypes() *types.Analysis {
	return &types.Analysis{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Title:          d.Title,
		JobDescription: d.JobDescription,
		Candidates:     d.Candidates,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Statistics:     d.Statistics,
	}
}

// InsertAnalysis persists a new analysis and returns it with the generated
// ID and timestamps filled in.
func (s *Store) InsertAnalysis(ctx context.Context, analysis *types.Analysis) (*types.Analysis, error) {
	now := time.Now().UTC()
	doc := analysisDoc{
		ID:             bson.NewObjectID(),
		UserID:         analysis.UserID,
		Title:          analysis.Title,
		JobDescription: analysis.JobDescription,
		Candidates:     analysis.Candidates,
		Status:         analysis.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
		Statistics:     analysis.Statistics,
	}

	if _, err := s.analyses.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return doc.toTypes(), nil
}

// ListAnalysesByUser returns all analyses owned by the user, newest first.
func (s *Store) ListAnalysesByUser(ctx context.Context, userID string) ([]*types.Analysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.analyses.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	analyses := []*types.Analysis{}
	for cursor.Next(ctx) {
		var doc analysisDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode analysis: %w", err)
		}
		analyses = append(analyses, doc.toTypes())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}

// GetAnalysis returns the analysis with the given ID if it is owned by the
// user, or nil. Ownership is part of the filter, so a foreign ID behaves
// exactly like a missing one.
func (s *Store) GetAnalysis(ctx context.Context, id, userID string) (*types.Analysis, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc analysisDoc
	err = s.analyses.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return doc.toTypes(), nil
}

// DeleteAnalysis removes the analysis if it is owned by the user. It reports
// whether a document was actually deleted.
func (s *Store) DeleteAnalysis(ctx context.Context, id, userID string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.analyses.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// InsertFileUpload records metadata for one uploaded resume file.
func (s *Store) InsertFileUpload(ctx context.Context, upload *types.FileUpload) error {
	doc := bson.M{
		"_id":          bson.NewObjectID(),
		"userId":       upload.UserID,
		"fileName":     upload.FileName,
		"originalName": upload.OriginalName,
		"fileSize":     upload.FileSize,
		"mimeType":     upload.MimeType,
		"uploadedAt":   upload.UploadedAt,
		"analysisId":   upload.AnalysisID,
	}
	if _, err := s.uploads.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert file upload: %w", err)
	}
	return nil
}
