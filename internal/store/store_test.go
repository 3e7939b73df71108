package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestUser_ToTypes_ExcludesPasswordHash(t *testing.T) {
	now := time.Now().UTC()
	doc := &User{
		ID:           bson.NewObjectID(),
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$secret",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user := doc.ToTypes()
	require.NotNil(t, user)
	assert.Equal(t, doc.ID.Hex(), user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUser_ToTypes_Nil(t *testing.T) {
	var doc *User
	assert.Nil(t, doc.ToTypes())
}

func TestAnalysisDoc_ToTypes(t *testing.T) {
	now := time.Now().UTC()
	doc := &analysisDoc{
		ID:             bson.NewObjectID(),
		UserID:         "user-1",
		Title:          "Backend hires",
		JobDescription: "a long enough job description",
		Candidates:     []types.Candidate{{ID: "candidate-0", MatchScore: 88}},
		Status:         types.AnalysisCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
		Statistics:     types.Statistics{TotalCandidates: 1, HighMatches: 1, AverageScore: 88, TopScore: 88},
	}

	analysis := doc.toTypes()
	assert.Equal(t, doc.ID.Hex(), analysis.ID)
	assert.Equal(t, "user-1", analysis.UserID)
	assert.Len(t, analysis.Candidates, 1)
	assert.Equal(t, types.AnalysisCompleted, analysis.Status)
	assert.Equal(t, 1, analysis.Statistics.TotalCandidates)
}
