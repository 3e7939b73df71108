package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

const schemaFile = "analysis.schema.json"

func readSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(".", schemaFile))
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestAnalysisSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(readSchema(t)), &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestAnalysisSchema_ValidJSONSchema(t *testing.T) {
	loader := gojsonschema.NewStringLoader(readSchema(t))
	_, err := gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema file should be a valid JSON Schema")
}

const jobDescription = `Hiring a senior backend engineer. Required python and
must have docker experience. 5+ years experience, bachelor degree preferred.`

// TestAnalysisSchema_AcceptsGeneratedDocument runs the real pipeline over a
// parsed and a synthesized candidate and checks the resulting document
// against the schema.
func TestAnalysisSchema_AcceptsGeneratedDocument(t *testing.T) {
	resumeText := `John Carter
john.carter@example.com
+14155550110

Summary: Backend engineer who ships.

Skills: Python, Docker, Kubernetes, PostgreSQL

6+ years experience.

Master of Science in Computer Science
`

	assembler := analysis.NewAssembler(7)
	candidates := []types.Candidate{
		assembler.BuildCandidate("john_carter.txt", 0, jobDescription, resumeText),
		assembler.BuildCandidate("broken.pdf", 1, jobDescription, ""),
	}

	now := time.Now().UTC()
	doc := types.Analysis{
		ID:             "68b1c2d3e4f5a6b7c8d9e0f1",
		UserID:         "68b1c2d3e4f5a6b7c8d9e0f2",
		Title:          "Backend batch",
		JobDescription: jobDescription,
		Candidates:     candidates,
		Status:         types.AnalysisCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
		Statistics:     analysis.ComputeStatistics(candidates),
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	err = schemas.ValidateJSONString(readSchema(t), string(raw))
	assert.NoError(t, err, "generated analysis document should satisfy the schema")
}

func TestAnalysisSchema_RejectsBadDocuments(t *testing.T) {
	schema := readSchema(t)

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing candidates",
			doc:  `{"_id":"a","userId":"u","title":"t","jobDescription":"` + longDescription() + `","status":"completed","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z","statistics":{"totalCandidates":0,"highMatches":0,"mediumMatches":0,"lowMatches":0,"averageScore":0,"topScore":0}}`,
		},
		{
			name: "unknown status",
			doc:  `{"_id":"a","userId":"u","title":"t","jobDescription":"` + longDescription() + `","candidates":[],"status":"archived","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z","statistics":{"totalCandidates":0,"highMatches":0,"mediumMatches":0,"lowMatches":0,"averageScore":0,"topScore":0}}`,
		},
		{
			name: "score above 100",
			doc: `{"_id":"a","userId":"u","title":"t","jobDescription":"` + longDescription() + `","candidates":[{"id":"candidate-0","name":"N","email":"n@e.com","phone":"","matchScore":130,"goodPoints":[],"badPoints":[],"fileName":"f.txt","experience":"","skills":[],"education":"","location":"","summary":"","status":"passed"}],` +
				`"status":"completed","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z","statistics":{"totalCandidates":1,"highMatches":0,"mediumMatches":0,"lowMatches":0,"averageScore":0,"topScore":0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(schema, tt.doc)
			require.Error(t, err)
			var validationErr *schemas.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func longDescription() string {
	return "A job description that is comfortably longer than fifty characters for schema purposes."
}
