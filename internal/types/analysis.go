package types

import "time"

// CandidateStatus is the pipeline status assigned to a candidate at creation
// time. It is a pure function of the match score and never transitions
// afterward. The label mapping is inherited verbatim: the highest scorers get
// "assessment-scheduled" and mid-range scorers get "passed".
type CandidateStatus string

// Candidate status values.
const (
	StatusAssessmentScheduled CandidateStatus = "assessment-scheduled"
	StatusPassed              CandidateStatus = "passed"
	StatusFailed              CandidateStatus = "failed"
	StatusPending             CandidateStatus = "pending"
)

// StatusForScore derives the candidate status from a match score.
// Thresholds: >=80 assessment-scheduled, 60-79 passed, <60 failed.
func StatusForScore(score int) CandidateStatus {
	switch {
	case score >= 80:
		return StatusAssessmentScheduled
	case score >= 60:
		return StatusPassed
	default:
		return StatusFailed
	}
}

// Candidate is one resume's extracted and scored representation within an
// Analysis.
type Candidate struct {
	ID         string          `json:"id" bson:"id"`
	Name       string          `json:"name" bson:"name"`
	Email      string          `json:"email" bson:"email"`
	Phone      string          `json:"phone" bson:"phone"`
	MatchScore int             `json:"matchScore" bson:"matchScore"`
	GoodPoints []string        `json:"goodPoints" bson:"goodPoints"`
	BadPoints  []string        `json:"badPoints" bson:"badPoints"`
	FileName   string          `json:"fileName" bson:"fileName"`
	Experience string          `json:"experience" bson:"experience"`
	Skills     []string        `json:"skills" bson:"skills"`
	Education  string          `json:"education" bson:"education"`
	Location   string          `json:"location" bson:"location"`
	Summary    string          `json:"summary" bson:"summary"`
	Status     CandidateStatus `json:"status" bson:"status"`
}

// AnalysisStatus is the lifecycle status of an analysis run.
type AnalysisStatus string

// Analysis status values.
const (
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisFailed     AnalysisStatus = "failed"
)

// Statistics summarizes the scores of one candidate batch.
type Statistics struct {
	TotalCandidates int `json:"totalCandidates" bson:"totalCandidates"`
	HighMatches     int `json:"highMatches" bson:"highMatches"`
	MediumMatches   int `json:"mediumMatches" bson:"mediumMatches"`
	LowMatches      int `json:"lowMatches" bson:"lowMatches"`
	AverageScore    int `json:"averageScore" bson:"averageScore"`
	TopScore        int `json:"topScore" bson:"topScore"`
}

// Analysis is one batch run of resumes against one job description, owned by
// exactly one user. Immutable after creation except status and updatedAt.
type Analysis struct {
	ID             string         `json:"_id"`
	UserID         string         `json:"userId"`
	Title          string         `json:"title"`
	JobDescription string         `json:"jobDescription"`
	Candidates     []Candidate    `json:"candidates"`
	Status         AnalysisStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Statistics     Statistics     `json:"statistics"`
}

// FileUpload records metadata for one uploaded resume file.
type FileUpload struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"userId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `json:"mimeType"`
	UploadedAt   time.Time `json:"uploadedAt"`
	AnalysisID   string    `json:"analysisId,omitempty"`
}
