package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  CandidateStatus
	}{
		{name: "top score", score: 100, want: StatusAssessmentScheduled},
		{name: "high threshold", score: 80, want: StatusAssessmentScheduled},
		{name: "just below high", score: 79, want: StatusPassed},
		{name: "medium threshold", score: 60, want: StatusPassed},
		{name: "just below medium", score: 59, want: StatusFailed},
		{name: "zero", score: 0, want: StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForScore(tt.score))
		})
	}
}
