package analysis

import (
	"fmt"
	"math/rand"
)

// ResumeData is the ephemeral extraction result scored against a job
// description. It comes either from parsed resume text or from the synthetic
// fallback when no text could be extracted.
type ResumeData struct {
	Skills         []string
	Experience     string
	Education      string
	Summary        string
	Projects       []string
	Certifications []string
}

// FromParsed converts a parsed resume into scoring input.
func FromParsed(p ParsedResume) ResumeData {
	return ResumeData{
		Skills:         p.Skills,
		Experience:     p.Experience,
		Education:      p.Education,
		Summary:        p.Summary,
		Projects:       p.Projects,
		Certifications: p.Certifications,
	}
}

// stackTemplates are the fixed technology-stack rotations used when no
// resume text is available. Selection is index mod len(stackTemplates).
var stackTemplates = [][]string{
	{"javascript", "typescript", "react", "node.js", "html", "css"},
	{"python", "django", "postgresql", "docker", "aws"},
	{"java", "spring", "mysql", "kubernetes", "jenkins"},
	{"react", "node.js", "mongodb", "graphql", "docker"},
	{"c#", "azure", "sql", "rest api", "agile"},
}

var experienceRanges = []string{"2-3 years", "3-5 years", "5-7 years", "7-10 years", "10+ years"}

var educationLevels = []string{
	"Bachelor's in Computer Science",
	"Master's in Software Engineering",
	"Bachelor's in Design",
	"PhD in Computer Science",
}

// Synthesizer produces plausible resume data for files whose text could not
// be extracted. The random source is injected so tests can fix the seed.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer with a seeded random source.
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// Synthesize builds resume data from the template rotation keyed by index,
// augmented with two supplementary catalog skills and random picks among the
// fixed experience and education lists.
func (s *Synthesizer) Synthesize(index int) ResumeData {
	base := stackTemplates[index%len(stackTemplates)]

	skills := make([]string, len(base), len(base)+2)
	copy(skills, base)
	// Redraw on collision so both supplements land; the attempt bound only
	// matters if a template ever grew to cover the whole catalog.
	for added, attempts := 0, 0; added < 2 && attempts < len(skillCatalog); attempts++ {
		extra := skillCatalog[s.rng.Intn(len(skillCatalog))]
		if hasString(skills, extra) {
			continue
		}
		skills = append(skills, extra)
		added++
	}

	return ResumeData{
		Skills:     skills,
		Experience: experienceRanges[s.rng.Intn(len(experienceRanges))],
		Education:  educationLevels[s.rng.Intn(len(educationLevels))],
		Summary:    "Experienced software professional with a strong delivery track record.",
		Projects: []string{
			fmt.Sprintf("Developed a web platform using %s", base[0]),
			fmt.Sprintf("Built internal tooling with %s", base[1]),
		},
		Certifications: []string{},
	}
}
