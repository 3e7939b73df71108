package analysis

import "strings"

// ExperienceLevel is the coarse seniority band required by a job description.
type ExperienceLevel string

// Experience levels, from least to most senior.
const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// JobRequirements is the ephemeral requirement profile derived from one job
// description. It is recomputed per request and never persisted.
type JobRequirements struct {
	RequiredSkills  []string
	PreferredSkills []string
	ExperienceLevel ExperienceLevel
	Education       []string
	Keywords        []string
}

// educationKeywords are the education requirement indicators recognized in
// job descriptions.
var educationKeywords = []string{"bachelor", "master", "phd", "degree", "diploma", "certification"}

// contextKeywords are work-mode and employment-type tags recorded verbatim.
var contextKeywords = []string{"remote", "hybrid", "onsite", "full-time", "part-time", "contract", "freelance"}

// levelIndicators map seniority bands to indicator phrases. The slice order
// is the evaluation priority: junior is checked before mid before senior, and
// the first band with any matching indicator wins. This must stay an ordered
// slice, not a map.
var levelIndicators = []struct {
	level      ExperienceLevel
	indicators []string
}{
	{LevelJunior, []string{"junior", "entry level", "entry-level", "graduate", "0-1 years", "1-2 years"}},
	{LevelMid, []string{"mid-level", "mid level", "intermediate", "2-4 years", "3-5 years"}},
	{LevelSenior, []string{"senior", "lead", "principal", "staff", "5+ years", "7+ years", "10+ years"}},
}

// AnalyzeJobDescription extracts required and preferred skills, the expected
// experience level, education requirements, and contextual keywords from
// free-text job description content. Empty or short input yields sparse
// requirement sets rather than an error.
func AnalyzeJobDescription(text string) *JobRequirements {
	lower := strings.ToLower(text)

	req := &JobRequirements{
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
		ExperienceLevel: LevelMid,
		Education:       []string{},
		Keywords:        []string{},
	}

	for _, skill := range skillCatalog {
		if !strings.Contains(lower, skill) {
			continue
		}
		if isRequiredSkill(lower, skill) {
			req.RequiredSkills = append(req.RequiredSkills, skill)
		} else {
			req.PreferredSkills = append(req.PreferredSkills, skill)
		}
	}

	for _, entry := range levelIndicators {
		if containsAny(lower, entry.indicators) {
			req.ExperienceLevel = entry.level
			break
		}
	}

	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			req.Education = append(req.Education, kw)
		}
	}

	for _, kw := range contextKeywords {
		if strings.Contains(lower, kw) {
			req.Keywords = append(req.Keywords, kw)
		}
	}

	return req
}

// isRequiredSkill classifies a matched skill as required when it appears
// adjacent to a requirement phrase; everything else is preferred.
func isRequiredSkill(lower, skill string) bool {
	return strings.Contains(lower, "required "+skill) || strings.Contains(lower, "must have "+skill)
}
