package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Score term weights. The terms are additive and each is clamped to its own
// weight; the final score is clamped to 100 because the weights total more
// than 100.
const (
	requiredSkillsWeight  = 40.0
	preferredSkillsWeight = 20.0
	experienceWeight      = 25.0
	educationWeight       = 15.0
	projectWeight         = 20.0
)

// MatchResult is the scored outcome of comparing one resume against one job
// description, with human-readable strengths and gaps.
type MatchResult struct {
	Score      int
	GoodPoints []string
	BadPoints  []string
}

var firstIntRe = regexp.MustCompile(`\d+`)

// ScoreMatch computes a 0-100 match score from weighted sub-scores and
// generates feedback strings in a fixed order. It is a pure function of its
// inputs: identical requirements and resume data always produce identical
// output.
func ScoreMatch(req *JobRequirements, data ResumeData) MatchResult {
	matchedRequired := countSkillMatches(req.RequiredSkills, data.Skills)
	matchedPreferred := countSkillMatches(req.PreferredSkills, data.Skills)

	requiredTerm := skillTerm(matchedRequired, len(req.RequiredSkills), requiredSkillsWeight)
	preferredTerm := skillTerm(matchedPreferred, len(req.PreferredSkills), preferredSkillsWeight)
	experienceTerm := experienceScore(req.ExperienceLevel, data.Experience)
	educationTerm := educationScore(req.Education, data.Education)
	projectTerm := projectScore(req, data.Projects)

	total := requiredTerm + preferredTerm + experienceTerm + educationTerm + projectTerm
	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}

	good, bad := buildFeedback(feedbackInput{
		matchedRequired:  matchedRequired,
		totalRequired:    len(req.RequiredSkills),
		matchedPreferred: matchedPreferred,
		experienceTerm:   experienceTerm,
		educationTerm:    educationTerm,
		projectTerm:      projectTerm,
		hasCerts:         len(data.Certifications) > 0,
	})

	return MatchResult{Score: score, GoodPoints: good, BadPoints: bad}
}

// skillTerm scales the matched fraction by the term weight. When the job
// description yielded no skills at all the term falls back to a neutral
// midpoint instead of zero, so a sparse job description does not sink every
// candidate.
func skillTerm(matched, total int, weight float64) float64 {
	if total == 0 {
		return weight / 2
	}
	return float64(matched) / float64(total) * weight
}

// countSkillMatches counts job skills matched by any resume skill. Two skills
// match when either lower-cased string contains the other.
func countSkillMatches(jobSkills, resumeSkills []string) int {
	matched := 0
	for _, js := range jobSkills {
		if skillMatched(js, resumeSkills) {
			matched++
		}
	}
	return matched
}

func skillMatched(jobSkill string, resumeSkills []string) bool {
	js := strings.ToLower(jobSkill)
	for _, rs := range resumeSkills {
		lrs := strings.ToLower(rs)
		if strings.Contains(lrs, js) || strings.Contains(js, lrs) {
			return true
		}
	}
	return false
}

// yearsOfExperience parses the first integer from a free-text experience
// range string such as "3-5 years". Unparseable input defaults to 3.
func yearsOfExperience(experience string) int {
	m := firstIntRe.FindString(experience)
	if m == "" {
		return 3
	}
	years, err := strconv.Atoi(m)
	if err != nil {
		return 3
	}
	return years
}

// experienceScore is piecewise by the required level, using the years parsed
// from the resume experience string.
func experienceScore(level ExperienceLevel, experience string) float64 {
	years := yearsOfExperience(experience)
	switch level {
	case LevelJunior:
		if years <= 2 {
			return experienceWeight
		}
		return max(0, experienceWeight-5*float64(years-2))
	case LevelMid:
		if years >= 2 && years <= 7 {
			return experienceWeight
		}
		return max(0, experienceWeight-5*math.Abs(float64(years-4)))
	case LevelSenior:
		if years >= 5 {
			return experienceWeight
		}
		return max(0, experienceWeight-5*float64(5-years))
	default:
		return 15
	}
}

// educationScore grants the full weight when no education requirement was
// extracted or any requirement keyword appears in the resume's education
// string, and a reduced baseline otherwise.
func educationScore(required []string, education string) float64 {
	if len(required) == 0 {
		return educationWeight
	}
	lower := strings.ToLower(education)
	for _, kw := range required {
		if strings.Contains(lower, kw) {
			return educationWeight
		}
	}
	return 5
}

// projectScore is the fraction of projects mentioning any required or
// preferred skill, scaled by the project weight.
func projectScore(req *JobRequirements, projects []string) float64 {
	relevant := 0
	for _, project := range projects {
		lower := strings.ToLower(project)
		if containsAny(lower, req.RequiredSkills) || containsAny(lower, req.PreferredSkills) {
			relevant++
		}
	}
	return float64(relevant) / max(float64(len(projects)), 1) * projectWeight
}

type feedbackInput struct {
	matchedRequired  int
	totalRequired    int
	matchedPreferred int
	experienceTerm   float64
	educationTerm    float64
	projectTerm      float64
	hasCerts         bool
}

// buildFeedback emits strength and gap strings in a fixed order, capped at
// five good points and four bad points.
func buildFeedback(in feedbackInput) (good, bad []string) {
	good = []string{}
	bad = []string{}

	if in.matchedRequired > 0 {
		good = append(good, fmt.Sprintf("Matches %d out of %d required skills", in.matchedRequired, in.totalRequired))
	} else {
		bad = append(bad, "No required skills match found")
	}

	if in.matchedPreferred > 0 {
		good = append(good, fmt.Sprintf("Has %d preferred skills", in.matchedPreferred))
	}

	if in.experienceTerm > 15 {
		good = append(good, "Experience level aligns well with requirements")
	} else {
		bad = append(bad, "Experience level may not match requirements")
	}

	if in.educationTerm > 10 {
		good = append(good, "Education background is relevant")
	}

	if in.projectTerm > 15 {
		good = append(good, "Project experience is relevant to the role")
	} else {
		bad = append(bad, "Limited relevant project experience")
	}

	if in.hasCerts {
		good = append(good, "Has relevant certifications")
	}

	if len(good) > 5 {
		good = good[:5]
	}
	if len(bad) > 4 {
		bad = bad[:4]
	}
	return good, bad
}
