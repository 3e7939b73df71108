package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// ParsedResume holds the fields extracted from raw resume text. Every field
// has a deterministic default, so parsing never fails.
type ParsedResume struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string
	Experience     string
	Education      string
	Summary        string
	Projects       []string
	Certifications []string
}

var (
	nameLineRe     = regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`)
	fileNameRe     = regexp.MustCompile(`^([A-Z][a-z]+[_-][A-Z][a-z]+)`)
	emailRe        = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe        = regexp.MustCompile(`\+?[1-9][0-9]{0,14}`)
	yearsRangeRe   = regexp.MustCompile(`(?i)(\d+)[\s-](\d+)\s*years?`)
	yearsPlusRe    = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	summaryLabelRe = regexp.MustCompile(`(?i)(?:summary|profile|about)[:\s]*([^.\n]+)`)

	bachelorRe  = regexp.MustCompile(`(?i)bachelor'?s?\s*(?:degree|in|of)`)
	masterRe    = regexp.MustCompile(`(?i)master'?s?\s*(?:degree|in|of)`)
	phdRe       = regexp.MustCompile(`(?i)ph\.?d`)
	associateRe = regexp.MustCompile(`(?i)associate'?s?\s*(?:degree|in|of)`)
)

var (
	projectKeywords = []string{"project", "developed", "built", "created", "implemented"}
	certKeywords    = []string{"certified", "certification", "aws", "azure", "scrum", "agile"}
)

const defaultPhone = "+1 (555) 123-4567"

// ParseResumeContent extracts candidate fields from raw resume text using
// ordered regex and keyword rules. The file name serves as a fallback source
// for the candidate name.
func ParseResumeContent(content, fileName string) ParsedResume {
	lower := strings.ToLower(content)
	lines := strings.Split(content, "\n")

	name := extractName(content, fileName)

	return ParsedResume{
		Name:           name,
		Email:          extractEmail(content, name),
		Phone:          extractPhone(content),
		Skills:         extractSkills(lower),
		Experience:     extractExperience(content),
		Education:      extractEducation(content),
		Summary:        extractSummary(content, name),
		Projects:       extractProjects(lines),
		Certifications: extractCertifications(lines),
	}
}

// extractName finds two capitalized words at a line start in the content,
// then falls back to an underscore- or hyphen-separated pattern in the file
// name, then to "Unknown Candidate".
func extractName(content, fileName string) string {
	if m := nameLineRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := fileNameRe.FindStringSubmatch(fileName); m != nil {
		return strings.NewReplacer("_", " ", "-", " ").Replace(m[1])
	}
	return "Unknown Candidate"
}

func extractEmail(content, name string) string {
	if m := emailRe.FindString(content); m != "" {
		return m
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@email.com"
}

// extractPhone reformats the first digit run as +1 (XXX) XXX-XXXX. Runs
// shorter than ten digits fall back to the fixed placeholder.
func extractPhone(content string) string {
	digits := phoneRe.FindString(content)
	digits = strings.TrimPrefix(digits, "+")
	if len(digits) < 10 {
		return defaultPhone
	}
	return fmt.Sprintf("+1 (%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
}

func extractSkills(lower string) []string {
	var found []string
	for _, skill := range skillCatalog {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	if len(found) == 0 {
		return []string{"javascript", "react", "node.js"}
	}
	return found
}

// extractExperience tests ordered patterns: an explicit N-M range, an
// explicit N+ figure, then seniority literals. First match wins.
func extractExperience(content string) string {
	lower := strings.ToLower(content)
	if m := yearsRangeRe.FindStringSubmatch(content); m != nil {
		return fmt.Sprintf("%s-%s years", m[1], m[2])
	}
	if m := yearsPlusRe.FindStringSubmatch(content); m != nil {
		return fmt.Sprintf("%s+ years", m[1])
	}
	if strings.Contains(lower, "senior") {
		return "7-10 years"
	}
	if strings.Contains(lower, "junior") || strings.Contains(lower, "entry level") {
		return "1-2 years"
	}
	return "3-5 years"
}

// extractEducation tests ordered degree patterns; first match wins.
func extractEducation(content string) string {
	switch {
	case bachelorRe.MatchString(content):
		return "Bachelor's in Computer Science"
	case masterRe.MatchString(content):
		return "Master's in Software Engineering"
	case phdRe.MatchString(content):
		return "PhD in Computer Science"
	case associateRe.MatchString(content):
		return "Associate's in Programming"
	}
	return "Bachelor's in Computer Science"
}

func extractSummary(content, name string) string {
	if m := summaryLabelRe.FindStringSubmatch(content); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			return s
		}
	}
	first := strings.SplitN(name, " ", 2)[0]
	return fmt.Sprintf("Experienced %s with strong background in software development.", first)
}

// extractProjects collects lines mentioning project keywords, keeping lines
// between 10 and 200 characters and at most three entries.
func extractProjects(lines []string) []string {
	var projects []string
	for _, line := range lines {
		if !containsAny(strings.ToLower(line), projectKeywords) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 10 && len(trimmed) < 200 {
			projects = append(projects, trimmed)
		}
	}
	if len(projects) == 0 {
		return []string{"Web application development", "API integration", "Database design"}
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}
	return projects
}

func extractCertifications(lines []string) []string {
	var certs []string
	for _, line := range lines {
		if !containsAny(strings.ToLower(line), certKeywords) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 5 && len(trimmed) < 100 {
			certs = append(certs, trimmed)
		}
	}
	if len(certs) == 0 {
		return []string{"AWS Certified Developer"}
	}
	return certs
}
