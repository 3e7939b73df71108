// Package analysis implements the heuristic resume-to-job matching pipeline:
// job description analysis, resume field extraction, match scoring, and
// candidate assembly.
package analysis

import "strings"

// skillCatalog is the fixed set of technology keywords recognized in both job
// descriptions and resumes. Matching is lower-cased substring containment.
var skillCatalog = []string{
	"javascript", "typescript", "react", "angular", "vue", "node.js", "python", "java", "c#", "php",
	"aws", "azure", "gcp", "docker", "kubernetes", "mongodb", "postgresql", "mysql", "redis",
	"git", "jenkins", "ci/cd", "agile", "scrum", "rest api", "graphql", "microservices",
	"machine learning", "ai", "data science", "sql", "nosql", "html", "css", "sass", "less",
	"webpack", "babel", "jest", "cypress", "selenium", "jira", "confluence", "figma", "sketch",
}

// containsAny reports whether the lower-cased line contains any of the given
// lower-cased keywords.
func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// hasString reports whether the slice contains the exact value.
func hasString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
