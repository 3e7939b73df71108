package ratelimit

import "strings"

// matchRule returns the first rule whose pattern matches the request, or
// nil when the request falls through to the default limit.
func matchRule(method, path string, rules []Rule) *Rule {
	for i := range rules {
		rule := &rules[i]
		m, pattern, ok := strings.Cut(rule.Pattern, " ")
		if !ok || m != method {
			continue
		}
		if matchPath(pattern, path) {
			return rule
		}
	}
	return nil
}

// matchPath compares path segments, treating "{...}" pattern segments as
// single-segment wildcards.
func matchPath(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if strings.HasPrefix(want[i], "{") && strings.HasSuffix(want[i], "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
