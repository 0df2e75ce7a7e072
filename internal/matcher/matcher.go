package matcher

import "strings"

// Match reports whether a Fluxor service name satisfies pattern: "*" matches
// everything, a pattern ending in "/" matches that namespace, anything else
// must match exactly.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "/"):
		return strings.HasPrefix(name, pattern)
	default:
		return name == pattern
	}
}

// Any reports whether name satisfies at least one pattern.
func Any(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
