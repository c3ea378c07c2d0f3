package scopes

import "strings"

const (
	// Separator splits scopes inside a scope list string.
	Separator = " "

	// Wildcard matches any scope, or any scope in a namespace as a suffix.
	Wildcard = "*"

	// Delimiter separates scope parts, e.g. "report.export".
	Delimiter = "."
)

// Parse splits a space-separated scope list, dropping empty entries.
// It returns nil for blank input.
func Parse(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Join renders scopes as a space-separated list.
func Join(scopes []string) string {
	return strings.Join(scopes, Separator)
}

// IsPattern reports whether scope contains a wildcard.
func IsPattern(scope string) bool {
	return strings.Contains(scope, Wildcard)
}

// Matches reports whether scope is matched by pattern.
//
//   - "report.view" matches "report.view"
//   - anything matches "*"
//   - "report.view" matches "report.*", but "report" does not
func Matches(scope, pattern string) bool {
	if scope == "" {
		return false
	}
	if scope == pattern || pattern == Wildcard {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, Delimiter+Wildcard); ok && prefix != "" {
		return strings.HasPrefix(scope, prefix+Delimiter)
	}
	return false
}

// Normalize trims entries, drops empty ones and removes duplicates.
// The first occurrence of each scope keeps its position.
func Normalize(scopes []string) []string {
	if len(scopes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
