package utils

import (
	"strings"
)

var fenceMarkers = []string{"```json", "```JSON", "```"}

// StripCodeFences removes markdown code-fence delimiters the model tends to
// wrap its JSON in.
func StripCodeFences(response string) string {
	for _, marker := range fenceMarkers {
		response = strings.ReplaceAll(response, marker, "")
	}
	return strings.TrimSpace(response)
}

// ExtractJSONObject returns the outermost balanced {...} span starting at the
// first '{' in s. Braces inside JSON strings are ignored. The second return
// value is false when no '{' exists or it is never closed.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", false
	}

	end := findMatchingBrace(s, start)
	if end == -1 {
		return "", false
	}
	return s[start : end+1], true
}

// findMatchingBrace finds the matching closing brace for an opening brace
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
