package utils

import "strings"

// Best-effort structured extraction for LLM output. Models wrap their JSON in
// markdown fences and conversational filler; these helpers recover the payload
// when it is trivially recoverable and fail with ErrMalformedAIResponse
// otherwise. No grammar repair is attempted.

// ExtractJSONObject returns the substring from the first '{' to its matching
// closing brace, after stripping code fences and surrounding text.
func ExtractJSONObject(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	start := strings.IndexByte(cleaned, '{')
	if start == -1 {
		return "", ErrMalformedAIResponse
	}
	end := findMatchingDelimiter(cleaned, start, '{', '}')
	if end == -1 {
		return "", ErrMalformedAIResponse
	}
	return cleaned[start : end+1], nil
}

// ExtractJSONArray is the bracket-matching counterpart of ExtractJSONObject.
func ExtractJSONArray(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	start := strings.IndexByte(cleaned, '[')
	if start == -1 {
		return "", ErrMalformedAIResponse
	}
	end := findMatchingDelimiter(cleaned, start, '[', ']')
	if end == -1 {
		return "", ErrMalformedAIResponse
	}
	return cleaned[start : end+1], nil
}

// stripCodeFences removes markdown code fence markers, both language-tagged
// and bare.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// findMatchingDelimiter scans forward from start tracking nesting depth,
// skipping delimiters that appear inside JSON strings (including escaped
// quotes). Returns the index of the matching close delimiter, or -1.
func findMatchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
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
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
