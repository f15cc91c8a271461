package extraction

import (
	"encoding/json"
	"strings"

	"docextract-backend/internal/resume"
)

// stripFences removes surrounding markdown code-fence markup from a model
// response, e.g. a leading ```json line and a trailing ``` line. Text
// without fences passes through trimmed.
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop a language tag on the opening fence ("json", "JSON", ...).
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isFenceTag(first) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// parseResponse turns the model's raw text into the payload to return and
// persist. Unparseable output is not an error: it degrades to a
// {"raw_text": ...} payload carrying the original text. Callers classify
// the result with resume.IsRawTextFallback.
func parseResponse(text string) json.RawMessage {
	stripped := stripFences(text)
	if json.Valid([]byte(stripped)) {
		return json.RawMessage(stripped)
	}
	fallback, err := json.Marshal(map[string]string{resume.RawTextKey: text})
	if err != nil {
		// Marshaling a map of strings cannot fail; keep the compiler honest.
		return json.RawMessage(`{}`)
	}
	return fallback
}
