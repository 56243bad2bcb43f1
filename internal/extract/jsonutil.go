package extract

import (
	"encoding/json"
	"strings"
)

// firstJSONObject returns the substring spanning the first '{' through the
// last '}' of s. Model responses are not guaranteed to be pure JSON; prose
// may surround the object.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// decodeModelJSON decodes a JSON object embedded in free-form model output:
// the raw text verbatim first, then the brace-delimited region. Returns
// false when neither attempt yields valid JSON; callers supply the default.
func decodeModelJSON(text string, v interface{}) bool {
	if json.Unmarshal([]byte(text), v) == nil {
		return true
	}
	region, ok := firstJSONObject(text)
	return ok && json.Unmarshal([]byte(region), v) == nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
