package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a reply contains no recoverable JSON object.
var ErrNoJSON = errors.New("no JSON object in reply")

// ExtractEmbeddedJSON recovers a JSON object embedded in free-form text.
// Providers wrap the object in prose or markdown fences; everything outside
// the first "{" and the last "}" is discarded before parsing.
func ExtractEmbeddedJSON(content string) (json.RawMessage, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSON
	}
	candidate := content[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, errors.New("embedded JSON does not parse")
	}
	return json.RawMessage(candidate), nil
}
