package profile

import (
	"encoding/json"
	"regexp"
	"strings"
)

const noMatchPhrase = "No criminal match found"

// Result is what the model claimed about the uploaded photo. CriminalData
// stays loosely typed: the model frequently varies field shapes (ages as
// strings, victims as prose or arrays), and callers only render it.
type Result struct {
	MatchFound   bool                   `json:"matchFound"`
	CriminalData map[string]interface{} `json:"criminalData,omitempty"`
	RawText      string                 `json:"raw_text,omitempty"`
}

var fencedJSON = regexp.MustCompile("```json([\\s\\S]*?)```")

// ParseResult extracts the embedded JSON object from the model's free-text
// reply. When no parseable object is present it falls back to scanning for
// the no-match phrase, matching what the original front-end did.
func ParseResult(text string) *Result {
	candidate, ok := ExtractJSON(text)
	if ok {
		var res Result
		if err := json.Unmarshal([]byte(candidate), &res); err == nil {
			res.RawText = text
			return &res
		}
	}
	return &Result{
		MatchFound: !strings.Contains(text, noMatchPhrase),
		RawText:    text,
	}
}

// ExtractJSON finds the most likely JSON object in free text: a ```json
// fence first, then the first balanced brace group.
func ExtractJSON(text string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if obj, ok := balancedObject(text); ok {
		return obj, true
	}
	return "", false
}

// balancedObject scans for the first '{' and returns the substring up to
// its matching '}', skipping braces inside string literals.
func balancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
