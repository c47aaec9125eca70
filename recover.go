package skim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecoverObject extracts the first valid JSON object embedded anywhere in
// free-form completion text. The common case, where the model returns
// exactly the object and nothing else, is a direct parse. Otherwise the text
// is scanned from the first '{' with a brace depth counter, skipping string
// literals, attempting a sub-parse each time the depth returns to zero. This
// tolerates chatty preambles and epilogues ("Here is your summary: { ... }
// Let me know...").
//
// Returns EUNPROCESSABLE if the text contains no '{' at all, or if no
// balanced region parses as an object.
func RecoverObject(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, nil
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, Errorf(EUNPROCESSABLE, "completion contains no structured object")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]

		// Braces inside JSON string values don't affect nesting.
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			// Only track strings inside a candidate object; quotes in
			// surrounding prose carry no structure.
			if depth > 0 {
				inString = true
			}
		case '{':
			depth++
		case '}':
			// A stray '}' at depth zero is noise, not a closure.
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				if err := json.Unmarshal([]byte(text[start:i+1]), &obj); err == nil {
					return obj, nil
				}
				// Sub-parse failed; keep scanning for a later balanced
				// closure from the same start offset.
			}
		}
	}

	return nil, Errorf(EUNPROCESSABLE, "completion contains no structured object")
}

// DraftFromObject normalizes a recovered object into a bounded SummaryDraft.
// This stage is lossy-tolerant: a missing or non-string title falls back to
// DefaultTitle, non-string key points are coerced to strings, and the list
// is truncated to MaxBullets. It never fails.
func DraftFromObject(obj map[string]any) *SummaryDraft {
	draft := &SummaryDraft{Title: DefaultTitle}

	if title, ok := obj["title"].(string); ok {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			draft.Title = trimmed
		}
	}

	points, _ := obj["summary_points"].([]any)
	for _, point := range points {
		if len(draft.Bullets) == MaxBullets {
			break
		}
		switch v := point.(type) {
		case string:
			draft.Bullets = append(draft.Bullets, v)
		default:
			draft.Bullets = append(draft.Bullets, fmt.Sprint(v))
		}
	}

	return draft
}
