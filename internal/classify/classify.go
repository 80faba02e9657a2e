// Package classify picks a display language for captured bodies and
// canonicalizes their text. Everything here is a pure function over its
// inputs: no I/O, no side effects, and no failure mode — messy payloads
// fall back to plain text instead of erroring.
package classify

import (
	"encoding/json"
	"strings"
)

// Language is the display syntax chosen for a piece of content
type Language string

const (
	LangJSON       Language = "json"
	LangHTML       Language = "html"
	LangJavaScript Language = "javascript"
	LangCSS        Language = "css"
	LangXML        Language = "xml"
	LangText       Language = "text"
)

// Result pairs the chosen language with the canonical form of the text.
// Empty marks the no-content sentinel for absent bodies.
type Result struct {
	Language Language
	Text     string
	Empty    bool
}

// Classify inspects a MIME type and body text and returns the display
// language plus canonical text. MIME substrings are matched in priority
// order; JSON is re-serialized with stable 2-space indentation, falling
// back to raw text when it does not parse. All other languages pass the
// text through unchanged.
func Classify(mimeType, text string) Result {
	if text == "" {
		return Result{Language: LangText, Empty: true}
	}

	lowerMime := strings.ToLower(mimeType)
	switch {
	case strings.Contains(lowerMime, "json"):
		canonical, ok := canonicalJSON(text)
		if !ok {
			return Result{Language: LangText, Text: text}
		}
		return Result{Language: LangJSON, Text: canonical}
	case strings.Contains(lowerMime, "html"):
		return Result{Language: LangHTML, Text: text}
	case strings.Contains(lowerMime, "javascript") || strings.Contains(lowerMime, "ecmascript"):
		return Result{Language: LangJavaScript, Text: text}
	case strings.Contains(lowerMime, "css"):
		return Result{Language: LangCSS, Text: text}
	case strings.Contains(lowerMime, "xml"):
		return Result{Language: LangXML, Text: text}
	default:
		return Result{Language: LangText, Text: text}
	}
}

// canonicalJSON re-serializes JSON with 2-space indentation so the same
// document always renders identically regardless of source formatting.
func canonicalJSON(text string) (string, bool) {
	var data interface{}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return "", false
	}
	formatted, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", false
	}
	return string(formatted), true
}
