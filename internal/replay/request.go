package replay

import (
	"strings"

	"github.com/harview/harview/internal/har"
)

// Request is the mutable overlay handed to the engine. It is built on
// demand from a captured entry, edited freely by the caller, and never
// written back into the capture it came from.
type Request struct {
	Method      string
	URL         string
	Headers     []har.HARHeader
	QueryString []har.HARQueryString
	// BodyMimeType becomes the outbound Content-Type when BodyText is
	// non-empty.
	BodyMimeType string
	BodyText     string
}

// FromEntry copies the replayable parts of a captured entry into a
// fresh Request. Header and query slices are cloned so edits never
// alias the parsed capture.
func FromEntry(entry har.HAREntry) Request {
	req := Request{
		Method: entry.Request.Method,
		URL:    entry.Request.URL,
	}
	if len(entry.Request.Headers) > 0 {
		req.Headers = make([]har.HARHeader, len(entry.Request.Headers))
		copy(req.Headers, entry.Request.Headers)
	}
	if len(entry.Request.QueryString) > 0 {
		req.QueryString = make([]har.HARQueryString, len(entry.Request.QueryString))
		copy(req.QueryString, entry.Request.QueryString)
	}
	if entry.Request.PostData != nil {
		req.BodyMimeType = entry.Request.PostData.MimeType
		req.BodyText = entry.Request.PostData.Text
	}
	return req
}

// ParseHeaderText reconstructs structured headers from a hand-edited
// text block. Each non-empty line is split on the first colon with both
// sides whitespace-trimmed; a line with no colon becomes a header with
// an empty value. This is a best-effort parser for an editable text
// field, not a strict grammar.
func ParseHeaderText(text string) []har.HARHeader {
	var headers []har.HARHeader
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			headers = append(headers, har.HARHeader{Name: strings.TrimSpace(name)})
			continue
		}
		headers = append(headers, har.HARHeader{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return headers
}

// SetHeader replaces every header with the given name (case-insensitive)
// or appends when absent, preserving the order of untouched headers.
func (r *Request) SetHeader(name, value string) {
	replaced := false
	kept := r.Headers[:0]
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			if !replaced {
				kept = append(kept, har.HARHeader{Name: name, Value: value})
				replaced = true
			}
			continue
		}
		kept = append(kept, h)
	}
	r.Headers = kept
	if !replaced {
		r.Headers = append(r.Headers, har.HARHeader{Name: name, Value: value})
	}
}
