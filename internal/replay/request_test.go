package replay

import (
	"reflect"
	"testing"

	"github.com/harview/harview/internal/har"
)

func TestFromEntry(t *testing.T) {
	entry := har.HAREntry{
		Request: har.HARRequest{
			Method:      "POST",
			URL:         "https://api.example.com/users",
			Headers:     []har.HARHeader{{Name: "Accept", Value: "*/*"}},
			QueryString: []har.HARQueryString{{Name: "v", Value: "2"}},
			PostData:    &har.HARPostData{MimeType: "application/json", Text: `{"a":1}`},
		},
	}

	req := FromEntry(entry)

	if req.Method != "POST" || req.URL != "https://api.example.com/users" {
		t.Errorf("Unexpected request line: %s %s", req.Method, req.URL)
	}
	if req.BodyMimeType != "application/json" || req.BodyText != `{"a":1}` {
		t.Errorf("Unexpected body: %q %q", req.BodyMimeType, req.BodyText)
	}

	// Edits must not alias the capture.
	req.Headers[0].Value = "text/plain"
	req.QueryString[0].Value = "3"
	if entry.Request.Headers[0].Value != "*/*" {
		t.Error("Editing the overlay mutated the captured headers")
	}
	if entry.Request.QueryString[0].Value != "2" {
		t.Error("Editing the overlay mutated the captured query string")
	}
}

func TestFromEntryNoBody(t *testing.T) {
	req := FromEntry(har.HAREntry{Request: har.HARRequest{Method: "GET", URL: "https://example.com/"}})
	if req.BodyText != "" || req.BodyMimeType != "" {
		t.Errorf("Expected empty body, got %q %q", req.BodyMimeType, req.BodyText)
	}
	if req.Headers != nil {
		t.Errorf("Expected nil headers, got %v", req.Headers)
	}
}

func TestParseHeaderText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []har.HARHeader
	}{
		{
			name:  "plain headers",
			input: "Accept: */*\nContent-Type: application/json",
			expected: []har.HARHeader{
				{Name: "Accept", Value: "*/*"},
				{Name: "Content-Type", Value: "application/json"},
			},
		},
		{
			name:  "line without colon yields empty value",
			input: "Accept: */*\nBad-Header-No-Colon",
			expected: []har.HARHeader{
				{Name: "Accept", Value: "*/*"},
				{Name: "Bad-Header-No-Colon", Value: ""},
			},
		},
		{
			name:  "colon in value splits on first colon only",
			input: "Referer: https://example.com/a",
			expected: []har.HARHeader{
				{Name: "Referer", Value: "https://example.com/a"},
			},
		},
		{
			name:  "blank lines and padding skipped",
			input: "\n  X-One : 1  \n\r\n\tX-Two:2\n",
			expected: []har.HARHeader{
				{Name: "X-One", Value: "1"},
				{Name: "X-Two", Value: "2"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHeaderText(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseHeaderText(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetHeader(t *testing.T) {
	req := Request{Headers: []har.HARHeader{
		{Name: "Accept", Value: "*/*"},
		{Name: "X-Trace", Value: "1"},
		{Name: "accept", Value: "text/html"},
	}}

	req.SetHeader("Accept", "application/json")
	want := []har.HARHeader{
		{Name: "Accept", Value: "application/json"},
		{Name: "X-Trace", Value: "1"},
	}
	if !reflect.DeepEqual(req.Headers, want) {
		t.Errorf("After replace: %v, want %v", req.Headers, want)
	}

	req.SetHeader("X-New", "v")
	if len(req.Headers) != 3 || req.Headers[2].Name != "X-New" {
		t.Errorf("Expected append for absent header, got %v", req.Headers)
	}
}
