package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		mimeType     string
		text         string
		wantLanguage Language
		wantText     string
	}{
		{
			name:         "json canonicalized with two-space indent",
			mimeType:     "application/json",
			text:         `{"a":1}`,
			wantLanguage: LangJSON,
			wantText:     "{\n  \"a\": 1\n}",
		},
		{
			name:         "json with charset parameter",
			mimeType:     "application/json; charset=utf-8",
			text:         `[1,2]`,
			wantLanguage: LangJSON,
			wantText:     "[\n  1,\n  2\n]",
		},
		{
			name:         "vendor json suffix",
			mimeType:     "application/vnd.api+json",
			text:         `{"a":1}`,
			wantLanguage: LangJSON,
			wantText:     "{\n  \"a\": 1\n}",
		},
		{
			name:         "invalid json falls back to text",
			mimeType:     "application/json",
			text:         `{"a":`,
			wantLanguage: LangText,
			wantText:     `{"a":`,
		},
		{
			name:         "html passes through unchanged",
			mimeType:     "text/html; charset=utf-8",
			text:         "<html><body>x</body></html>",
			wantLanguage: LangHTML,
			wantText:     "<html><body>x</body></html>",
		},
		{
			name:         "javascript",
			mimeType:     "application/javascript",
			text:         "const a = 1;",
			wantLanguage: LangJavaScript,
			wantText:     "const a = 1;",
		},
		{
			name:         "ecmascript alias",
			mimeType:     "application/ecmascript",
			text:         "var x",
			wantLanguage: LangJavaScript,
			wantText:     "var x",
		},
		{
			name:         "css",
			mimeType:     "text/css",
			text:         ".a { color: red }",
			wantLanguage: LangCSS,
			wantText:     ".a { color: red }",
		},
		{
			name:         "xml passes through unchanged",
			mimeType:     "application/xml",
			text:         "<root><a/></root>",
			wantLanguage: LangXML,
			wantText:     "<root><a/></root>",
		},
		{
			name:         "unknown mime is text",
			mimeType:     "application/octet-stream",
			text:         "binaryish",
			wantLanguage: LangText,
			wantText:     "binaryish",
		},
		{
			name:         "empty mime is text",
			mimeType:     "",
			text:         "plain",
			wantLanguage: LangText,
			wantText:     "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.mimeType, tt.text)
			if result.Language != tt.wantLanguage {
				t.Errorf("language = %s, want %s", result.Language, tt.wantLanguage)
			}
			if result.Text != tt.wantText {
				t.Errorf("text = %q, want %q", result.Text, tt.wantText)
			}
			if result.Empty {
				t.Error("Expected non-empty result")
			}
		})
	}
}

func TestClassifyEmptyText(t *testing.T) {
	result := Classify("application/json", "")
	if !result.Empty {
		t.Error("Expected no-content sentinel for empty text")
	}
	if result.Language != LangText {
		t.Errorf("Expected text language for empty content, got %s", result.Language)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []struct{ mime, text string }{
		{"application/json", `{"z":1,"a":{"nested":[1,2,3]}}`},
		{"text/html", "<p>hi</p>"},
		{"", "whatever"},
	}
	for _, in := range inputs {
		first := Classify(in.mime, in.text)
		second := Classify(in.mime, in.text)
		if first != second {
			t.Errorf("Classify(%q, %q) not deterministic: %+v vs %+v", in.mime, in.text, first, second)
		}
	}
}
