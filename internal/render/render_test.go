package render

import (
	"strings"
	"testing"

	"github.com/harview/harview/internal/classify"
)

func TestBeautify(t *testing.T) {
	tests := []struct {
		name     string
		language classify.Language
		input    string
		contains string
	}{
		{
			name:     "html gets indented",
			language: classify.LangHTML,
			input:    "<html><body><p>hi</p></body></html>",
			contains: "\n",
		},
		{
			name:     "xml gets indented",
			language: classify.LangXML,
			input:    "<root><item>a</item></root>",
			contains: "\n  <item>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Beautify(tt.language, tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Beautify output %q missing %q", got, tt.contains)
			}
		})
	}
}

func TestBeautifyPassthrough(t *testing.T) {
	for _, lang := range []classify.Language{classify.LangJSON, classify.LangJavaScript, classify.LangCSS, classify.LangText} {
		input := "left   as-is"
		if got := Beautify(lang, input); got != input {
			t.Errorf("Beautify(%s) changed text: %q", lang, got)
		}
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight(classify.LangJSON, `{"a": 1}`)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Expected ANSI escapes in highlighted output, got %q", got)
	}
	if plain := Highlight(classify.LangText, "no color needed"); !strings.Contains(plain, "no color needed") {
		t.Errorf("Plaintext content lost: %q", plain)
	}
}
