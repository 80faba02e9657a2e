// Package render prepares classified content for terminal display:
// structural pretty-printing plus ANSI syntax coloring. Rendering never
// fails; anything that cannot be improved comes back unchanged.
package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/go-xmlfmt/xmlfmt"
	"github.com/yosssi/gohtml"

	"github.com/harview/harview/internal/classify"
)

// Beautify re-indents text for the given language. JSON arrives already
// canonical from the classifier, so only HTML and XML get reshaped here.
func Beautify(language classify.Language, text string) string {
	switch language {
	case classify.LangHTML:
		return gohtml.Format(text)
	case classify.LangXML:
		return strings.TrimLeft(xmlfmt.FormatXML(text, "", "  "), "\r\n")
	default:
		return text
	}
}

// Highlight applies ANSI syntax coloring for the given language,
// returning the input untouched when highlighting fails.
func Highlight(language classify.Language, text string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, text, lexerName(language), "terminal256", "monokai"); err != nil {
		return text
	}
	return buf.String()
}

func lexerName(language classify.Language) string {
	switch language {
	case classify.LangJSON:
		return "json"
	case classify.LangHTML:
		return "html"
	case classify.LangJavaScript:
		return "javascript"
	case classify.LangCSS:
		return "css"
	case classify.LangXML:
		return "xml"
	default:
		return "plaintext"
	}
}
