// Package export projects a single capture entry into a portable
// document. The projection is a deliberate subset of the entry: cookies
// and cache metadata stay out.
package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/harview/harview/internal/har"
)

// DocRequest is the request half of an export document
type DocRequest struct {
	Method      string               `json:"method"`
	URL         string               `json:"url"`
	HTTPVersion string               `json:"httpVersion"`
	Headers     []har.HARHeader      `json:"headers"`
	QueryString []har.HARQueryString `json:"queryString"`
	PostData    *har.HARPostData     `json:"postData,omitempty"`
}

// DocResponse is the response half of an export document
type DocResponse struct {
	Status      int             `json:"status"`
	StatusText  string          `json:"statusText"`
	HTTPVersion string          `json:"httpVersion"`
	Headers     []har.HARHeader `json:"headers"`
	Content     har.HARContent  `json:"content"`
}

// Doc is the exported shape of one entry. The collaborator serializes
// it to bytes and decides where it lands.
type Doc struct {
	Request         DocRequest     `json:"request"`
	Response        DocResponse    `json:"response"`
	Timings         har.HARTimings `json:"timings"`
	ServerIPAddress string         `json:"serverIPAddress,omitempty"`
	StartedDateTime string         `json:"startedDateTime"`
	Time            float64        `json:"time"`
}

// Document projects an entry into its export shape
func Document(entry har.HAREntry) Doc {
	return Doc{
		Request: DocRequest{
			Method:      entry.Request.Method,
			URL:         entry.Request.URL,
			HTTPVersion: entry.Request.HTTPVersion,
			Headers:     entry.Request.Headers,
			QueryString: entry.Request.QueryString,
			PostData:    entry.Request.PostData,
		},
		Response: DocResponse{
			Status:      entry.Response.Status,
			StatusText:  entry.Response.StatusText,
			HTTPVersion: entry.Response.HTTPVersion,
			Headers:     entry.Response.Headers,
			Content:     entry.Response.Content,
		},
		Timings:         entry.Timings,
		ServerIPAddress: har.ServerIP(entry),
		StartedDateTime: entry.StartedDateTime,
		Time:            entry.Time,
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename derives a descriptive filename for an exported entry:
// {method}_{sanitizedHost}{sanitizedPath}.json with every
// non-alphanumeric character replaced by an underscore. When the URL
// does not parse, falls back to request_{timestamp}.json.
func Filename(entry har.HAREntry) string {
	u, err := url.Parse(entry.Request.URL)
	if err != nil || u.Host == "" {
		return fmt.Sprintf("request_%d.json", entryTimestamp(entry))
	}
	host := unsafeFilenameChars.ReplaceAllString(u.Host, "_")
	path := unsafeFilenameChars.ReplaceAllString(u.Path, "_")
	return entry.Request.Method + "_" + host + path + ".json"
}

func entryTimestamp(entry har.HAREntry) int64 {
	if t, err := har.ParseDateTime(entry.StartedDateTime); err == nil {
		return t.Unix()
	}
	return time.Now().Unix()
}

// CurlCommand renders an entry's request as a runnable curl invocation
func CurlCommand(entry har.HAREntry) string {
	var cmd strings.Builder
	cmd.WriteString(fmt.Sprintf("curl -X %s '%s'", entry.Request.Method, entry.Request.URL))

	for _, header := range entry.Request.Headers {
		if strings.ToLower(header.Name) != "host" {
			cmd.WriteString(fmt.Sprintf(" -H '%s: %s'", header.Name, header.Value))
		}
	}

	if entry.Request.PostData != nil && entry.Request.PostData.Text != "" {
		cmd.WriteString(fmt.Sprintf(" -d '%s'", strings.ReplaceAll(entry.Request.PostData.Text, "'", "'\\''")))
	}

	return cmd.String()
}
