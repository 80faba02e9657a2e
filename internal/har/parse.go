package har

import (
	"encoding/base64"
	"encoding/json"
	"net"
	"net/url"
	"os"

	"github.com/harview/harview/internal/errdef"
)

// Parse decodes a raw HAR document. Unknown fields at any level are
// ignored so captures from different producers load cleanly. A document
// without a log.entries array is rejected as a schema violation.
func Parse(data []byte) (*HARFile, error) {
	var harFile HARFile
	if err := json.Unmarshal(data, &harFile); err != nil {
		return nil, errdef.Wrap(errdef.CodeMalformedJSON, err, "decode har document")
	}
	if harFile.Log.Entries == nil {
		return nil, errdef.New(errdef.CodeSchemaViolation, "har document has no log.entries array")
	}
	return &harFile, nil
}

// Load reads and parses a HAR file from the given path
func Load(filePath string) (*HARFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read har file")
	}
	return Parse(data)
}

// DecodeBase64 decodes base64 content if encoded
func DecodeBase64(text, encoding string) string {
	if encoding == "base64" && text != "" {
		if decoded, err := base64.StdEncoding.DecodeString(text); err == nil {
			return string(decoded)
		}
	}
	return text
}

// ServerIP returns the entry's recorded server address, falling back to
// the URL host when it is a literal IP. Empty when neither is available.
func ServerIP(entry HAREntry) string {
	if entry.ServerIPAddress != "" {
		return entry.ServerIPAddress
	}
	if u, err := url.Parse(entry.Request.URL); err == nil {
		host := u.Host
		if h, _, splitErr := net.SplitHostPort(host); splitErr == nil {
			host = h
		}
		if net.ParseIP(host) != nil {
			return host
		}
	}
	return ""
}

// SaveFiltered writes a new capture containing only the entries at the
// given capture-order indices, preserving the original log metadata.
func SaveFiltered(original *HARFile, indices []int, outputPath string) error {
	filtered := &HARFile{
		Log: HARLog{
			Version: original.Log.Version,
			Creator: original.Log.Creator,
			Browser: original.Log.Browser,
			Pages:   original.Log.Pages,
			Entries: make([]HAREntry, 0, len(indices)),
		},
	}

	for _, idx := range indices {
		if idx >= 0 && idx < len(original.Log.Entries) {
			filtered.Log.Entries = append(filtered.Log.Entries, original.Log.Entries[idx])
		}
	}

	data, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return errdef.Wrap(errdef.CodeUnknown, err, "encode filtered capture")
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write filtered capture")
	}
	return nil
}
