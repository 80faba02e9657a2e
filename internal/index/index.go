// Package index builds filterable views over a capture's entry list
// without mutating the underlying capture. Filters identify entries by
// capture-order index, which doubles as the stable entry key used
// everywhere else in the engine.
package index

import (
	"strings"

	"github.com/harview/harview/internal/har"
)

// All is the sentinel that disables a method or status-class predicate
const All = "all"

// Filter holds the predicates applied to an entry list. Zero values
// pass everything, so an empty Filter is the identity view.
type Filter struct {
	Search      string
	Method      string
	StatusClass string
}

// StatusClasses returns the selectable status-class buckets
func StatusClasses() []string {
	return []string{All, "2xx", "3xx", "4xx", "5xx", "other"}
}

// StatusClassOf buckets a status code by its hundreds digit. Codes
// outside 200-599 land in "other".
func StatusClassOf(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return "other"
	}
}

// Apply returns the capture-order indices of entries passing every
// predicate. The result preserves input order; a zero-entry capture
// yields an empty slice, never an error.
func (f Filter) Apply(entries []har.HAREntry) []int {
	result := make([]int, 0, len(entries))
	search := strings.ToLower(f.Search)

	for i, entry := range entries {
		if f.Method != "" && f.Method != All && entry.Request.Method != f.Method {
			continue
		}
		if f.StatusClass != "" && f.StatusClass != All && StatusClassOf(entry.Response.Status) != f.StatusClass {
			continue
		}
		if search != "" && !matchesSearch(entry, search) {
			continue
		}
		result = append(result, i)
	}
	return result
}

// Entries returns the entries passing the filter as a new slice
func (f Filter) Entries(entries []har.HAREntry) []har.HAREntry {
	indices := f.Apply(entries)
	matched := make([]har.HAREntry, 0, len(indices))
	for _, idx := range indices {
		matched = append(matched, entries[idx])
	}
	return matched
}

// matchesSearch does case-insensitive substring matching against the
// request URL and method. searchText must already be lowercased.
func matchesSearch(entry har.HAREntry, searchText string) bool {
	if strings.Contains(strings.ToLower(entry.Request.URL), searchText) {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Request.Method), searchText)
}

// Methods returns the distinct request methods in first-seen order,
// suitable for building a method filter menu.
func Methods(entries []har.HAREntry) []string {
	seen := make(map[string]bool)
	var methods []string
	for _, entry := range entries {
		if !seen[entry.Request.Method] {
			seen[entry.Request.Method] = true
			methods = append(methods, entry.Request.Method)
		}
	}
	return methods
}
