// Package stats computes summary statistics over a set of capture
// entries. Summarize is a total function: an empty entry list produces
// a zero Summary, and malformed field values fall back to zero rather
// than failing, since this is a display-only path.
package stats

import (
	"sort"
	"strings"

	"github.com/harview/harview/internal/har"
	"github.com/harview/harview/internal/index"
)

// contentTypeLimit caps the content-type distribution at the most
// frequent subtypes so the summary stays readable on noisy captures.
const contentTypeLimit = 5

// MethodCount is one row of the method distribution
type MethodCount struct {
	Method  string
	Count   int
	Percent float64
}

// ClassCount is one row of the status-class distribution
type ClassCount struct {
	Class   string
	Count   int
	Percent float64
}

// TypeCount is one row of the content-type distribution, keyed by the
// primary MIME subtype (the part after the slash, parameters stripped).
type TypeCount struct {
	Subtype string
	Count   int
}

// Summary holds the aggregate view of a set of entries
type Summary struct {
	TotalCount     int
	TotalBodyBytes int64
	AverageTime    float64
	SlowestIndex   int
	SlowestTime    float64
	Methods        []MethodCount
	StatusClasses  []ClassCount
	ContentTypes   []TypeCount
}

// Summarize computes totals, averages, extremes and grouped
// distributions over the given entries. Distribution ordering is
// first-seen except content types, which rank by count descending with
// first-seen tie-break. Entries with absent time count as 0 and stay in
// the average's denominator.
func Summarize(entries []har.HAREntry) Summary {
	summary := Summary{
		TotalCount:   len(entries),
		SlowestIndex: -1,
	}
	if len(entries) == 0 {
		return summary
	}

	methodCounts := make(map[string]int)
	var methodOrder []string
	classCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	typeOrder := make(map[string]int)

	var totalTime float64
	for i, entry := range entries {
		t := entry.Time
		if t < 0 {
			t = 0
		}
		totalTime += t
		if summary.SlowestIndex == -1 || t > summary.SlowestTime {
			summary.SlowestIndex = i
			summary.SlowestTime = t
		}

		if size := entry.Response.Content.Size; size > 0 {
			summary.TotalBodyBytes += size
		}

		method := entry.Request.Method
		if methodCounts[method] == 0 {
			methodOrder = append(methodOrder, method)
		}
		methodCounts[method]++

		classCounts[index.StatusClassOf(entry.Response.Status)]++

		if subtype := primarySubtype(entry.Response.Content.MimeType); subtype != "" {
			if typeCounts[subtype] == 0 {
				typeOrder[subtype] = len(typeOrder)
			}
			typeCounts[subtype]++
		}
	}

	summary.AverageTime = totalTime / float64(len(entries))

	total := float64(summary.TotalCount)
	for _, method := range methodOrder {
		count := methodCounts[method]
		summary.Methods = append(summary.Methods, MethodCount{
			Method:  method,
			Count:   count,
			Percent: float64(count) * 100 / total,
		})
	}

	for _, class := range []string{"2xx", "3xx", "4xx", "5xx", "other"} {
		if count := classCounts[class]; count > 0 {
			summary.StatusClasses = append(summary.StatusClasses, ClassCount{
				Class:   class,
				Count:   count,
				Percent: float64(count) * 100 / total,
			})
		}
	}

	for subtype, count := range typeCounts {
		summary.ContentTypes = append(summary.ContentTypes, TypeCount{Subtype: subtype, Count: count})
	}
	sort.SliceStable(summary.ContentTypes, func(i, j int) bool {
		a, b := summary.ContentTypes[i], summary.ContentTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return typeOrder[a.Subtype] < typeOrder[b.Subtype]
	})
	if len(summary.ContentTypes) > contentTypeLimit {
		summary.ContentTypes = summary.ContentTypes[:contentTypeLimit]
	}

	return summary
}

// primarySubtype extracts the portion of a MIME type after the slash,
// with parameters stripped: "application/json; charset=utf-8" -> "json".
// A bare type with no slash is returned as-is; empty input stays empty.
func primarySubtype(mimeType string) string {
	mime, _, _ := strings.Cut(mimeType, ";")
	mime = strings.TrimSpace(mime)
	if mime == "" {
		return ""
	}
	if _, subtype, found := strings.Cut(mime, "/"); found {
		return subtype
	}
	return mime
}
