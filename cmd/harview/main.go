package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/harview/harview/internal/classify"
	"github.com/harview/harview/internal/config"
	"github.com/harview/harview/internal/export"
	"github.com/harview/harview/internal/har"
	"github.com/harview/harview/internal/history"
	"github.com/harview/harview/internal/index"
	"github.com/harview/harview/internal/render"
	"github.com/harview/harview/internal/replay"
	"github.com/harview/harview/internal/stats"
)

type headerFlags []string

func (h *headerFlags) String() string { return strings.Join(*h, ", ") }

func (h *headerFlags) Set(value string) error {
	*h = append(*h, value)
	return nil
}

type options struct {
	search       string
	method       string
	status       string
	summary      bool
	show         int
	replayIdx    int
	curlIdx      int
	exportIdx    int
	out          string
	saveFiltered string
	showHistory  bool
	overrideURL  string
	overrideBody string
	logLevel     string
	headers      headerFlags
}

func main() {
	var opts options
	flag.StringVar(&opts.search, "search", "", "case-insensitive substring match on URL or method")
	flag.StringVar(&opts.method, "method", index.All, "filter by request method ('all' passes everything)")
	flag.StringVar(&opts.status, "status", index.All, "filter by status class: all, 2xx, 3xx, 4xx, 5xx, other")
	flag.BoolVar(&opts.summary, "summary", false, "print capture summary statistics")
	flag.IntVar(&opts.show, "show", -1, "print request/response of the entry at this capture index")
	flag.IntVar(&opts.replayIdx, "replay", -1, "replay the entry at this capture index against its live origin")
	flag.IntVar(&opts.curlIdx, "curl", -1, "print a curl command for the entry at this capture index")
	flag.IntVar(&opts.exportIdx, "export", -1, "export the entry at this capture index as JSON")
	flag.StringVar(&opts.out, "out", "", "output path for -export (default is a derived filename)")
	flag.StringVar(&opts.saveFiltered, "save-filtered", "", "write the filtered entries as a new HAR file at this path")
	flag.BoolVar(&opts.showHistory, "history", false, "list recorded replays")
	flag.StringVar(&opts.overrideURL, "url", "", "override the URL when replaying")
	flag.StringVar(&opts.overrideBody, "body", "", "override the body text when replaying")
	flag.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.Var(&opts.headers, "header", "replay header override ('Name: value'), repeatable")
	flag.Usage = usage
	flag.Parse()

	settings, settingsErr := config.Load()
	if settingsErr != nil {
		settings = config.Default()
	}
	level := settings.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := newLogger(level)
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Msg("settings unreadable, using defaults")
	}

	store := history.NewStore(settings.HistoryPath, settings.HistoryMaxEntries)

	if opts.showHistory {
		if err := printHistory(store); err != nil {
			logger.Fatal().Err(err).Msg("read replay history")
		}
		return
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	capture, err := har.Load(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("load capture")
	}
	entries := capture.Log.Entries
	logger.Debug().Int("entries", len(entries)).Str("version", capture.Log.Version).Msg("capture loaded")

	filter := index.Filter{Search: opts.search, Method: opts.method, StatusClass: opts.status}
	matched := filter.Apply(entries)

	switch {
	case opts.summary:
		printSummary(stats.Summarize(filter.Entries(entries)))
	case opts.show >= 0:
		entry, ok := entryAt(entries, opts.show, logger)
		if ok {
			printEntry(opts.show, entry)
		}
	case opts.curlIdx >= 0:
		entry, ok := entryAt(entries, opts.curlIdx, logger)
		if ok {
			fmt.Println(export.CurlCommand(entry))
		}
	case opts.exportIdx >= 0:
		entry, ok := entryAt(entries, opts.exportIdx, logger)
		if ok {
			exportEntry(entry, opts.out, logger)
		}
	case opts.replayIdx >= 0:
		entry, ok := entryAt(entries, opts.replayIdx, logger)
		if ok {
			replayEntry(entry, opts, settings, store, logger)
		}
	case opts.saveFiltered != "":
		if err := har.SaveFiltered(capture, matched, opts.saveFiltered); err != nil {
			logger.Fatal().Err(err).Msg("save filtered capture")
		}
		fmt.Printf("wrote %d entries to %s\n", len(matched), opts.saveFiltered)
	default:
		printList(entries, matched)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: harview [flags] <file.har>")
	fmt.Fprintln(os.Stderr, "\nInspect, filter, summarize, replay and export HAR captures.")
	fmt.Fprintln(os.Stderr, "Entry indices refer to capture order, as printed in the entry list.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

func entryAt(entries []har.HAREntry, idx int, logger zerolog.Logger) (har.HAREntry, bool) {
	if idx < 0 || idx >= len(entries) {
		logger.Error().Int("index", idx).Int("entries", len(entries)).Msg("entry index out of range")
		return har.HAREntry{}, false
	}
	return entries[idx], true
}

func printList(entries []har.HAREntry, matched []int) {
	for _, idx := range matched {
		entry := entries[idx]
		fmt.Printf("%4d  %-7s %3d  %9.1fms  %s\n",
			idx, entry.Request.Method, entry.Response.Status, entry.Time, entry.Request.URL)
	}
	fmt.Printf("\n%d of %d entries\n", len(matched), len(entries))
}

func printSummary(summary stats.Summary) {
	fmt.Printf("entries:      %d\n", summary.TotalCount)
	fmt.Printf("body bytes:   %d\n", summary.TotalBodyBytes)
	fmt.Printf("average time: %.1fms\n", summary.AverageTime)
	if summary.SlowestIndex >= 0 {
		fmt.Printf("slowest:      entry %d (%.1fms)\n", summary.SlowestIndex, summary.SlowestTime)
	}
	if len(summary.Methods) > 0 {
		fmt.Println("\nmethods:")
		for _, m := range summary.Methods {
			fmt.Printf("  %-8s %5d  %5.1f%%\n", m.Method, m.Count, m.Percent)
		}
	}
	if len(summary.StatusClasses) > 0 {
		fmt.Println("\nstatus classes:")
		for _, c := range summary.StatusClasses {
			fmt.Printf("  %-8s %5d  %5.1f%%\n", c.Class, c.Count, c.Percent)
		}
	}
	if len(summary.ContentTypes) > 0 {
		fmt.Println("\ncontent types:")
		for _, ct := range summary.ContentTypes {
			fmt.Printf("  %-24s %5d\n", ct.Subtype, ct.Count)
		}
	}
}

func printEntry(idx int, entry har.HAREntry) {
	fmt.Printf("entry %d  %s\n\n", idx, entry.StartedDateTime)
	fmt.Printf("%s %s %s\n", entry.Request.Method, entry.Request.URL, entry.Request.HTTPVersion)
	for _, h := range entry.Request.Headers {
		fmt.Printf("%s: %s\n", h.Name, h.Value)
	}
	if entry.Request.PostData != nil && entry.Request.PostData.Text != "" {
		fmt.Printf("\n%s\n", renderBody(entry.Request.PostData.MimeType, entry.Request.PostData.Text, ""))
	}

	fmt.Printf("\n%d %s %s  (%.1fms)\n", entry.Response.Status, entry.Response.StatusText, entry.Response.HTTPVersion, entry.Time)
	for _, h := range entry.Response.Headers {
		fmt.Printf("%s: %s\n", h.Name, h.Value)
	}
	content := entry.Response.Content
	fmt.Printf("\n%s\n", renderBody(content.MimeType, content.Text, content.Encoding))
}

func renderBody(mimeType, text, encoding string) string {
	result := classify.Classify(mimeType, har.DecodeBase64(text, encoding))
	if result.Empty {
		return "(no content)"
	}
	return render.Highlight(result.Language, render.Beautify(result.Language, result.Text))
}

func replayEntry(entry har.HAREntry, opts options, settings config.Settings, store *history.Store, logger zerolog.Logger) {
	req := replay.FromEntry(entry)
	if opts.overrideURL != "" {
		req.URL = opts.overrideURL
	}
	if opts.overrideBody != "" {
		req.BodyText = opts.overrideBody
	}
	for _, raw := range opts.headers {
		for _, h := range replay.ParseHeaderText(raw) {
			req.SetHeader(h.Name, h.Value)
		}
	}

	var client *http.Client
	ctx := context.Background()
	if settings.ReplayTimeoutSeconds > 0 {
		client = &http.Client{Timeout: time.Duration(settings.ReplayTimeoutSeconds) * time.Second}
	}

	logger.Info().Str("method", req.Method).Str("url", req.URL).Msg("replaying against live origin")
	engine := replay.NewEngine(client)
	result, err := engine.Do(ctx, req)

	if err != nil {
		if histErr := store.Append(history.NewEntry(req.Method, req.URL, 0, "", 0, "", err)); histErr != nil {
			logger.Warn().Err(histErr).Msg("record replay history")
		}
		logger.Fatal().Err(err).Msg("replay failed")
	}

	histEntry := history.NewEntry(req.Method, req.URL, result.Status, result.StatusText, result.Duration, result.Body, nil)
	if histErr := store.Append(histEntry); histErr != nil {
		logger.Warn().Err(histErr).Msg("record replay history")
	}

	fmt.Printf("%d %s %s  (%s)\n", result.Status, result.StatusText, result.Proto, result.Duration.Round(time.Millisecond))
	for _, h := range result.Headers {
		fmt.Printf("%s: %s\n", h.Name, h.Value)
	}
	contentType := ""
	for _, h := range result.Headers {
		if strings.EqualFold(h.Name, "content-type") {
			contentType = h.Value
			break
		}
	}
	fmt.Printf("\n%s\n", renderBody(contentType, result.Body, ""))
}

func exportEntry(entry har.HAREntry, out string, logger zerolog.Logger) {
	doc := export.Document(entry)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("encode export document")
	}
	path := out
	if path == "" {
		path = export.Filename(entry)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("write export document")
	}
	fmt.Printf("wrote %s\n", path)
}

func printHistory(store *history.Store) error {
	if err := store.Load(); err != nil {
		return err
	}
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("no recorded replays")
		return nil
	}
	for _, e := range entries {
		status := fmt.Sprintf("%d", e.StatusCode)
		if e.Error != "" {
			status = "ERR"
		}
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("%s  %s  %-7s %-4s %9s  %s\n",
			id, e.ExecutedAt.Format(time.RFC3339), e.Method, status, e.Duration.Round(time.Millisecond), e.URL)
		if e.Error != "" {
			fmt.Printf("          %s\n", e.Error)
		}
	}
	return nil
}
