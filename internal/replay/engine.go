// Package replay re-issues captured requests against their live
// origins. A replay performs a single real outbound call to whatever
// host the URL names, with no retries and no engine-imposed timeout:
// this is an exploratory one-shot tool, not a resilient client, and it
// can hit production systems.
package replay

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/harview/harview/internal/errdef"
	"github.com/harview/harview/internal/har"
)

// Result is the normalized capture of a replay response. Produced
// fresh per invocation and never persisted by the engine itself.
type Result struct {
	Status     int
	StatusText string
	Proto      string
	Headers    []har.HARHeader
	Body       string
	Duration   time.Duration
}

// Engine executes replays. Engines hold no mutable state beyond the
// shared http.Client, so concurrent Do calls are independent.
type Engine struct {
	client *http.Client
}

// NewEngine creates an engine around the given client. A nil client
// gets a default one with the transport's stock behavior and no timeout.
func NewEngine(client *http.Client) *Engine {
	if client == nil {
		client = &http.Client{}
	}
	return &Engine{client: client}
}

// Do normalizes req, issues it, and captures the full response.
// Cancellation is the caller's choice via ctx; an abandoned call simply
// completes and its result is discarded. Failures surface as coded
// errors: invalid_url for requests that cannot be built, timeout when
// the deadline expires, network for everything the transport rejects.
func (e *Engine) Do(ctx context.Context, req Request) (*Result, error) {
	httpReq, err := buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := e.client.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errdef.Wrap(errdef.CodeTimeout, err, "replay timed out")
		}
		return nil, errdef.Wrap(errdef.CodeNetwork, err, "perform replay")
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errdef.Wrap(errdef.CodeTimeout, err, "replay timed out")
		}
		return nil, errdef.Wrap(errdef.CodeNetwork, err, "read replay response body")
	}

	return &Result{
		Status:     httpResp.StatusCode,
		StatusText: statusText(httpResp),
		Proto:      httpResp.Proto,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       string(body),
		Duration:   time.Since(start),
	}, nil
}

func buildHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return nil, errdef.New(errdef.CodeInvalidURL, "replay url is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidURL, err, "parse replay url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errdef.Newf(errdef.CodeInvalidURL, "replay url %q is not absolute", rawURL)
	}

	// Captured URLs normally embed their query already; the structured
	// parameters only matter when the caller edited the URL bare.
	if u.RawQuery == "" && len(req.QueryString) > 0 {
		values := url.Values{}
		for _, param := range req.QueryString {
			values.Add(param.Name, param.Value)
		}
		u.RawQuery = values.Encode()
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.BodyText != "" {
		body = strings.NewReader(req.BodyText)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidURL, err, "build replay request")
	}

	for _, header := range req.Headers {
		name := strings.TrimSpace(header.Name)
		switch {
		case name == "" || strings.HasPrefix(name, ":"):
			// HTTP/2 pseudo-headers from browser captures cannot be
			// sent literally.
			continue
		case strings.EqualFold(name, "content-length"):
			// Recomputed from the actual body.
			continue
		case strings.EqualFold(name, "host"):
			httpReq.Host = header.Value
		default:
			httpReq.Header.Add(name, header.Value)
		}
	}

	if req.BodyText != "" && req.BodyMimeType != "" {
		httpReq.Header.Set("Content-Type", req.BodyMimeType)
	}

	return httpReq, nil
}

// flattenHeaders turns the response header map into an ordered name
// sequence, sorted by name for a deterministic capture.
func flattenHeaders(header http.Header) []har.HARHeader {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	var headers []har.HARHeader
	for _, name := range names {
		for _, value := range header[name] {
			headers = append(headers, har.HARHeader{Name: name, Value: value})
		}
	}
	return headers
}

func statusText(resp *http.Response) string {
	if _, text, found := strings.Cut(resp.Status, " "); found {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
