package har

// HARCreator identifies the application that produced the capture
type HARCreator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HARBrowser identifies the browser that produced the capture
type HARBrowser struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HARPageTimings holds page-level load milestones
type HARPageTimings struct {
	OnContentLoad float64 `json:"onContentLoad,omitempty"`
	OnLoad        float64 `json:"onLoad,omitempty"`
}

// HARPage represents a tracked page in a HAR file
type HARPage struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	StartedDateTime string         `json:"startedDateTime"`
	PageTimings     HARPageTimings `json:"pageTimings"`
}

// HARHeader represents an HTTP header in a HAR file
type HARHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARCookie represents an HTTP cookie in a HAR file
type HARCookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain,omitempty"`
	Path     string `json:"path,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
}

// HARQueryString represents a single query parameter
type HARQueryString struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARParam represents one part of a multipart/form-data request body
type HARParam struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// HARPostData represents POST data in a HAR file
type HARPostData struct {
	MimeType string     `json:"mimeType"`
	Text     string     `json:"text,omitempty"`
	Params   []HARParam `json:"params,omitempty"`
}

// HARRequest represents an HTTP request in a HAR file.
// Method is not constrained to the well-known verbs and URL may be any
// string; consumers fall back to opaque handling when URL parsing fails.
type HARRequest struct {
	Method      string           `json:"method"`
	URL         string           `json:"url"`
	HTTPVersion string           `json:"httpVersion"`
	Cookies     []HARCookie      `json:"cookies"`
	Headers     []HARHeader      `json:"headers"`
	QueryString []HARQueryString `json:"queryString"`
	PostData    *HARPostData     `json:"postData,omitempty"`
	HeadersSize int64            `json:"headersSize"`
	BodySize    int64            `json:"bodySize"`
}

// HARContent represents response content in a HAR file
type HARContent struct {
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// HARResponse represents an HTTP response in a HAR file
type HARResponse struct {
	Status      int         `json:"status"`
	StatusText  string      `json:"statusText"`
	HTTPVersion string      `json:"httpVersion"`
	Cookies     []HARCookie `json:"cookies"`
	Headers     []HARHeader `json:"headers"`
	Content     HARContent  `json:"content"`
	RedirectURL string      `json:"redirectURL"`
	HeadersSize int64       `json:"headersSize"`
	BodySize    int64       `json:"bodySize"`
}

// HARCacheState describes a cache entry before or after a request
type HARCacheState struct {
	Expires    string `json:"expires,omitempty"`
	LastAccess string `json:"lastAccess"`
	ETag       string `json:"eTag"`
	HitCount   int64  `json:"hitCount"`
}

// HARCache holds cache metadata for an entry
type HARCache struct {
	BeforeRequest *HARCacheState `json:"beforeRequest,omitempty"`
	AfterRequest  *HARCacheState `json:"afterRequest,omitempty"`
}

// HARTimings represents timing information in a HAR file. Phases are
// independent fields; producers overlap them, so their sum is not
// guaranteed to equal the entry's total time. -1 marks an absent phase.
type HARTimings struct {
	Blocked float64 `json:"blocked"`
	DNS     float64 `json:"dns"`
	Connect float64 `json:"connect"`
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`
	SSL     float64 `json:"ssl"`
}

// HAREntry represents a single HTTP transaction in a HAR file.
// Time may be zero or missing; derived computations treat that as 0.
type HAREntry struct {
	StartedDateTime string      `json:"startedDateTime"`
	Time            float64     `json:"time"`
	Request         HARRequest  `json:"request"`
	Response        HARResponse `json:"response"`
	Cache           HARCache    `json:"cache"`
	Timings         HARTimings  `json:"timings"`
	ServerIPAddress string      `json:"serverIPAddress,omitempty"`
	Connection      string      `json:"connection,omitempty"`
}

// HARLog represents the log object in a HAR file
type HARLog struct {
	Version string      `json:"version"`
	Creator HARCreator  `json:"creator"`
	Browser *HARBrowser `json:"browser,omitempty"`
	Pages   []HARPage   `json:"pages,omitempty"`
	Entries []HAREntry  `json:"entries"`
}

// HARFile represents the root HAR file structure. Once parsed it is a
// read-only view; nothing in this package mutates a loaded capture.
type HARFile struct {
	Log HARLog `json:"log"`
}
