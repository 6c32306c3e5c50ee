package requestlog

import "time"

// Entry captures one request observed by an imposter.
//
// Body holds the request payload exactly as received; it is never
// decoded or re-encoded, so binary payloads survive bit-for-bit.
// In JSON output the body is base64-encoded (standard encoding/json
// behavior for byte slices), which keeps the round trip lossless.
type Entry struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method, upper-cased.
	Method string `json:"method"`

	// Path is the request URL path.
	Path string `json:"path"`

	// Query holds the decoded query parameters (multi-value).
	Query map[string][]string `json:"query,omitempty"`

	// Headers are the request headers in canonical form (multi-value).
	Headers map[string][]string `json:"headers,omitempty"`

	// Body is the raw request body.
	Body []byte `json:"body,omitempty"`

	// Form holds the decoded form fields when the request was
	// form-encoded, nil otherwise.
	Form map[string][]string `json:"form,omitempty"`

	// RemoteAddr is the client address.
	RemoteAddr string `json:"remoteAddr,omitempty"`

	// ResponseStatus is the status code the dispatcher answered with.
	ResponseStatus int `json:"responseStatus"`
}
