package imposter

import (
	"encoding/json"
	"net/http"
)

// Response specifies one canned HTTP response.
//
// Body and JSONBody are mutually exclusive. Body passes through
// untouched, byte-for-byte. JSONBody is serialized once at validation
// time with a stable encoding and implies a Content-Type of
// application/json unless the headers say otherwise.
type Response struct {
	// StatusCode is the HTTP status to answer with. Zero defaults to 200.
	StatusCode int `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`

	// Headers are attached to the outgoing response.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Body is the raw response payload.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// JSONBody is a structured payload serialized to JSON.
	JSONBody any `json:"jsonBody,omitempty" yaml:"jsonBody,omitempty"`

	// DelayMs delays the response by the given number of milliseconds.
	DelayMs int `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`

	// rendered and contentType are resolved during validation.
	rendered    []byte
	contentType string
}

// validate normalizes the response and pre-renders the body.
func (r *Response) validate() error {
	if r.StatusCode == 0 {
		r.StatusCode = http.StatusOK
	}
	if r.StatusCode < 100 || r.StatusCode > 599 {
		return &ValidationError{Field: "statusCode", Message: "status code must be between 100 and 599"}
	}
	if r.DelayMs < 0 {
		return &ValidationError{Field: "delayMs", Message: "delay must not be negative"}
	}

	if r.JSONBody != nil {
		if r.Body != "" {
			return &ValidationError{Field: "body", Message: "body and jsonBody are mutually exclusive"}
		}
		data, err := json.Marshal(r.JSONBody)
		if err != nil {
			return &ValidationError{Field: "jsonBody", Message: "jsonBody is not serializable: " + err.Error()}
		}
		r.rendered = data
		r.contentType = "application/json"
		return nil
	}

	r.rendered = []byte(r.Body)
	return nil
}

// Bytes returns the pre-rendered response payload.
func (r *Response) Bytes() []byte {
	return r.rendered
}

// ContentType returns the implied content type, or "" when none applies.
func (r *Response) ContentType() string {
	return r.contentType
}
