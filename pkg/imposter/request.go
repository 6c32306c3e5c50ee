package imposter

import (
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Request is the normalized view of an inbound HTTP request that
// predicates are evaluated against and that gets recorded.
//
// Body holds the payload exactly as received on the wire. Form is only
// populated when the Content-Type indicates form encoding; it is a
// convenience view, the raw bytes stay authoritative.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Headers    http.Header
	Body       []byte
	Form       url.Values
	RemoteAddr string
}

// FromHTTP builds a normalized Request from an http.Request whose body
// has already been read into body. The original request is not consumed.
func FromHTTP(r *http.Request, body []byte) *Request {
	req := &Request{
		Method:     strings.ToUpper(r.Method),
		Path:       r.URL.Path,
		Query:      r.URL.Query(),
		Headers:    r.Header.Clone(),
		Body:       body,
		RemoteAddr: r.RemoteAddr,
	}

	if isFormEncoded(r.Header.Get("Content-Type")) {
		if form, err := url.ParseQuery(string(body)); err == nil {
			req.Form = form
		}
	}

	return req
}

// isFormEncoded reports whether the content type indicates a URL-encoded
// form body.
func isFormEncoded(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded"
}
