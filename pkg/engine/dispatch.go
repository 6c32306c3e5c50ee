package engine

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/getimpose/impose/internal/matching"
	"github.com/getimpose/impose/pkg/imposter"
	"github.com/getimpose/impose/pkg/metrics"
	"github.com/getimpose/impose/pkg/requestlog"
)

// maxBodyBytes caps the request payload an imposter will buffer.
const maxBodyBytes = 10 << 20

// dispatcher answers every request on one imposter's port.
type dispatcher struct {
	engine   *Engine
	imposter *imposter.Imposter
}

func (d *dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	im := d.imposter

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		status := http.StatusInternalServerError
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		d.engine.log.Warn("failed to read request body",
			"port", im.Port(), "error", err)
		http.Error(w, http.StatusText(status), status)
		d.engine.metrics.ObserveDispatch(im.Port(), metrics.OutcomeError, time.Since(start).Seconds())
		return
	}

	req := imposter.FromHTTP(r, body)

	resp, outcome := d.resolve(req)

	if im.Recording() {
		d.record(req, resp.StatusCode)
	}

	// The rotation slot is already consumed, so the response is always
	// written out, even when the client goes away during the delay.
	// Writing to an aborted connection is harmless and keeps rotation
	// state consistent with what was served.
	if resp.DelayMs > 0 {
		time.Sleep(time.Duration(resp.DelayMs) * time.Millisecond)
	}

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	if ct := resp.ContentType(); ct != "" && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", ct)
	}
	payload := resp.Bytes()
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(payload)

	d.engine.metrics.ObserveDispatch(im.Port(), outcome, time.Since(start).Seconds())
}

// resolve walks the stubs in declaration order and returns the first
// match's next response, or the imposter's default when nothing
// matches.
func (d *dispatcher) resolve(req *imposter.Request) (*imposter.Response, string) {
	for _, stub := range d.imposter.Stubs() {
		if matching.EvaluateAll(stub.Predicates, req) {
			return stub.NextResponse(), metrics.OutcomeMatched
		}
	}
	return d.imposter.DefaultResponse(), metrics.OutcomeDefault
}

// record appends the request to the imposter's log.
func (d *dispatcher) record(req *imposter.Request, status int) {
	d.imposter.Record(&requestlog.Entry{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Method:         req.Method,
		Path:           req.Path,
		Query:          req.Query,
		Headers:        req.Headers,
		Body:           req.Body,
		Form:           req.Form,
		RemoteAddr:     req.RemoteAddr,
		ResponseStatus: status,
	})
	d.engine.metrics.ObserveRecorded(d.imposter.Port())
}
