package imposter

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getimpose/impose/pkg/requestlog"
)

// Protocol identifies the wire protocol an imposter speaks.
type Protocol string

// Supported protocols.
const (
	ProtocolHTTP Protocol = "http"
)

// fallback is the fixed response answered when no stub matches and the
// imposter declares no default of its own.
var fallback = Response{StatusCode: http.StatusOK, rendered: []byte{}}

// Config is the declarative form of an imposter as accepted by the
// configuration API and collection files.
type Config struct {
	// Port is the TCP port the imposter binds. Required, immutable.
	Port int `json:"port" yaml:"port"`

	// Protocol defaults to http.
	Protocol Protocol `json:"protocol,omitempty" yaml:"protocol,omitempty"`

	// Name is an optional human label with no functional effect.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// RecordRequests enables the request log.
	RecordRequests bool `json:"recordRequests,omitempty" yaml:"recordRequests,omitempty"`

	// DefaultResponse replaces the fixed 200/empty fallback for
	// unmatched requests.
	DefaultResponse *Response `json:"defaultResponse,omitempty" yaml:"defaultResponse,omitempty"`

	// Stubs are evaluated in declaration order.
	Stubs []StubConfig `json:"stubs,omitempty" yaml:"stubs,omitempty"`
}

// Imposter is one virtual HTTP service: a port, an ordered stub list,
// and a request log.
//
// The stub list and the recording flag are guarded by the imposter's
// lock; per-stub rotation state is guarded by each stub. Imposters on
// different ports share no state, so operations on one never block
// another.
type Imposter struct {
	port      int
	protocol  Protocol
	name      string
	createdAt time.Time

	defaultResponse *Response

	mu        sync.RWMutex
	stubs     []*Stub
	recording bool

	log *requestlog.Store
}

// New validates the configuration and builds an Imposter.
func New(cfg Config) (*Imposter, error) {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, &ValidationError{Field: "port", Message: fmt.Sprintf("invalid port %d", cfg.Port)}
	}

	protocol := cfg.Protocol
	if protocol == "" {
		protocol = ProtocolHTTP
	}
	if protocol != ProtocolHTTP {
		return nil, &ValidationError{Field: "protocol", Message: fmt.Sprintf("unsupported protocol: %s", protocol)}
	}

	im := &Imposter{
		port:      cfg.Port,
		protocol:  protocol,
		name:      cfg.Name,
		createdAt: time.Now(),
		recording: cfg.RecordRequests,
		log:       requestlog.NewStore(0),
	}

	if cfg.DefaultResponse != nil {
		def := *cfg.DefaultResponse
		if err := def.validate(); err != nil {
			return nil, err
		}
		im.defaultResponse = &def
	}

	for i, stubCfg := range cfg.Stubs {
		stub, err := NewStub(stubCfg)
		if err != nil {
			return nil, fmt.Errorf("stub %d: %w", i, err)
		}
		im.stubs = append(im.stubs, stub)
	}

	return im, nil
}

// Port returns the bound port.
func (im *Imposter) Port() int { return im.port }

// Protocol returns the imposter's protocol.
func (im *Imposter) Protocol() Protocol { return im.protocol }

// Name returns the optional human label.
func (im *Imposter) Name() string { return im.name }

// CreatedAt returns the creation time.
func (im *Imposter) CreatedAt() time.Time { return im.createdAt }

// Stubs returns the stub list in declaration order.
func (im *Imposter) Stubs() []*Stub {
	im.mu.RLock()
	defer im.mu.RUnlock()
	out := make([]*Stub, len(im.stubs))
	copy(out, im.stubs)
	return out
}

// AddStub validates the configuration and appends a stub to the end of
// the evaluation order.
func (im *Imposter) AddStub(cfg StubConfig) (*Stub, error) {
	stub, err := NewStub(cfg)
	if err != nil {
		return nil, err
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.stubs = append(im.stubs, stub)
	return stub, nil
}

// SetRecording toggles request recording.
func (im *Imposter) SetRecording(enabled bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.recording = enabled
}

// Recording reports whether requests are being recorded.
func (im *Imposter) Recording() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.recording
}

// DefaultResponse returns the response for unmatched requests: the
// configured default when present, the fixed 200/empty fallback
// otherwise.
func (im *Imposter) DefaultResponse() *Response {
	if im.defaultResponse != nil {
		return im.defaultResponse
	}
	return &fallback
}

// Record appends an entry to the request log.
func (im *Imposter) Record(e *requestlog.Entry) {
	im.log.Append(e)
}

// Requests returns the recorded requests in arrival order.
func (im *Imposter) Requests() []*requestlog.Entry {
	return im.log.List()
}

// RequestCount returns the number of recorded requests.
func (im *Imposter) RequestCount() int {
	return im.log.Count()
}

// ClearRequests empties the request log without touching stubs or
// rotation state.
func (im *Imposter) ClearRequests() {
	im.log.Clear()
}
