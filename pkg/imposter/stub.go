package imposter

import "sync"

// StubConfig is the declarative form of a stub as accepted by the
// configuration API and collection files.
type StubConfig struct {
	// Predicates are AND-combined. An empty list matches any request.
	Predicates []Predicate `json:"predicates,omitempty" yaml:"predicates,omitempty"`

	// Responses rotate across successive matches. At least one is required.
	Responses []Response `json:"responses" yaml:"responses"`
}

// Stub pairs an ordered predicate list with a rotating response list.
//
// Predicates and Responses are fixed after construction and must not be
// mutated. The rotation cursor and match counter are private to the
// stub instance; updates to them are serialized so that concurrent
// requests observe a strictly increasing rotation sequence.
type Stub struct {
	Predicates []Predicate
	Responses  []Response

	mu      sync.Mutex
	cursor  int
	matches uint64
}

// NewStub validates the configuration and builds a Stub. A stub with no
// responses is a configuration error, not a runtime default.
func NewStub(cfg StubConfig) (*Stub, error) {
	if len(cfg.Responses) == 0 {
		return nil, &ValidationError{Field: "responses", Message: "a stub requires at least one response"}
	}

	s := &Stub{
		Predicates: make([]Predicate, len(cfg.Predicates)),
		Responses:  make([]Response, len(cfg.Responses)),
	}
	copy(s.Predicates, cfg.Predicates)
	copy(s.Responses, cfg.Responses)

	for i := range s.Predicates {
		if err := validatePredicate(&s.Predicates[i]); err != nil {
			return nil, err
		}
	}
	for i := range s.Responses {
		if err := s.Responses[i].validate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NextResponse returns the response at the current rotation cursor,
// advances the cursor, and increments the match counter. The three
// steps happen under one lock so no two requests consume the same
// rotation slot.
func (s *Stub) NextResponse() *Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &s.Responses[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.Responses)
	s.matches++
	return resp
}

// Matches returns how many times this stub answered a request.
func (s *Stub) Matches() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches
}
