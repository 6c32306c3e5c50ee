package admin

import (
	"time"

	"github.com/getimpose/impose/pkg/imposter"
	"github.com/getimpose/impose/pkg/requestlog"
)

// ImposterSummary is the list-view representation of an imposter.
type ImposterSummary struct {
	Port           int               `json:"port"`
	Protocol       imposter.Protocol `json:"protocol"`
	Name           string            `json:"name,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	RecordRequests bool              `json:"recordRequests"`
	NumberOfStubs  int               `json:"numberOfStubs"`
	RequestCount   int               `json:"requestCount"`
}

// StubView is the read-only representation of a stub, including its
// cumulative match count.
type StubView struct {
	Predicates []imposter.Predicate `json:"predicates,omitempty"`
	Responses  []imposter.Response  `json:"responses"`
	MatchCount uint64               `json:"matchCount"`
}

// ImposterDetail is the single-imposter representation: the summary
// plus stubs and, when recording is enabled, the request log.
type ImposterDetail struct {
	ImposterSummary
	Stubs    []StubView          `json:"stubs"`
	Requests []*requestlog.Entry `json:"requests,omitempty"`
}

// ListResponse is the payload of GET /imposters.
type ListResponse struct {
	Imposters []ImposterSummary `json:"imposters"`
	Count     int               `json:"count"`
}

// DeleteAllResponse is the payload of DELETE /imposters.
type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}

// RecordingRequest is the payload of PUT /imposters/{port}/recording.
type RecordingRequest struct {
	RecordRequests bool `json:"recordRequests"`
}

// RequestsResponse is the payload of GET /imposters/{port}/requests.
type RequestsResponse struct {
	Requests []*requestlog.Entry `json:"requests"`
	Count    int                 `json:"count"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Imposters int    `json:"imposters"`
}

func summarize(im *imposter.Imposter) ImposterSummary {
	return ImposterSummary{
		Port:           im.Port(),
		Protocol:       im.Protocol(),
		Name:           im.Name(),
		CreatedAt:      im.CreatedAt(),
		RecordRequests: im.Recording(),
		NumberOfStubs:  len(im.Stubs()),
		RequestCount:   im.RequestCount(),
	}
}

func detail(im *imposter.Imposter) ImposterDetail {
	stubs := im.Stubs()
	views := make([]StubView, 0, len(stubs))
	for _, s := range stubs {
		views = append(views, StubView{
			Predicates: s.Predicates,
			Responses:  s.Responses,
			MatchCount: s.Matches(),
		})
	}

	d := ImposterDetail{
		ImposterSummary: summarize(im),
		Stubs:           views,
	}
	// Captured requests stay visible after recording is toggled off;
	// only an explicit clear (or imposter deletion) drops them.
	if entries := im.Requests(); len(entries) > 0 {
		d.Requests = entries
	}
	return d
}
