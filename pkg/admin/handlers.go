package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/getimpose/impose/pkg/httputil"
	"github.com/getimpose/impose/pkg/imposter"
)

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status:    "ok",
		Imposters: a.engine.ImposterCount(),
	})
}

func (a *API) handleCreateImposter(w http.ResponseWriter, r *http.Request) {
	var cfg imposter.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		httputil.WriteBadRequest(w, codeInvalidBody, "invalid JSON: "+err.Error())
		return
	}

	im, err := a.engine.CreateImposter(cfg)
	if err != nil {
		a.log.Warn("imposter creation rejected", "port", cfg.Port, "error", err)
		writeEngineError(w, err)
		return
	}

	httputil.WriteCreated(w, detail(im))
}

func (a *API) handleListImposters(w http.ResponseWriter, _ *http.Request) {
	imposters := a.engine.ListImposters()
	summaries := make([]ImposterSummary, 0, len(imposters))
	for _, im := range imposters {
		summaries = append(summaries, summarize(im))
	}
	httputil.WriteOK(w, ListResponse{Imposters: summaries, Count: len(summaries)})
}

func (a *API) handleDeleteAllImposters(w http.ResponseWriter, _ *http.Request) {
	deleted := a.engine.DeleteAll()
	httputil.WriteOK(w, DeleteAllResponse{Deleted: deleted})
}

func (a *API) handleGetImposter(w http.ResponseWriter, r *http.Request) {
	im, ok := a.imposterFromPath(w, r)
	if !ok {
		return
	}
	httputil.WriteOK(w, detail(im))
}

func (a *API) handleDeleteImposter(w http.ResponseWriter, r *http.Request) {
	port, ok := a.portFromPath(w, r)
	if !ok {
		return
	}
	if err := a.engine.DeleteImposter(port); err != nil {
		writeEngineError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (a *API) handleAddStub(w http.ResponseWriter, r *http.Request) {
	im, ok := a.imposterFromPath(w, r)
	if !ok {
		return
	}

	var cfg imposter.StubConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		httputil.WriteBadRequest(w, codeInvalidBody, "invalid JSON: "+err.Error())
		return
	}

	if _, err := im.AddStub(cfg); err != nil {
		writeEngineError(w, err)
		return
	}

	httputil.WriteCreated(w, detail(im))
}

func (a *API) handleSetRecording(w http.ResponseWriter, r *http.Request) {
	im, ok := a.imposterFromPath(w, r)
	if !ok {
		return
	}

	var req RecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, codeInvalidBody, "invalid JSON: "+err.Error())
		return
	}

	im.SetRecording(req.RecordRequests)
	httputil.WriteOK(w, summarize(im))
}

func (a *API) handleListRequests(w http.ResponseWriter, r *http.Request) {
	im, ok := a.imposterFromPath(w, r)
	if !ok {
		return
	}
	entries := im.Requests()
	httputil.WriteOK(w, RequestsResponse{Requests: entries, Count: len(entries)})
}

func (a *API) handleClearRequests(w http.ResponseWriter, r *http.Request) {
	im, ok := a.imposterFromPath(w, r)
	if !ok {
		return
	}
	im.ClearRequests()
	httputil.WriteNoContent(w)
}

// portFromPath parses the {port} path segment.
func (a *API) portFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("port")
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		httputil.WriteBadRequest(w, codeInvalidPort, "invalid port: "+raw)
		return 0, false
	}
	return port, true
}

// imposterFromPath resolves the {port} path segment to a live imposter.
func (a *API) imposterFromPath(w http.ResponseWriter, r *http.Request) (*imposter.Imposter, bool) {
	port, ok := a.portFromPath(w, r)
	if !ok {
		return nil, false
	}
	im, err := a.engine.GetImposter(port)
	if err != nil {
		writeEngineError(w, err)
		return nil, false
	}
	return im, true
}
