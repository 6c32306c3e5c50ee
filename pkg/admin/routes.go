// Route registration for the configuration API.

package admin

import "net/http"

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.Handle("GET /metrics", a.engine.Metrics().Handler())

	mux.HandleFunc("POST /imposters", a.handleCreateImposter)
	mux.HandleFunc("GET /imposters", a.handleListImposters)
	mux.HandleFunc("DELETE /imposters", a.handleDeleteAllImposters)

	mux.HandleFunc("GET /imposters/{port}", a.handleGetImposter)
	mux.HandleFunc("DELETE /imposters/{port}", a.handleDeleteImposter)

	mux.HandleFunc("POST /imposters/{port}/stubs", a.handleAddStub)
	mux.HandleFunc("PUT /imposters/{port}/recording", a.handleSetRecording)
	mux.HandleFunc("GET /imposters/{port}/requests", a.handleListRequests)
	mux.HandleFunc("DELETE /imposters/{port}/requests", a.handleClearRequests)
}
