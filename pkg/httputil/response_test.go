package httputil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]int{"port": 4545})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"port":4545}`, rec.Body.String())
}

func TestWriteJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, nil)

	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 409, "port_in_use", "port 4545 already in use")

	assert.Equal(t, 409, rec.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "port_in_use", envelope["error"])
	assert.Equal(t, "port 4545 already in use", envelope["message"])
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name   string
		write  func(*httptest.ResponseRecorder)
		status int
	}{
		{"ok", func(r *httptest.ResponseRecorder) { WriteOK(r, "x") }, 200},
		{"created", func(r *httptest.ResponseRecorder) { WriteCreated(r, "x") }, 201},
		{"no content", func(r *httptest.ResponseRecorder) { WriteNoContent(r) }, 204},
		{"bad request", func(r *httptest.ResponseRecorder) { WriteBadRequest(r, "c", "m") }, 400},
		{"not found", func(r *httptest.ResponseRecorder) { WriteNotFound(r, "c", "m") }, 404},
		{"conflict", func(r *httptest.ResponseRecorder) { WriteConflict(r, "c", "m") }, 409},
		{"internal error", func(r *httptest.ResponseRecorder) { WriteInternalError(r, "c", "m") }, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
