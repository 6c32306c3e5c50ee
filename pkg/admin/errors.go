package admin

import (
	"errors"
	"net/http"

	"github.com/getimpose/impose/pkg/httputil"
	"github.com/getimpose/impose/pkg/imposter"
	"github.com/getimpose/impose/pkg/registry"
)

// Error codes used in the {error, message} envelope.
const (
	codeInvalidBody = "invalid_body"
	codeInvalidPort = "invalid_port"
	codeValidation  = "validation_failed"
	codePortInUse   = "port_in_use"
	codeNotFound    = "not_found"
	codeInternal    = "internal_error"
)

// writeEngineError maps engine and validation errors to API responses.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *imposter.ValidationError
	switch {
	case errors.As(err, &verr):
		httputil.WriteBadRequest(w, codeValidation, err.Error())
	case errors.Is(err, registry.ErrPortInUse):
		httputil.WriteConflict(w, codePortInUse, err.Error())
	case errors.Is(err, registry.ErrNotFound):
		httputil.WriteNotFound(w, codeNotFound, err.Error())
	default:
		httputil.WriteInternalError(w, codeInternal, err.Error())
	}
}
