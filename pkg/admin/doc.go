// Package admin exposes the REST API for managing imposters: creating
// and deleting them, appending stubs, toggling recording, and reading
// the request log.
//
// The API speaks JSON. Validation failures answer 400, unknown ports
// 404, port conflicts 409, all with an {error, message} envelope.
package admin
