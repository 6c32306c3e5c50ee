// Package registry tracks live imposters by port.
//
// The registry is the single source of truth for which ports are
// claimed. It enforces port uniqueness but knows nothing about
// listeners; binding sockets is the engine's job.
package registry
