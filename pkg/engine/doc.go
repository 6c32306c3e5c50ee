// Package engine binds imposters to TCP ports and dispatches inbound
// requests to their stubs.
//
// Each imposter gets its own listener and http.Server; the engine owns
// their lifecycle. Dispatch walks the imposter's stubs in declaration
// order, answers with the first match's next response, and falls back
// to the imposter's default response when nothing matches.
package engine
