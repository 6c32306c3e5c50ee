// Package requestlog captures requests observed by an imposter.
//
// Each recorded request is stored as an Entry holding the normalized
// request attributes and the exact body bytes as received on the wire.
// Entries are append-only while recording is enabled and are discarded
// together with the owning imposter.
package requestlog
