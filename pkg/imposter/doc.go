// Package imposter defines the core service-virtualization model: an
// Imposter is a fake HTTP service bound to a port, holding an ordered
// list of Stubs. Each Stub pairs an AND-combined predicate list with a
// rotating list of canned responses.
//
// All configuration is validated at construction time (unknown predicate
// kinds, invalid regular expressions, empty response lists). Match-time
// evaluation never fails; it only resolves to match or no-match.
package imposter
