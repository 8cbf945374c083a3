// Package hotels implements hotel listing management.
//
// A hotel carries one bounded image list (at most 10 entries). Create and
// update requests arrive as multipart forms; the update reconciles the
// persisted list against the caller-declared retained subset plus new
// uploads via core/images, purging orphaned assets fail-open.
package hotels
