// Package images implements the image-set reconciliation used by every
// entity feature (packages, hotels, visas, flights).
//
// An entity's persisted image list changes in exactly one way: the client
// declares which of the existing references it wants to keep and attaches
// zero or more freshly uploaded files. Reconcile computes the new
// authoritative ordered list (retained first, then new uploads, truncated to
// the entity's capacity) and the set of orphaned references that must be
// deleted from the remote store.
//
// # Pure Core, Side-Effecting Edges
//
// Reconcile, SplitBatch, and PublicID are pure functions. The Uploader owns
// the side effects: storing uploads under a stable key layout and purging
// orphans as an unordered concurrent batch. Purge is fail-open: individual
// deletion failures are logged and reported per reference, never aborting
// the batch or the caller's record mutation.
//
// # Key Layout
//
// Objects are stored under upload/v1/<folder>/<random><ext> and their public
// URLs mirror that path. PublicID recovers the <folder>/<random> identifier
// from a URL; URLs that do not match the layout are skipped during purge.
package images
