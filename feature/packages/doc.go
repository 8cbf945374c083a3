// Package packages implements travel package management, the most involved
// of the image-bearing features.
//
// A package holds three kinds of image sets: a thumbnail (at most one), a
// gallery (at most 10), and one set per itinerary activity. Activity
// uploads arrive as a single flat multipart batch; each activity declares
// how many files of that batch are its own and the batch is consumed in
// itinerary order. Updates reconcile every set independently and purge the
// union of orphans in one fail-open batch.
//
// Search and the distinct price list are public endpoints; a narrowed
// search that matches nothing falls back to a title-only match.
package packages
