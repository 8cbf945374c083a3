// Package visas implements visa offering management.
//
// A visa carries at most one attached image. Updates follow the same
// reconcile-then-purge flow as the list-valued features, with the single
// slot modeled as a one-element set; a fresh upload always replaces the
// retained image.
package visas
