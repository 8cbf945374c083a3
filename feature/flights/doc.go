// Package flights implements flight listing management.
//
// A flight carries at most one airline logo image, reconciled the same
// way as the visa image on update. The public search endpoint filters by
// case-insensitive origin and destination substrings and an optional
// departure date.
package flights
