// Package httperr defines the error taxonomy shared by all feature handlers
// (validation, not-found, unauthorized, upstream failure) and the single
// translation point from service errors to HTTP responses.
package httperr
