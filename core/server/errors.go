package server

import "errors"

var (
	// ErrMissingJwtSecret indicates the server was started without a signing key.
	ErrMissingJwtSecret = errors.New("server: jwt_secret is required")
	// ErrInvalidTokenTTL indicates a non-positive session token lifetime.
	ErrInvalidTokenTTL = errors.New("server: token_ttl_hours must be positive")
)
