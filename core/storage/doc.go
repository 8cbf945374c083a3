// Package storage provides an abstraction layer for the remote object store
// that holds entity images.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the application needs: bucket checks, uploads, listing, and
// idempotent deletion. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Public URLs
//
// Config.BaseURL describes where uploaded objects are publicly reachable;
// core/images builds per-asset URLs on top of it.
package storage
