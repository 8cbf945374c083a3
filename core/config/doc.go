// Package config assembles the application configuration from environment
// variables and an optional .env file.
//
// Each subsystem owns its partial Config struct (core/server, core/storage,
// core/database, core/logger); this package composes them and binds defaults
// declared via `default` struct tags. Environment variables map onto nested
// keys with underscores, e.g. STORAGE_BUCKET -> storage.bucket.
package config
