// Package database manages the connection to the backing record store.
//
// It wraps GORM with a MySQL driver for production and a SQLite driver for
// tests. Connect builds the DSN from the partial Config (including connection
// and I/O timeouts), tunes the connection pool, and verifies connectivity
// with a bounded ping before handing the *gorm.DB to the caller.
//
// Entity tables are owned by the feature packages; each feature migrates its
// own models at startup via AutoMigrate.
package database
