// Package server holds the HTTP server configuration: listen port, session
// token signing key and lifetime, and the credentials seeded for the single
// admin account on first start.
package server
