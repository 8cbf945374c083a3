// Package admin implements the shared admin credential gate.
//
// Exactly one privileged credential record exists; it is seeded at process
// start when absent and mutated only by the change-password operation.
// Login issues a signed JWT session token with a fixed expiry whose payload
// carries only the admin identifier. Passwords are stored as bcrypt hashes.
//
// The package also serves the dashboard stats summary (per-entity record
// totals).
//
// # HTTP Endpoints
//
//   - POST /api/admin/login           : Issue a session token (public).
//   - POST /api/admin/change-password : Overwrite the stored password.
//   - GET  /api/admin/stats           : Per-entity record totals.
package admin
