// Package enquiries implements the customer enquiry feature.
//
// Enquiries are flat contact-request records, immutable after creation.
// Creation is a public endpoint; listing and the per-month aggregation
// require an admin session.
//
// # HTTP Endpoints
//
//   - POST /api/query          : Store an enquiry (public).
//   - GET  /api/query          : List all enquiries.
//   - GET  /api/query/monthly  : Enquiry counts bucketed by calendar month.
package enquiries
