// Package utils provides small conversion helpers for loosely typed
// multipart form values.
package utils
