package images

import (
	"regexp"
	"strings"
)

// publicIDPattern captures the path between the /upload/ marker (optionally
// followed by a version segment) and the final filename extension.
var publicIDPattern = regexp.MustCompile(`/upload/(?:v\d+/)?(.+?)(?:\.[^./]+)?$`)

// PublicID extracts the stable asset identifier from a stored asset URL.
// The second return value is false when the URL does not match the expected
// shape; callers must treat that as "skip deletion", not as an error.
func PublicID(rawURL string) (string, bool) {
	trimmed := rawURL
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}

	m := publicIDPattern.FindStringSubmatch(trimmed)
	if m == nil || m[1] == "" {
		return "", false
	}
	// A capture ending in a separator has no filename segment. Treating it
	// as an identifier would turn the deletion prefix into a whole folder.
	if strings.HasSuffix(m[1], "/") {
		return "", false
	}
	return m[1], true
}
