package utils

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// ParseID parses a movie id path segment. ok is false for anything that is
// not a base-10 int64, and callers treat that as an id no row can match.
func ParseID(value string) (id int64, ok bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IsJSONContentType reports whether the request declares a JSON body,
// including +json media types.
func IsJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
