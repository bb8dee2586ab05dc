package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and attempts to parse the remaining string as an int64.
//
// Parameters:
//   - path: The full URL path (e.g., "/pages/123")
//   - prefix: The prefix to remove (e.g., "/pages/")
//
// Returns:
//   - int64: The parsed ID
//   - error: ErrInvalidID if the ID is invalid or <= 0
//
// Example:
//
//	id, err := ExtractID("/pages/123", "/pages/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	return ParseID(strings.TrimPrefix(path, prefix))
}

// ParseID parses a path segment as a positive int64 ID. It is the
// counterpart of ExtractID for routes registered with {id} wildcards,
// where the segment comes from http.Request.PathValue.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
