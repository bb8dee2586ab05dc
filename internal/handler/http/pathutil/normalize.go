package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	// Page sub-resources
	{Pattern: regexp.MustCompile(`^/pages/\d+/assignments/\d+/primary$`), Template: "/pages/:id/assignments/:account_id/primary"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/assignments/\d+$`), Template: "/pages/:id/assignments/:account_id"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/assignments$`), Template: "/pages/:id/assignments"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/timeslots/\d+$`), Template: "/pages/:id/timeslots/:slot_id"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/timeslots$`), Template: "/pages/:id/timeslots"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/activate$`), Template: "/pages/:id/activate"},
	{Pattern: regexp.MustCompile(`^/pages/\d+/deactivate$`), Template: "/pages/:id/deactivate"},
	{Pattern: regexp.MustCompile(`^/pages/\d+$`), Template: "/pages/:id"},

	// Account routes
	{Pattern: regexp.MustCompile(`^/accounts/\d+/pages$`), Template: "/accounts/:id/pages"},
	{Pattern: regexp.MustCompile(`^/accounts/\d+$`), Template: "/accounts/:id"},

	// Content routes
	{Pattern: regexp.MustCompile(`^/contents/\d+$`), Template: "/contents/:id"},

	// Scheduled item routes
	{Pattern: regexp.MustCompile(`^/scheduled-items/\d+/retry$`), Template: "/scheduled-items/:id/retry"},
	{Pattern: regexp.MustCompile(`^/scheduled-items/\d+/logs$`), Template: "/scheduled-items/:id/logs"},
	{Pattern: regexp.MustCompile(`^/scheduled-items/\d+$`), Template: "/scheduled-items/:id"},

	// Notification routes
	{Pattern: regexp.MustCompile(`^/notifications/\d+/read$`), Template: "/notifications/:id/read"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /pages/123) to template format (e.g., /pages/:id).
// Static paths like /health and /schedule/preview remain unchanged.
//
// Query parameters and trailing slashes are stripped before matching:
//
//	NormalizePath("/pages/123?active=true")  // "/pages/:id"
//	NormalizePath("/contents/42/")           // "/contents/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found. Static paths like /health, /metrics, /auth/token
	// and action endpoints like /schedule/preview pass through unchanged.
	return path
}
