// Package auth provides JWT-based authentication for the HTTP API: a token
// issuing endpoint backed by operator credentials from the environment, and
// the Authz middleware protecting everything that is not a public endpoint.
package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication.
//
// - /health, /ready, /live: orchestration health checks
// - /metrics: Prometheus scraping
// - /swagger/: API documentation
// - /auth/token: token generation (can't require a token to get a token)
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Endpoints ending with '/' use prefix matching (e.g. /swagger/* matches
// /swagger/index.html). Endpoints without '/' require an exact match, a
// trailing slash, or query params only, so /health does not leak onto
// /healthcheck or /health/detail.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
